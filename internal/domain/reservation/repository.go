package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Reservation (read) --------
	GetReservation(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	GetReservationForUser(
		ctx context.Context,
		id uint,
		userID uint,
	) (*models.Reservation, error)

	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Reservation, error)

	ListForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)

	// -------- Conflict detection --------
	// Leitura pura; os caminhos de escrita revalidam dentro da
	// mesma transação, sob lock de janela.
	HasConflict(
		ctx context.Context,
		w Window,
		excludeReservationID *uint,
	) (bool, error)

	// -------- Atomic units --------
	CreateWithBlock(
		ctx context.Context,
		res *models.Reservation,
		block *models.CalendarBlock,
	) error

	Reschedule(
		ctx context.Context,
		res *models.Reservation,
		w Window,
	) error

	// ApplyTransition grava a reserva, sincroniza o bloco vinculado,
	// cria o lembrete (se houver) e desativa lembretes pendentes em
	// cancelamento, tudo ou nada.
	ApplyTransition(
		ctx context.Context,
		res *models.Reservation,
		reminder *models.Reminder,
	) error
}
