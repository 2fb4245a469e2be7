package calendar

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// SyncForReservation garante o invariante: bloco ativo de tipo
	// reservation existe sse a reserva vinculada está ativa em
	// pending/confirmed. Idempotente (create-or-update-or-deactivate).
	SyncForReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	// CreateManualBlock passa pelo detector de conflito: bloqueios
	// manuais também ocupam o calendário compartilhado.
	CreateManualBlock(
		ctx context.Context,
		block *models.CalendarBlock,
	) error

	RemoveManualBlock(
		ctx context.Context,
		id uint,
	) (*models.CalendarBlock, error)

	GetBlock(
		ctx context.Context,
		id uint,
	) (*models.CalendarBlock, error)

	ListForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.CalendarBlock, error)
}
