package reminder

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// DueReminders: lembretes ativos com fire <= now cuja reserva
	// continua confirmada. Leitura pura: consumir a lista não
	// desativa nada.
	DueReminders(
		ctx context.Context,
		now time.Time,
	) ([]models.Reminder, error)

	// Acknowledge desativa o lembrete após a entrega. Idempotente:
	// reconhecer um lembrete já inativo é um no-op.
	Acknowledge(
		ctx context.Context,
		id uint,
		now time.Time,
	) (*models.Reminder, error)
}
