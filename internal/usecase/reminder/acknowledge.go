package reminder

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reminder"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type AcknowledgeReminder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAcknowledgeReminder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AcknowledgeReminder {
	return &AcknowledgeReminder{
		repo:  repo,
		audit: audit,
	}
}

// Execute desativa o lembrete após entrega bem-sucedida. Idempotente:
// o segundo ack do mesmo lembrete é no-op, não erro.
func (uc *AcknowledgeReminder) Execute(
	ctx context.Context,
	actorID uint,
	reminderID uint,
) (*models.Reminder, error) {

	rem, err := uc.repo.Acknowledge(ctx, reminderID, timezone.Now())
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "reminder_acknowledged",
		Entity:   "reminder",
		EntityID: &rem.ID,
	})

	return rem, nil
}
