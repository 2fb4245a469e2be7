package reminder

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reminder"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type DueReminders struct {
	repo domain.Repository
}

func NewDueReminders(repo domain.Repository) *DueReminders {
	return &DueReminders{repo: repo}
}

// Execute devolve os lembretes prontos para envio. O notificador
// externo consome a lista e chama Acknowledge após entregar; ler aqui
// não desativa nada.
func (uc *DueReminders) Execute(
	ctx context.Context,
	now time.Time,
) ([]models.Reminder, error) {
	return uc.repo.DueReminders(ctx, now)
}
