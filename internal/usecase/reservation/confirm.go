package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	remdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reminder"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type ConfirmReservation struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	leadTime time.Duration
}

func NewConfirmReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	leadTime time.Duration,
) *ConfirmReservation {
	return &ConfirmReservation{
		repo:     repo,
		audit:    audit,
		leadTime: leadTime,
	}
}

// Execute confirma a reserva e agenda o lembrete. Retorna lembrete nulo
// quando a janela de disparo já passou; a confirmação não é bloqueada
// por isso; o handler devolve a condição como aviso.
func (uc *ConfirmReservation) Execute(
	ctx context.Context,
	reservationID uint,
	actorID uint,
) (*models.Reservation, *models.Reminder, error) {

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil || !res.Active {
		return nil, nil, httperr.ErrBusiness(httperr.CodeReservationNotFound)
	}

	now := timezone.Now()
	if err := domain.Confirm(res, now); err != nil {
		return nil, nil, err
	}

	serviceName := ""
	if svc, err := uc.repo.GetService(ctx, res.ServiceID); err == nil {
		serviceName = svc.Name
	}

	rem, remErr := remdomain.Schedule(res, serviceName, uc.leadTime, now)
	if remErr != nil &&
		!httperr.IsBusiness(remErr, httperr.CodeReminderWindowInPast) {
		return nil, nil, remErr
	}

	if err := uc.repo.ApplyTransition(ctx, res, rem); err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "reservation_confirmed",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, rem, nil
}
