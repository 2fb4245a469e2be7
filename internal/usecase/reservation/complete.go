package reservation

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type CompleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteReservation {
	return &CompleteReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute conclui a reserva: o bloco é desativado, a linha fica como
// histórico.
func (uc *CompleteReservation) Execute(
	ctx context.Context,
	reservationID uint,
	actorID uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil || !res.Active {
		return nil, httperr.ErrBusiness(httperr.CodeReservationNotFound)
	}

	now := timezone.Now()
	if err := domain.Complete(res, now); err != nil {
		return nil, err
	}

	if err := uc.repo.ApplyTransition(ctx, res, nil); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "reservation_completed",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
