package reservation

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancela a reserva. Cliente só cancela a própria reserva;
// admin cancela qualquer uma. Bloco e lembrete pendente são desativados
// na mesma transação.
func (uc *CancelReservation) Execute(
	ctx context.Context,
	reservationID uint,
	userID uint,
	isAdmin bool,
) (*models.Reservation, error) {

	var (
		res *models.Reservation
		err error
	)
	if isAdmin {
		res, err = uc.repo.GetReservation(ctx, reservationID)
	} else {
		res, err = uc.repo.GetReservationForUser(ctx, reservationID, userID)
	}
	if err != nil || !res.Active {
		return nil, httperr.ErrBusiness(httperr.CodeReservationNotFound)
	}

	now := timezone.Now()
	if err := domain.Cancel(res, now); err != nil {
		return nil, err
	}

	if err := uc.repo.ApplyTransition(ctx, res, nil); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
