package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type RescheduleReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleReservation {
	return &RescheduleReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute move a reserva para uma nova janela. Só é legal em
// pending/confirmed; o conflito é reavaliado sob lock excluindo o
// próprio bloco, e reserva + bloco mudam juntos. Em conflito nada é
// alterado.
func (uc *RescheduleReservation) Execute(
	ctx context.Context,
	reservationID uint,
	userID uint,
	isAdmin bool,
	newStart time.Time,
	newEnd time.Time,
) (*models.Reservation, error) {

	w, err := domain.NewWindow(newStart, newEnd)
	if err != nil {
		return nil, err
	}

	var res *models.Reservation
	if isAdmin {
		res, err = uc.repo.GetReservation(ctx, reservationID)
	} else {
		res, err = uc.repo.GetReservationForUser(ctx, reservationID, userID)
	}
	if err != nil || !res.Active {
		return nil, httperr.ErrBusiness(httperr.CodeReservationNotFound)
	}

	if err := domain.Move(res, w); err != nil {
		return nil, err
	}

	if err := uc.repo.Reschedule(ctx, res, w); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "reservation_rescheduled",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
