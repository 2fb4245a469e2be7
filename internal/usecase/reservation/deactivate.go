package reservation

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type DeactivateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeactivateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeactivateReservation {
	return &DeactivateReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute é a exclusão lógica (admin): derruba a flag active sem tocar
// no status. A linha permanece como histórico, mas bloco e lembretes
// pendentes são desativados na mesma transação e o horário volta a
// ficar livre. Desativar de novo é no-op.
func (uc *DeactivateReservation) Execute(
	ctx context.Context,
	reservationID uint,
	actorID uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeReservationNotFound)
	}

	if !res.Active {
		return res, nil
	}

	res.Active = false
	if err := uc.repo.ApplyTransition(ctx, res, nil); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "reservation_deactivated",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
