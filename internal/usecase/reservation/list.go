package reservation

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

// Get devolve uma reserva ativa. Cliente só enxerga a própria; admin
// enxerga qualquer uma. Reserva desativada some da API como se não
// existisse.
func (uc *ListReservations) Get(
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

	return res, nil
}

// ForUser lista as reservas ativas do próprio cliente, mais recentes
// primeiro.
func (uc *ListReservations) ForUser(
	ctx context.Context,
	userID uint,
) ([]dto.ReservationListDTO, error) {

	reservations, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, dto.FromReservation(res))
	}
	return out, nil
}

// ForDate lista todas as reservas do dia (visão da equipe).
func (uc *ListReservations) ForDate(
	ctx context.Context,
	date time.Time,
) ([]dto.ReservationListDTO, error) {

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	end := start.Add(24 * time.Hour)

	reservations, err := uc.repo.ListForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, dto.FromReservation(res))
	}
	return out, nil
}
