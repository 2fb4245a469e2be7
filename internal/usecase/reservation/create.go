package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/calendar"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	UserID    uint
	ServiceID uint

	Start time.Time
	// End zerado = calculado como Start + duração do serviço
	End time.Time

	PaymentMethod string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1️⃣ Janela válida antes de qualquer outra checagem
	// --------------------------------------------------
	if !in.End.IsZero() {
		if _, err := domain.NewWindow(in.Start, in.End); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 2️⃣ Serviço ativo + snapshot de preço
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness(httperr.CodeServiceInactive)
	}

	end := in.End
	if end.IsZero() {
		end = in.Start.Add(time.Duration(svc.DurationMin) * time.Minute)
	}

	w, err := domain.NewWindow(in.Start, end)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Reserva pendente + bloco espelho, atômico.
	//     O detector de conflito roda dentro da transação.
	// --------------------------------------------------
	res := &models.Reservation{
		UserID:        in.UserID,
		ServiceID:     svc.ID,
		Status:        string(domain.InitialStatus()),
		StartTime:     w.Start,
		EndTime:       w.End,
		TotalPrice:    svc.Price,
		PaymentMethod: in.PaymentMethod,
		Active:        true,
	}

	block := calendar.ForReservation(res, svc.Name)

	if err := uc.repo.CreateWithBlock(ctx, res, &block); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
