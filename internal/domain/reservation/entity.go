package reservation

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(res *models.Reservation, now time.Time) error {
	if err := CanTransition(Status(res.Status), StatusConfirmed); err != nil {
		return err
	}

	res.Status = string(StatusConfirmed)
	res.ConfirmedAt = &now
	return nil
}

func Cancel(res *models.Reservation, now time.Time) error {
	if err := CanTransition(Status(res.Status), StatusCancelled); err != nil {
		return err
	}

	res.Status = string(StatusCancelled)
	res.CancelledAt = &now
	return nil
}

func Complete(res *models.Reservation, now time.Time) error {
	if err := CanTransition(Status(res.Status), StatusCompleted); err != nil {
		return err
	}

	res.Status = string(StatusCompleted)
	res.CompletedAt = &now
	return nil
}

// Move aplica uma nova janela à reserva. Só é legal enquanto a reserva
// ainda ocupa o calendário; o chamador revalida conflito sob lock.
func Move(res *models.Reservation, w Window) error {
	if !Status(res.Status).Occupies() {
		return httperr.ErrBusinessDetail(
			httperr.CodeIllegalTransition,
			"reschedule from "+res.Status,
		)
	}

	res.StartTime = w.Start
	res.EndTime = w.End
	return nil
}
