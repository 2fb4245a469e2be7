package calendar

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Block Kinds
// ===============================

const (
	KindReservation = "reservation"
	KindManual      = "manual"
	KindMaintenance = "maintenance"
)

const (
	ColorReservation = "#b3ffb3"
	ColorManual      = "#ffd9b3"
	ColorMaintenance = "#d9d9d9"
)

func IsManualKind(kind string) bool {
	return kind == KindManual || kind == KindMaintenance
}

// ForReservation monta o bloco espelho de uma reserva.
func ForReservation(res *models.Reservation, serviceName string) models.CalendarBlock {
	id := res.ID
	return models.CalendarBlock{
		ReservationID: &id,
		Title:         "Reserva: " + serviceName,
		StartTime:     res.StartTime,
		EndTime:       res.EndTime,
		Color:         ColorReservation,
		Kind:          KindReservation,
		Active:        true,
	}
}

// Manual monta um bloqueio manual/manutenção, sem reserva vinculada.
func Manual(title, kind string, w reservation.Window) models.CalendarBlock {
	color := ColorManual
	if kind == KindMaintenance {
		color = ColorMaintenance
	}

	return models.CalendarBlock{
		Title:     title,
		StartTime: w.Start,
		EndTime:   w.End,
		Color:     color,
		Kind:      kind,
		Active:    true,
	}
}
