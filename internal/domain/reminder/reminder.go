package reminder

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Schedule deriva o lembrete de uma reserva confirmada:
// fire = start - leadTime. Falha se o disparo já não está estritamente
// no futuro; o chamador decide se isso bloqueia a confirmação.
func Schedule(
	res *models.Reservation,
	serviceName string,
	leadTime time.Duration,
	now time.Time,
) (*models.Reminder, error) {

	fire := res.StartTime.Add(-leadTime)
	if !fire.After(now) {
		return nil, httperr.ErrBusinessDetail(
			httperr.CodeReminderWindowInPast,
			fire.Format(time.RFC3339),
		)
	}

	return &models.Reminder{
		ReservationID: res.ID,
		FireAt:        fire,
		Message: fmt.Sprintf(
			"Lembrete: %s às %s",
			serviceName,
			res.StartTime.Format("02/01/2006 15:04"),
		),
		Active: true,
	}, nil
}
