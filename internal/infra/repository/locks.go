package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// espaço do advisory lock do calendário compartilhado
const calendarLockSpace = 7331

// lockWindow adquire pg_advisory_xact_lock por dia coberto pela janela,
// em ordem crescente. O Postgres libera no commit/rollback. Sem isso,
// duas criações concorrentes podem ambas ler "sem conflito" e ambas
// gravar (write skew).
func lockWindow(tx *gorm.DB, w reservation.Window) error {
	first := w.Start.UTC().Unix() / 86400
	last := w.End.Add(-time.Nanosecond).UTC().Unix() / 86400

	for day := first; day <= last; day++ {
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?, ?)",
			calendarLockSpace, int32(day),
		).Error; err != nil {
			return err
		}
	}
	return nil
}

// assertWindowFreeTx revalida o invariante de não-sobreposição dentro
// da transação, travando as linhas candidatas (FOR UPDATE): reservas
// ativas em pending/confirmed e blocos ativos de qualquer tipo.
func assertWindowFreeTx(
	tx *gorm.DB,
	w reservation.Window,
	excludeReservationID *uint,
	excludeBlockID *uint,
) error {

	var conflicts []models.Reservation
	q := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"active = TRUE AND status IN ? AND start_time < ? AND end_time > ?",
			reservation.OccupyingStatuses(), w.End, w.Start,
		)
	if excludeReservationID != nil {
		q = q.Where("id <> ?", *excludeReservationID)
	}
	if err := q.Find(&conflicts).Error; err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return slotUnavailable(conflicts[0].StartTime, conflicts[0].EndTime)
	}

	var blocks []models.CalendarBlock
	b := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"active = TRUE AND start_time < ? AND end_time > ?",
			w.End, w.Start,
		)
	if excludeReservationID != nil {
		b = b.Where(
			"reservation_id IS NULL OR reservation_id <> ?",
			*excludeReservationID,
		)
	}
	if excludeBlockID != nil {
		b = b.Where("id <> ?", *excludeBlockID)
	}
	if err := b.Find(&blocks).Error; err != nil {
		return err
	}
	if len(blocks) > 0 {
		return slotUnavailable(blocks[0].StartTime, blocks[0].EndTime)
	}

	return nil
}

func slotUnavailable(start, end time.Time) error {
	return httperr.ErrBusinessDetail(
		httperr.CodeSlotUnavailable,
		fmt.Sprintf(
			"conflito com %s - %s",
			start.Format(time.RFC3339),
			end.Format(time.RFC3339),
		),
	)
}
