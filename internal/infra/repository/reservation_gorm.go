package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ReservationGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Reservation (read)
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) GetReservationForUser(
	ctx context.Context,
	id uint,
	userID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("user_id = ? AND active = TRUE", userID).
		Order("start_time DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRepository) ListForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Where(
			"active = TRUE AND start_time >= ? AND start_time < ?",
			start, end,
		).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Conflict detection (leitura pura)
// --------------------------------------------------

func (r *ReservationGormRepository) HasConflict(
	ctx context.Context,
	w domain.Window,
	excludeReservationID *uint,
) (bool, error) {

	var count int64
	q := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"active = TRUE AND status IN ? AND start_time < ? AND end_time > ?",
			domain.OccupyingStatuses(), w.End, w.Start,
		)
	if excludeReservationID != nil {
		q = q.Where("id <> ?", *excludeReservationID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	b := r.db.WithContext(ctx).
		Model(&models.CalendarBlock{}).
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
	if err := b.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Atomic units
// --------------------------------------------------

func (r *ReservationGormRepository) CreateWithBlock(
	ctx context.Context,
	res *models.Reservation,
	block *models.CalendarBlock,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		w := domain.Window{Start: res.StartTime, End: res.EndTime}

		if err := lockWindow(tx, w); err != nil {
			return err
		}
		if err := assertWindowFreeTx(tx, w, nil, nil); err != nil {
			return err
		}

		if err := tx.Create(res).Error; err != nil {
			return err
		}

		block.ReservationID = &res.ID
		return tx.Create(block).Error
	})
	if httperr.IsExclusionConflict(err) {
		return slotUnavailable(res.StartTime, res.EndTime)
	}
	return err
}

func (r *ReservationGormRepository) Reschedule(
	ctx context.Context,
	res *models.Reservation,
	w domain.Window,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockWindow(tx, w); err != nil {
			return err
		}
		if err := assertWindowFreeTx(tx, w, &res.ID, nil); err != nil {
			return err
		}

		res.StartTime = w.Start
		res.EndTime = w.End
		if err := tx.Save(res).Error; err != nil {
			return err
		}

		return syncBlockTx(tx, res)
	})
	if httperr.IsExclusionConflict(err) {
		return slotUnavailable(w.Start, w.End)
	}
	return err
}

func (r *ReservationGormRepository) ApplyTransition(
	ctx context.Context,
	res *models.Reservation,
	reminder *models.Reminder,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(res).Error; err != nil {
			return err
		}

		if err := syncBlockTx(tx, res); err != nil {
			return err
		}

		if reminder != nil {
			if err := tx.Create(reminder).Error; err != nil {
				return err
			}
		}

		// cancelamento e desativação lógica liberam o horário, logo
		// nenhum lembrete pendente deve sobreviver
		if domain.Status(res.Status) == domain.StatusCancelled || !res.Active {
			if err := tx.Model(&models.Reminder{}).
				Where("reservation_id = ? AND active = TRUE", res.ID).
				Update("active", false).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
