package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reminder"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ReminderGormRepository struct {
	db *gorm.DB
}

func NewReminderGormRepository(db *gorm.DB) *ReminderGormRepository {
	return &ReminderGormRepository{db: db}
}

func (r *ReminderGormRepository) DueReminders(
	ctx context.Context,
	now time.Time,
) ([]models.Reminder, error) {

	var out []models.Reminder
	if err := r.db.WithContext(ctx).
		Model(&models.Reminder{}).
		Joins("JOIN reservations ON reservations.id = reminders.reservation_id").
		Where(
			"reminders.active = TRUE AND reminders.fire_at <= ?", now,
		).
		Where(
			"reservations.active = TRUE AND reservations.status = ?",
			string(reservation.StatusConfirmed),
		).
		Order("reminders.fire_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReminderGormRepository) Acknowledge(
	ctx context.Context,
	id uint,
	now time.Time,
) (*models.Reminder, error) {

	var rem models.Reminder
	if err := r.db.WithContext(ctx).First(&rem, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeReminderNotFound)
		}
		return nil, err
	}

	// já reconhecido → no-op
	if !rem.Active {
		return &rem, nil
	}

	rem.Active = false
	rem.AcknowledgedAt = &now
	if err := r.db.WithContext(ctx).Save(&rem).Error; err != nil {
		return nil, err
	}
	return &rem, nil
}

// Compile-time check
var _ domain.Repository = (*ReminderGormRepository)(nil)
