package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CalendarGormRepository struct {
	db *gorm.DB
}

func NewCalendarGormRepository(db *gorm.DB) *CalendarGormRepository {
	return &CalendarGormRepository{db: db}
}

// --------------------------------------------------
// Synchronizer
// --------------------------------------------------

// syncBlockTx aplica o invariante bloco<->reserva dentro de uma
// transação já aberta: cria, atualiza janela/ativação ou desativa o
// bloco vinculado conforme o estado atual da reserva. Idempotente.
func syncBlockTx(tx *gorm.DB, res *models.Reservation) error {
	occupies := res.Active && reservation.Status(res.Status).Occupies()

	var block models.CalendarBlock
	err := tx.Where("reservation_id = ?", res.ID).First(&block).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if !occupies {
			return nil
		}

		var svc models.Service
		if err := tx.First(&svc, res.ServiceID).Error; err != nil {
			return err
		}

		block = domain.ForReservation(res, svc.Name)
		return tx.Create(&block).Error
	}
	if err != nil {
		return err
	}

	block.StartTime = res.StartTime
	block.EndTime = res.EndTime
	block.Active = occupies
	return tx.Save(&block).Error
}

func (r *CalendarGormRepository) SyncForReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return syncBlockTx(tx, res)
	})
}

// --------------------------------------------------
// Manual / maintenance blocks
// --------------------------------------------------

func (r *CalendarGormRepository) CreateManualBlock(
	ctx context.Context,
	block *models.CalendarBlock,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		w := reservation.Window{Start: block.StartTime, End: block.EndTime}

		if err := lockWindow(tx, w); err != nil {
			return err
		}
		if err := assertWindowFreeTx(tx, w, nil, nil); err != nil {
			return err
		}

		return tx.Create(block).Error
	})
	if httperr.IsExclusionConflict(err) {
		return slotUnavailable(block.StartTime, block.EndTime)
	}
	return err
}

func (r *CalendarGormRepository) RemoveManualBlock(
	ctx context.Context,
	id uint,
) (*models.CalendarBlock, error) {

	var block models.CalendarBlock
	if err := r.db.WithContext(ctx).First(&block, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBlockNotFound)
		}
		return nil, err
	}

	// blocos de reserva só mudam via ciclo de vida da reserva
	if !domain.IsManualKind(block.Kind) {
		return nil, httperr.ErrBusinessDetail(
			httperr.CodeInvalidBlockKind, block.Kind,
		)
	}

	if !block.Active {
		return &block, nil
	}

	block.Active = false
	if err := r.db.WithContext(ctx).Save(&block).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *CalendarGormRepository) GetBlock(
	ctx context.Context,
	id uint,
) (*models.CalendarBlock, error) {

	var block models.CalendarBlock
	if err := r.db.WithContext(ctx).First(&block, id).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *CalendarGormRepository) ListForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.CalendarBlock, error) {

	var out []models.CalendarBlock
	if err := r.db.WithContext(ctx).
		Where(
			"active = TRUE AND start_time < ? AND end_time > ?",
			end, start,
		).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*CalendarGormRepository)(nil)
