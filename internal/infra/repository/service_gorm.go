package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/service"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

// DeleteWithAudit: captura-então-exclusão em uma transação. A linha do
// serviço é travada primeiro para que uma reserva tardia não escape da
// captura; se a transação aborta, nenhum registro de auditoria sobra.
func (r *ServiceGormRepository) DeleteWithAudit(
	ctx context.Context,
	serviceID uint,
	now time.Time,
) ([]models.DeletedServiceRecord, error) {

	var records []models.DeletedServiceRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var svc models.Service
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&svc, serviceID).Error; err != nil {
			return err
		}

		var userIDs []uint
		if err := tx.
			Model(&models.Reservation{}).
			Distinct().
			Where("service_id = ?", serviceID).
			Pluck("user_id", &userIDs).Error; err != nil {
			return err
		}

		for _, uid := range userIDs {
			records = append(records, models.DeletedServiceRecord{
				ServiceID:   svc.ID,
				ServiceName: svc.Name,
				UserID:      uid,
				DeletedAt:   now,
			})
		}

		// zero reservas referenciando o serviço = zero registros,
		// não é erro
		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Service{}, serviceID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		return nil, err
	}

	return records, nil
}

// Compile-time check
var _ domain.Repository = (*ServiceGormRepository)(nil)
