package service

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/service"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type DeleteService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteService(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteService {
	return &DeleteService{
		repo:  repo,
		audit: audit,
	}
}

// Execute remove o serviço com captura de auditoria na mesma
// transação. Falha de transação vira storage_unavailable: o chamador
// repete a operação inteira, nunca só uma metade.
func (uc *DeleteService) Execute(
	ctx context.Context,
	actorID uint,
	serviceID uint,
) ([]models.DeletedServiceRecord, error) {

	records, err := uc.repo.DeleteWithAudit(ctx, serviceID, timezone.Now())
	if err != nil {
		if _, ok := httperr.BusinessCode(err); ok {
			return nil, err
		}
		return nil, httperr.ErrBusinessDetail(
			httperr.CodeStorageUnavailable, err.Error(),
		)
	}

	affected := uint(len(records))
	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &serviceID,
		Metadata: map[string]any{"affected_users": affected},
	})

	return records, nil
}
