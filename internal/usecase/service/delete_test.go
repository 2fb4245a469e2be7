package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/service"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// fakeServiceRepo reproduz captura-então-exclusão em memória: um
// registro por usuário distinto, gravado junto com a remoção.
type fakeServiceRepo struct {
	services     map[uint]*models.Service
	reservations []models.Reservation
	records      []models.DeletedServiceRecord

	failTx bool
}

var _ domain.Repository = (*fakeServiceRepo)(nil)

func (r *fakeServiceRepo) DeleteWithAudit(
	_ context.Context,
	serviceID uint,
	now time.Time,
) ([]models.DeletedServiceRecord, error) {

	if r.failTx {
		return nil, assert.AnError
	}

	svc, ok := r.services[serviceID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	seen := map[uint]bool{}
	var out []models.DeletedServiceRecord
	for _, res := range r.reservations {
		if res.ServiceID != serviceID || seen[res.UserID] {
			continue
		}
		seen[res.UserID] = true
		out = append(out, models.DeletedServiceRecord{
			ServiceID:   serviceID,
			ServiceName: svc.Name,
			UserID:      res.UserID,
			DeletedAt:   now,
		})
	}

	r.records = append(r.records, out...)
	delete(r.services, serviceID)
	return out, nil
}

func TestDeleteService(t *testing.T) {
	ctx := context.Background()
	dispatcher := audit.NewDispatcher(audit.New(nil))

	t.Run("one record per distinct user", func(t *testing.T) {
		repo := &fakeServiceRepo{
			services: map[uint]*models.Service{
				1: {ID: 1, Name: "Escova"},
			},
			// usuário 10 aparece duas vezes, usuário 11 uma
			reservations: []models.Reservation{
				{ServiceID: 1, UserID: 10, Status: "completed"},
				{ServiceID: 1, UserID: 11, Status: "cancelled"},
				{ServiceID: 1, UserID: 10, Status: "pending"},
				{ServiceID: 2, UserID: 12, Status: "pending"},
			},
		}

		uc := NewDeleteService(repo, dispatcher)
		records, err := uc.Execute(ctx, 1, 1)
		require.NoError(t, err)

		require.Len(t, records, 2)
		users := []uint{records[0].UserID, records[1].UserID}
		assert.ElementsMatch(t, []uint{10, 11}, users)

		for _, rec := range records {
			assert.Equal(t, uint(1), rec.ServiceID)
			assert.Equal(t, "Escova", rec.ServiceName)
			assert.False(t, rec.DeletedAt.IsZero())
		}

		// serviço realmente removido
		_, ok := repo.services[1]
		assert.False(t, ok)
	})

	t.Run("no referencing reservations", func(t *testing.T) {
		repo := &fakeServiceRepo{
			services: map[uint]*models.Service{
				1: {ID: 1, Name: "Escova"},
			},
		}

		uc := NewDeleteService(repo, dispatcher)
		records, err := uc.Execute(ctx, 1, 1)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("unknown service", func(t *testing.T) {
		repo := &fakeServiceRepo{services: map[uint]*models.Service{}}

		uc := NewDeleteService(repo, dispatcher)
		_, err := uc.Execute(ctx, 1, 99)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
	})

	t.Run("transaction failure maps to storage_unavailable", func(t *testing.T) {
		repo := &fakeServiceRepo{failTx: true}

		uc := NewDeleteService(repo, dispatcher)
		_, err := uc.Execute(ctx, 1, 1)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeStorageUnavailable))
	})
}
