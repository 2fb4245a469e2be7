package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reminder"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type fakeReminderRepo struct {
	reminders map[uint]*models.Reminder
	// status da reserva vinculada, por lembrete
	reservationStatus map[uint]string
}

var _ domain.Repository = (*fakeReminderRepo)(nil)

func (r *fakeReminderRepo) DueReminders(
	_ context.Context,
	now time.Time,
) ([]models.Reminder, error) {
	var out []models.Reminder
	for id, rem := range r.reminders {
		if !rem.Active || rem.FireAt.After(now) {
			continue
		}
		if r.reservationStatus[id] != "confirmed" {
			continue
		}
		out = append(out, *rem)
	}
	return out, nil
}

func (r *fakeReminderRepo) Acknowledge(
	_ context.Context,
	id uint,
	now time.Time,
) (*models.Reminder, error) {
	rem, ok := r.reminders[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeReminderNotFound)
	}
	if !rem.Active {
		cp := *rem
		return &cp, nil
	}

	rem.Active = false
	rem.AcknowledgedAt = &now
	cp := *rem
	return &cp, nil
}

func TestDueReminders(t *testing.T) {
	now := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)

	repo := &fakeReminderRepo{
		reminders: map[uint]*models.Reminder{
			1: {ID: 1, FireAt: now.Add(-time.Minute), Active: true},
			2: {ID: 2, FireAt: now.Add(time.Hour), Active: true},        // futuro
			3: {ID: 3, FireAt: now.Add(-time.Minute), Active: false},    // já entregue
			4: {ID: 4, FireAt: now.Add(-2 * time.Minute), Active: true}, // reserva cancelada
		},
		reservationStatus: map[uint]string{
			1: "confirmed",
			2: "confirmed",
			3: "confirmed",
			4: "cancelled",
		},
	}

	uc := NewDueReminders(repo)
	due, err := uc.Execute(context.Background(), now)
	require.NoError(t, err)

	require.Len(t, due, 1)
	assert.Equal(t, uint(1), due[0].ID)

	// leitura pura: consultar de novo devolve o mesmo resultado
	due, err = uc.Execute(context.Background(), now)
	require.NoError(t, err)
	assert.Len(t, due, 1)
}

func TestAcknowledgeReminder(t *testing.T) {
	ctx := context.Background()
	dispatcher := audit.NewDispatcher(audit.New(nil))

	t.Run("deactivates and stamps", func(t *testing.T) {
		repo := &fakeReminderRepo{
			reminders: map[uint]*models.Reminder{
				1: {ID: 1, Active: true},
			},
			reservationStatus: map[uint]string{1: "confirmed"},
		}

		uc := NewAcknowledgeReminder(repo, dispatcher)
		rem, err := uc.Execute(ctx, 5, 1)
		require.NoError(t, err)

		assert.False(t, rem.Active)
		assert.NotNil(t, rem.AcknowledgedAt)
	})

	t.Run("idempotent", func(t *testing.T) {
		repo := &fakeReminderRepo{
			reminders: map[uint]*models.Reminder{
				1: {ID: 1, Active: true},
			},
			reservationStatus: map[uint]string{1: "confirmed"},
		}

		uc := NewAcknowledgeReminder(repo, dispatcher)
		first, err := uc.Execute(ctx, 5, 1)
		require.NoError(t, err)
		stamp := first.AcknowledgedAt

		second, err := uc.Execute(ctx, 5, 1)
		require.NoError(t, err)
		assert.False(t, second.Active)
		assert.Equal(t, stamp, second.AcknowledgedAt)
	})

	t.Run("unknown reminder", func(t *testing.T) {
		repo := &fakeReminderRepo{reminders: map[uint]*models.Reminder{}}

		uc := NewAcknowledgeReminder(repo, dispatcher)
		_, err := uc.Execute(ctx, 5, 99)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeReminderNotFound))
	})
}
