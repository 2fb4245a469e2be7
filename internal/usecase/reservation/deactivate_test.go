package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func TestDeactivateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("frees slot without touching status", func(t *testing.T) {
		repo := newFakeRepo(haircut())
		start, end := futureSlot()
		res := createPending(t, repo, 10, start, end)

		uc := NewDeactivateReservation(repo, testDispatcher())
		deactivated, err := uc.Execute(ctx, res.ID, 1)
		require.NoError(t, err)

		assert.False(t, deactivated.Active)
		assert.Equal(t, string(domain.StatusPending), deactivated.Status)

		block := repo.blockFor(res.ID)
		require.NotNil(t, block)
		assert.False(t, block.Active)

		// horário liberado: outro cliente reserva a mesma janela
		createPending(t, repo, 11, start, end)
	})

	t.Run("deactivates pending reminder", func(t *testing.T) {
		repo := newFakeRepo(haircut())
		start, end := futureSlot()
		res := createPending(t, repo, 10, start, end)

		confirmUC := NewConfirmReservation(repo, testDispatcher(), time.Hour)
		_, rem, err := confirmUC.Execute(ctx, res.ID, 1)
		require.NoError(t, err)
		require.NotNil(t, rem)

		uc := NewDeactivateReservation(repo, testDispatcher())
		_, err = uc.Execute(ctx, res.ID, 1)
		require.NoError(t, err)

		assert.False(t, repo.reminders[rem.ID].Active)
	})

	t.Run("second call is no-op", func(t *testing.T) {
		repo := newFakeRepo(haircut())
		start, end := futureSlot()
		res := createPending(t, repo, 10, start, end)

		uc := NewDeactivateReservation(repo, testDispatcher())
		_, err := uc.Execute(ctx, res.ID, 1)
		require.NoError(t, err)

		again, err := uc.Execute(ctx, res.ID, 1)
		require.NoError(t, err)
		assert.False(t, again.Active)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		repo := newFakeRepo(haircut())
		uc := NewDeactivateReservation(repo, testDispatcher())

		_, err := uc.Execute(ctx, 99, 1)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeReservationNotFound))
	})

	t.Run("deactivated reservation vanishes from the API", func(t *testing.T) {
		repo := newFakeRepo(haircut())
		start, end := futureSlot()
		res := createPending(t, repo, 10, start, end)

		uc := NewDeactivateReservation(repo, testDispatcher())
		_, err := uc.Execute(ctx, res.ID, 1)
		require.NoError(t, err)

		listUC := NewListReservations(repo)
		_, err = listUC.Get(ctx, res.ID, 10, false)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeReservationNotFound))

		_, err = listUC.Get(ctx, res.ID, 1, true)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeReservationNotFound))
	})

	t.Run("deactivated reservation cannot transition", func(t *testing.T) {
		repo := newFakeRepo(haircut())
		start, end := futureSlot()
		res := createPending(t, repo, 10, start, end)

		uc := NewDeactivateReservation(repo, testDispatcher())
		_, err := uc.Execute(ctx, res.ID, 1)
		require.NoError(t, err)

		confirmUC := NewConfirmReservation(repo, testDispatcher(), time.Hour)
		_, _, err = confirmUC.Execute(ctx, res.ID, 1)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeReservationNotFound))
	})
}

func TestGetReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("client sees own reservation", func(t *testing.T) {
		repo := newFakeRepo(haircut())
		start, end := futureSlot()
		res := createPending(t, repo, 10, start, end)

		listUC := NewListReservations(repo)
		got, err := listUC.Get(ctx, res.ID, 10, false)
		require.NoError(t, err)
		assert.Equal(t, res.ID, got.ID)
	})

	t.Run("client cannot see another client's reservation", func(t *testing.T) {
		repo := newFakeRepo(haircut())
		start, end := futureSlot()
		res := createPending(t, repo, 10, start, end)

		listUC := NewListReservations(repo)
		_, err := listUC.Get(ctx, res.ID, 99, false)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeReservationNotFound))

		// admin enxerga qualquer reserva
		got, err := listUC.Get(ctx, res.ID, 99, true)
		require.NoError(t, err)
		assert.Equal(t, res.ID, got.ID)
	})
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("free window is available", func(t *testing.T) {
		repo := newFakeRepo(haircut())
		start, end := futureSlot()

		uc := NewCheckAvailability(repo)
		available, err := uc.Execute(ctx, start, end)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("booked window is not available", func(t *testing.T) {
		repo := newFakeRepo(haircut())
		start, end := futureSlot()
		createPending(t, repo, 10, start, end)

		uc := NewCheckAvailability(repo)
		available, err := uc.Execute(ctx, start.Add(30*time.Minute), end.Add(30*time.Minute))
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("shared boundary is available", func(t *testing.T) {
		repo := newFakeRepo(haircut())
		start, end := futureSlot()
		createPending(t, repo, 10, start, end)

		uc := NewCheckAvailability(repo)
		available, err := uc.Execute(ctx, end, end.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("deactivation reopens the window", func(t *testing.T) {
		repo := newFakeRepo(haircut())
		start, end := futureSlot()
		res := createPending(t, repo, 10, start, end)

		uc := NewCheckAvailability(repo)
		available, err := uc.Execute(ctx, start, end)
		require.NoError(t, err)
		require.False(t, available)

		deactivateUC := NewDeactivateReservation(repo, testDispatcher())
		_, err = deactivateUC.Execute(ctx, res.ID, 1)
		require.NoError(t, err)

		available, err = uc.Execute(ctx, start, end)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("inverted window is invalid", func(t *testing.T) {
		repo := newFakeRepo(haircut())
		start, end := futureSlot()

		uc := NewCheckAvailability(repo)
		_, err := uc.Execute(ctx, end, start)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidWindow))
	})
}
