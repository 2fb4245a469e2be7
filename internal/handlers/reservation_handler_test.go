package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucReservation "github.com/BruksfildServices01/salon-scheduler/internal/usecase/reservation"
)

// stubRepo guarda tudo em memória; suficiente para exercitar o
// handler sem banco.
type stubRepo struct {
	service      *models.Service
	reservations []*models.Reservation
	nextID       uint
}

var _ domain.Repository = (*stubRepo)(nil)

func newStubRepo() *stubRepo {
	return &stubRepo{
		service: &models.Service{
			ID:          1,
			Name:        "Corte",
			DurationMin: 60,
			Price:       80,
			Active:      true,
		},
		nextID: 1,
	}
}

func (r *stubRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if id != r.service.ID {
		return nil, gormNotFound()
	}
	return r.service, nil
}

func (r *stubRepo) GetReservation(_ context.Context, id uint) (*models.Reservation, error) {
	for _, res := range r.reservations {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, gormNotFound()
}

func (r *stubRepo) GetReservationForUser(
	ctx context.Context, id uint, userID uint,
) (*models.Reservation, error) {
	res, err := r.GetReservation(ctx, id)
	if err != nil || res.UserID != userID {
		return nil, gormNotFound()
	}
	return res, nil
}

func (r *stubRepo) ListForUser(_ context.Context, _ uint) ([]models.Reservation, error) {
	return nil, nil
}

func (r *stubRepo) ListForPeriod(
	_ context.Context, _ time.Time, _ time.Time,
) ([]models.Reservation, error) {
	return nil, nil
}

func (r *stubRepo) HasConflict(
	_ context.Context, w domain.Window, exclude *uint,
) (bool, error) {
	for _, res := range r.reservations {
		if exclude != nil && res.ID == *exclude {
			continue
		}
		if !domain.Status(res.Status).Occupies() || !res.Active {
			continue
		}
		if res.StartTime.Before(w.End) && w.Start.Before(res.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubRepo) CreateWithBlock(
	_ context.Context, res *models.Reservation, block *models.CalendarBlock,
) error {
	res.ID = r.nextID
	r.nextID++
	r.reservations = append(r.reservations, res)
	block.ID = res.ID
	return nil
}

func (r *stubRepo) Reschedule(
	_ context.Context, res *models.Reservation, _ domain.Window,
) error {
	return nil
}

func (r *stubRepo) ApplyTransition(
	_ context.Context, res *models.Reservation, _ *models.Reminder,
) error {
	return nil
}

func gormNotFound() error {
	return domainNotFoundErr{}
}

type domainNotFoundErr struct{}

func (domainNotFoundErr) Error() string { return "record not found" }

// ------------------------------------------------------

func testRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dispatcher := audit.NewDispatcher(audit.New(nil))
	h := NewReservationHandler(
		ucReservation.NewCreateReservation(repo, dispatcher),
		ucReservation.NewConfirmReservation(repo, dispatcher, time.Hour),
		ucReservation.NewCancelReservation(repo, dispatcher),
		ucReservation.NewCompleteReservation(repo, dispatcher),
		ucReservation.NewRescheduleReservation(repo, dispatcher),
		ucReservation.NewDeactivateReservation(repo, dispatcher),
		ucReservation.NewListReservations(repo),
		ucReservation.NewCheckAvailability(repo),
	)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(10))
	})
	r.POST("/me/reservations", h.Create)
	r.GET("/public/availability", h.Availability)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func putJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateReservationHandler(t *testing.T) {
	t.Run("window crossing midnight", func(t *testing.T) {
		r := testRouter(newStubRepo())

		w := postJSON(t, r, "/me/reservations", `{
			"service_id": 1,
			"date": "2026-03-10",
			"time": "23:30",
			"end_date": "2026-03-11",
			"end_time": "00:30",
			"payment_method": "pix"
		}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res models.Reservation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, time.Hour, res.EndTime.Sub(res.StartTime))
		assert.NotEqual(t, res.StartTime.Day(), res.EndTime.Day())
	})

	t.Run("end_time without end_date stays on the same day", func(t *testing.T) {
		r := testRouter(newStubRepo())

		w := postJSON(t, r, "/me/reservations", `{
			"service_id": 1,
			"date": "2026-03-10",
			"time": "10:00",
			"end_time": "11:30",
			"payment_method": "pix"
		}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res models.Reservation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 90*time.Minute, res.EndTime.Sub(res.StartTime))
	})

	t.Run("inverted window on the same day is rejected", func(t *testing.T) {
		r := testRouter(newStubRepo())

		w := postJSON(t, r, "/me/reservations", `{
			"service_id": 1,
			"date": "2026-03-10",
			"time": "23:30",
			"end_time": "00:30",
			"payment_method": "pix"
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAvailabilityHandler(t *testing.T) {
	t.Run("free window", func(t *testing.T) {
		r := testRouter(newStubRepo())

		req := httptest.NewRequest(http.MethodGet,
			"/public/availability?date=2026-03-10&time=10:00&end_time=11:00", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]bool
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body["available"])
	})

	t.Run("booked window", func(t *testing.T) {
		repo := newStubRepo()
		r := testRouter(repo)

		w := postJSON(t, r, "/me/reservations", `{
			"service_id": 1,
			"date": "2026-03-10",
			"time": "10:00",
			"payment_method": "pix"
		}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		req := httptest.NewRequest(http.MethodGet,
			"/public/availability?date=2026-03-10&time=10:30&end_time=11:30", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]bool
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body["available"])
	})

	t.Run("missing params", func(t *testing.T) {
		r := testRouter(newStubRepo())

		req := httptest.NewRequest(http.MethodGet,
			"/public/availability?date=2026-03-10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
