package reservation

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/calendar"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// fakeRepo reproduz em memória as mesmas garantias do repositório
// Postgres: detecção de conflito na escrita e unidades atômicas de
// reserva + bloco + lembrete.
type fakeRepo struct {
	services     map[uint]*models.Service
	reservations map[uint]*models.Reservation
	blocks       map[uint]*models.CalendarBlock
	reminders    map[uint]*models.Reminder

	nextReservationID uint
	nextBlockID       uint
	nextReminderID    uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo(services ...*models.Service) *fakeRepo {
	r := &fakeRepo{
		services:          map[uint]*models.Service{},
		reservations:      map[uint]*models.Reservation{},
		blocks:            map[uint]*models.CalendarBlock{},
		reminders:         map[uint]*models.Reminder{},
		nextReservationID: 1,
		nextBlockID:       1,
		nextReminderID:    1,
	}
	for _, svc := range services {
		r.services[svc.ID] = svc
	}
	return r
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return svc, nil
}

// sem filtro de active, igual ao repositório GORM; quem precisa
// distinguir reserva desativada decide na camada de cima
func (r *fakeRepo) GetReservation(_ context.Context, id uint) (*models.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *fakeRepo) GetReservationForUser(
	ctx context.Context, id uint, userID uint,
) (*models.Reservation, error) {
	res, err := r.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return res, nil
}

func (r *fakeRepo) ListForUser(_ context.Context, userID uint) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, res := range r.reservations {
		if res.Active && res.UserID == userID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListForPeriod(
	_ context.Context, start, end time.Time,
) ([]models.Reservation, error) {
	w := domain.Window{Start: start, End: end}
	var out []models.Reservation
	for _, res := range r.reservations {
		if res.Active && w.Overlaps(domain.Window{Start: res.StartTime, End: res.EndTime}) {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *fakeRepo) HasConflict(
	_ context.Context, w domain.Window, excludeReservationID *uint,
) (bool, error) {
	return r.conflicts(w, excludeReservationID), nil
}

func (r *fakeRepo) conflicts(w domain.Window, excludeReservationID *uint) bool {
	for _, res := range r.reservations {
		if !res.Active || !domain.Status(res.Status).Occupies() {
			continue
		}
		if excludeReservationID != nil && res.ID == *excludeReservationID {
			continue
		}
		if w.Overlaps(domain.Window{Start: res.StartTime, End: res.EndTime}) {
			return true
		}
	}
	for _, b := range r.blocks {
		if !b.Active {
			continue
		}
		if excludeReservationID != nil && b.ReservationID != nil &&
			*b.ReservationID == *excludeReservationID {
			continue
		}
		if w.Overlaps(domain.Window{Start: b.StartTime, End: b.EndTime}) {
			return true
		}
	}
	return false
}

func (r *fakeRepo) CreateWithBlock(
	_ context.Context, res *models.Reservation, block *models.CalendarBlock,
) error {
	w := domain.Window{Start: res.StartTime, End: res.EndTime}
	if r.conflicts(w, nil) {
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	res.ID = r.nextReservationID
	r.nextReservationID++
	cp := *res
	r.reservations[res.ID] = &cp

	block.ID = r.nextBlockID
	r.nextBlockID++
	id := res.ID
	block.ReservationID = &id
	bcp := *block
	r.blocks[block.ID] = &bcp

	return nil
}

func (r *fakeRepo) Reschedule(
	_ context.Context, res *models.Reservation, w domain.Window,
) error {
	id := res.ID
	if r.conflicts(w, &id) {
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	stored := r.reservations[res.ID]
	stored.StartTime = w.Start
	stored.EndTime = w.End
	r.syncBlock(stored)
	return nil
}

func (r *fakeRepo) ApplyTransition(
	_ context.Context, res *models.Reservation, reminder *models.Reminder,
) error {
	cp := *res
	r.reservations[res.ID] = &cp
	r.syncBlock(&cp)

	if reminder != nil {
		reminder.ID = r.nextReminderID
		r.nextReminderID++
		rcp := *reminder
		r.reminders[reminder.ID] = &rcp
	}

	if res.Status == string(domain.StatusCancelled) || !res.Active {
		for _, rem := range r.reminders {
			if rem.ReservationID == res.ID {
				rem.Active = false
			}
		}
	}
	return nil
}

func (r *fakeRepo) syncBlock(res *models.Reservation) {
	occupies := res.Active && domain.Status(res.Status).Occupies()

	for _, b := range r.blocks {
		if b.ReservationID != nil && *b.ReservationID == res.ID {
			b.StartTime = res.StartTime
			b.EndTime = res.EndTime
			b.Active = occupies
			return
		}
	}

	if occupies {
		svcName := ""
		if svc, ok := r.services[res.ServiceID]; ok {
			svcName = svc.Name
		}
		block := calendar.ForReservation(res, svcName)
		block.ID = r.nextBlockID
		r.nextBlockID++
		r.blocks[block.ID] = &block
	}
}

// blockFor devolve o bloco vinculado à reserva, se existir.
func (r *fakeRepo) blockFor(reservationID uint) *models.CalendarBlock {
	for _, b := range r.blocks {
		if b.ReservationID != nil && *b.ReservationID == reservationID {
			return b
		}
	}
	return nil
}
