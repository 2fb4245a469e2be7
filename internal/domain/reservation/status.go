package reservation

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// InitialStatus é o status de toda reserva recém-criada.
func InitialStatus() Status {
	return StatusPending
}

// IsTerminal: nenhum estado sai de cancelled/completed.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Occupies indica se o status segura o horário no calendário.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}

// OccupyingStatuses é usado nas queries de conflito.
func OccupyingStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}

// ===============================
// Transition table
// ===============================

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	StatusCancelled: {},
	StatusCompleted: {},
}

// CanTransition valida a mudança de status. Auto-transição e saída de
// estado terminal são sempre ilegais.
func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.ErrBusinessDetail(
		httperr.CodeIllegalTransition,
		string(from)+" -> "+string(to),
	)
}
