package reservation

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ===============================
// Time Window
// ===============================

// Window é um intervalo semiaberto [Start, End) no calendário compartilhado.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow valida End > Start antes de qualquer checagem de conflito.
func NewWindow(start, end time.Time) (Window, error) {
	if !end.After(start) {
		return Window{}, httperr.ErrBusinessDetail(
			httperr.CodeInvalidWindow,
			start.Format(time.RFC3339)+" >= "+end.Format(time.RFC3339),
		)
	}
	return Window{Start: start, End: end}, nil
}

// Overlaps: [s1,e1) e [s2,e2) conflitam sse s1 < e2 && s2 < e1.
// Fronteiras compartilhadas (e1 == s2) não conflitam.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
