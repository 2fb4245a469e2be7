package reservation

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
)

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute é a consulta de disponibilidade que o cliente faz antes de
// reservar. Leitura pura: o resultado pode ficar obsoleto até o
// Create, que revalida a janela sob lock.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (bool, error) {

	w, err := domain.NewWindow(start, end)
	if err != nil {
		return false, err
	}

	conflict, err := uc.repo.HasConflict(ctx, w, nil)
	if err != nil {
		return false, err
	}
	return !conflict, nil
}
