package calendarblock

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListBlocks struct {
	repo domain.Repository
}

func NewListBlocks(repo domain.Repository) *ListBlocks {
	return &ListBlocks{repo: repo}
}

func (uc *ListBlocks) Execute(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.CalendarBlock, error) {
	return uc.repo.ListForPeriod(ctx, start, end)
}
