package calendarblock

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type RemoveManualBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveManualBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RemoveManualBlock {
	return &RemoveManualBlock{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RemoveManualBlock) Execute(
	ctx context.Context,
	actorID uint,
	blockID uint,
) (*models.CalendarBlock, error) {

	block, err := uc.repo.RemoveManualBlock(ctx, blockID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "calendar_block_removed",
		Entity:   "calendar_block",
		EntityID: &block.ID,
	})

	return block, nil
}
