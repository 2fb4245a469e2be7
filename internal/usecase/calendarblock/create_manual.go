package calendarblock

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CreateManualBlockInput struct {
	Title string
	Kind  string // manual | maintenance
	Start time.Time
	End   time.Time
}

type CreateManualBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateManualBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateManualBlock {
	return &CreateManualBlock{
		repo:  repo,
		audit: audit,
	}
}

// Execute cria um bloqueio manual/manutenção. Também passa pelo
// detector de conflito: bloqueios manuais ocupam o mesmo calendário.
func (uc *CreateManualBlock) Execute(
	ctx context.Context,
	actorID uint,
	in CreateManualBlockInput,
) (*models.CalendarBlock, error) {

	if !domain.IsManualKind(in.Kind) {
		return nil, httperr.ErrBusinessDetail(
			httperr.CodeInvalidBlockKind, in.Kind,
		)
	}

	w, err := reservation.NewWindow(in.Start, in.End)
	if err != nil {
		return nil, err
	}

	block := domain.Manual(in.Title, in.Kind, w)
	if err := uc.repo.CreateManualBlock(ctx, &block); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "calendar_block_created",
		Entity:   "calendar_block",
		EntityID: &block.ID,
	})

	return &block, nil
}
