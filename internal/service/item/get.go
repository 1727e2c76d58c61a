package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
	"github.com/Michael3682/track-n-find-sub000/pkg/ctxutil"
)

// Get returns a single item. Archived items are visible only to their
// reporter and to moderators; everyone else sees ErrNotFound, as if the
// report never existed.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("item.Get: %w", err)
	}

	if !item.IsActive && !s.canSeeArchived(ctx, item) {
		return nil, domain.ErrNotFound
	}

	return item, nil
}

// List returns items matching the filter. Non-moderators listing other
// people's items only see active ones.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Item, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.ItemFilter{
		Type:     input.Type,
		Status:   input.Status,
		Category: input.Category,
	}
	if input.Mine {
		filter.ReporterID = &callerID
	}
	if input.IncludeArchived {
		// Archived reports are private unless they are yours or you moderate.
		filter.OnlyActive = !input.Mine && !ctxutil.IsModeratorCtx(ctx)
	} else {
		filter.OnlyActive = true
	}

	items, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("item.List: %w", err)
	}
	return items, nil
}

func (s *Service) canSeeArchived(ctx context.Context, item *domain.Item) bool {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false
	}
	return callerID == item.ReporterID || ctxutil.IsModeratorCtx(ctx)
}
