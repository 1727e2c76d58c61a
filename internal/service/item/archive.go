package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
	"github.com/Michael3682/track-n-find-sub000/pkg/ctxutil"
)

// Archive soft-deletes an item. The reporter and moderators may archive.
func (s *Service) Archive(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	return s.setActive(ctx, id, false)
}

// Restore brings an archived item back. Same authorization as Archive.
func (s *Service) Restore(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	return s.setActive(ctx, id, true)
}

func (s *Service) setActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Item, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("item.setActive get: %w", err)
	}
	if item.ReporterID != callerID && !ctxutil.IsModeratorCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if item.IsActive == active {
		return item, nil
	}

	updated, err := s.items.SetActive(ctx, id, active)
	if err != nil {
		return nil, fmt.Errorf("item.setActive: %w", err)
	}

	s.log.InfoContext(ctx, "item visibility changed",
		slog.String("item_id", id.String()),
		slog.Bool("active", active))

	return updated, nil
}

// HardDelete permanently removes an item and everything cascading from it.
// Only the reporter may do this.
func (s *Service) HardDelete(ctx context.Context, id uuid.UUID) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("item.HardDelete get: %w", err)
	}
	if item.ReporterID != callerID {
		return domain.ErrForbidden
	}

	if err := s.items.HardDelete(ctx, id); err != nil {
		return fmt.Errorf("item.HardDelete: %w", err)
	}

	s.log.InfoContext(ctx, "item hard deleted", slog.String("item_id", id.String()))
	return nil
}
