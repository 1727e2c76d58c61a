// Package item implements lost and found item reporting. Items are the
// referents of conversations, claims and turnover requests; the CRUD here is
// deliberately thin.
package item

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
)

// itemRepo defines the item repository interface needed by item service.
type itemRepo interface {
	Create(ctx context.Context, it *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Item, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
}

// Service implements item reporting operations.
type Service struct {
	log   *slog.Logger
	items itemRepo
}

// NewService creates a new item service instance.
func NewService(logger *slog.Logger, items itemRepo) *Service {
	return &Service{
		log:   logger.With("service", "item"),
		items: items,
	}
}
