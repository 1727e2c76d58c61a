// Package report implements the claim, return and turnover workflow that
// moves an item from reported to resolved.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
)

// claimRepo defines the claim repository interface needed by report service.
type claimRepo interface {
	CreateClaim(ctx context.Context, c *domain.Claim) (*domain.Claim, error)
	LatestClaimByItem(ctx context.Context, itemID uuid.UUID) (*domain.Claim, error)
	CreateTurnover(ctx context.Context, tr *domain.TurnoverRequest) (*domain.TurnoverRequest, error)
	LatestTurnoverByItem(ctx context.Context, itemID uuid.UUID) (*domain.TurnoverRequest, error)
	DecideTurnover(ctx context.Context, id uuid.UUID, status domain.TurnoverStatus, decidedBy uuid.UUID) (*domain.TurnoverRequest, error)
}

// itemRepo defines the item repository interface needed by report service.
type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	CASStatus(ctx context.Context, id uuid.UUID, from, to domain.ItemStatus) (bool, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Item, error)
}

// conversationRepo defines the conversation repository interface needed by
// report service.
type conversationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
}

// userRepo defines the user repository interface needed by report service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by report service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the claim/return/turnover operations.
type Service struct {
	log           *slog.Logger
	claims        claimRepo
	items         itemRepo
	conversations conversationRepo
	users         userRepo
	tx            txManager
	now           func() time.Time
}

// NewService creates a new report service instance.
func NewService(
	logger *slog.Logger,
	claims claimRepo,
	items itemRepo,
	conversations conversationRepo,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		log:           logger.With("service", "report"),
		claims:        claims,
		items:         items,
		conversations: conversations,
		users:         users,
		tx:            tx,
		now:           time.Now,
	}
}
