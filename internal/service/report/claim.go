package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
	"github.com/Michael3682/track-n-find-sub000/pkg/ctxutil"
)

// ReportClaim records an accepted claim on a FOUND item and flips its status
// to CLAIMED. The flip is a compare-and-swap on the UNCLAIMED status, so of
// two simultaneous claims exactly one wins; the loser gets ErrConflict.
func (s *Service) ReportClaim(ctx context.Context, input ClaimInput) (*domain.Claim, error) {
	return s.reportResolution(ctx, input, domain.ItemTypeFound, domain.ClaimKindClaim)
}

// ReportReturn is the symmetric operation for LOST items: the counterparty
// returns the item to its owner.
func (s *Service) ReportReturn(ctx context.Context, input ClaimInput) (*domain.Claim, error) {
	return s.reportResolution(ctx, input, domain.ItemTypeLost, domain.ClaimKindReturn)
}

func (s *Service) reportResolution(ctx context.Context, input ClaimInput, wantType domain.ItemType, kind domain.ClaimKind) (*domain.Claim, error) {
	claimerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("report.%s get item: %w", kind, err)
	}
	if item.Type != wantType {
		return nil, domain.NewValidationError("itemId", fmt.Sprintf("item is not a %s report", wantType))
	}
	if !item.IsActive {
		return nil, domain.NewValidationError("itemId", "item is archived")
	}
	if item.ReporterID == claimerID {
		return nil, domain.ErrForbidden
	}

	conv, err := s.conversations.GetByID(ctx, input.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("report.%s get conversation: %w", kind, err)
	}
	if conv.ItemID != input.ItemID {
		return nil, domain.NewValidationError("conversationId", "conversation is about a different item")
	}
	if !conv.HasParticipant(claimerID) {
		return nil, domain.ErrForbidden
	}

	claimer, err := s.users.GetByID(ctx, claimerID)
	if err != nil {
		return nil, fmt.Errorf("report.%s get claimer: %w", kind, err)
	}

	claim := &domain.Claim{
		ID:             uuid.New(),
		ItemID:         item.ID,
		Kind:           kind,
		ClaimerID:      claimerID,
		ClaimerName:    claimer.Name,
		Credentials:    input.Credentials,
		ReporterID:     item.ReporterID,
		ConversationID: conv.ID,
		CreatedAt:      s.now(),
	}

	var created *domain.Claim
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		flipped, err := s.items.CASStatus(txCtx, item.ID, domain.ItemStatusUnclaimed, domain.ItemStatusClaimed)
		if err != nil {
			return fmt.Errorf("flip item status: %w", err)
		}
		if !flipped {
			return fmt.Errorf("item already claimed: %w", domain.ErrConflict)
		}

		created, err = s.claims.CreateClaim(txCtx, claim)
		if err != nil {
			return fmt.Errorf("create claim: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("report.%s: %w", kind, err)
	}

	s.log.InfoContext(ctx, "item resolution recorded",
		slog.String("item_id", item.ID.String()),
		slog.String("kind", kind.String()),
		slog.String("claimer_id", claimerID.String()))

	return created, nil
}

// LatestClaim returns the most recent claim for an item. Available to the
// item's reporter and to moderators.
func (s *Service) LatestClaim(ctx context.Context, itemID uuid.UUID) (*domain.Claim, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	claim, err := s.claims.LatestClaimByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("report.LatestClaim: %w", err)
	}

	if claim.ReporterID != callerID && claim.ClaimerID != callerID && !ctxutil.IsModeratorCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	return claim, nil
}
