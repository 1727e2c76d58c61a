package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
	"github.com/Michael3682/track-n-find-sub000/pkg/ctxutil"
)

// RequestTurnover records the finder's intent to hand a FOUND item over to
// campus custody. At most one request per item may be pending; a duplicate
// while one is open returns ErrAlreadyExists.
func (s *Service) RequestTurnover(ctx context.Context, input TurnoverInput) (*domain.TurnoverRequest, error) {
	finderID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("report.RequestTurnover get item: %w", err)
	}
	if item.Type != domain.ItemTypeFound {
		return nil, domain.NewValidationError("itemId", "only found items can be turned over")
	}
	if item.ReporterID != finderID {
		return nil, domain.ErrForbidden
	}

	created, err := s.claims.CreateTurnover(ctx, &domain.TurnoverRequest{
		ID:        uuid.New(),
		ItemID:    item.ID,
		FinderID:  finderID,
		ProofURL:  input.ProofURL,
		Status:    domain.TurnoverStatusPending,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("report.RequestTurnover: %w", err)
	}

	s.log.InfoContext(ctx, "turnover requested",
		slog.String("item_id", item.ID.String()),
		slog.String("finder_id", finderID.String()))

	return created, nil
}

// ConfirmTurnover finalizes a pending handoff: the request becomes CONFIRMED
// and the item moves into custody (CLAIMED and archived). Confirming an
// already-confirmed request is a no-op that returns the current state.
func (s *Service) ConfirmTurnover(ctx context.Context, itemID uuid.UUID) (*domain.TurnoverRequest, error) {
	return s.decideTurnover(ctx, itemID, domain.TurnoverStatusConfirmed)
}

// RejectTurnover declines a pending handoff: the request becomes REJECTED
// and the item stays available. Idempotent like ConfirmTurnover.
func (s *Service) RejectTurnover(ctx context.Context, itemID uuid.UUID) (*domain.TurnoverRequest, error) {
	return s.decideTurnover(ctx, itemID, domain.TurnoverStatusRejected)
}

func (s *Service) decideTurnover(ctx context.Context, itemID uuid.UUID, decision domain.TurnoverStatus) (*domain.TurnoverRequest, error) {
	moderatorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsModeratorCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	latest, err := s.claims.LatestTurnoverByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("report.decide turnover: %w", err)
	}

	if latest.Status.IsDecided() {
		if latest.Status == decision {
			// Repeated decision in the same direction: no-op.
			return latest, nil
		}
		return nil, fmt.Errorf("turnover already %s: %w", latest.Status, domain.ErrConflict)
	}

	var decided *domain.TurnoverRequest
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		decided, err = s.claims.DecideTurnover(txCtx, latest.ID, decision, moderatorID)
		if err != nil {
			return err
		}

		switch decision {
		case domain.TurnoverStatusConfirmed:
			if _, err := s.items.CASStatus(txCtx, itemID, domain.ItemStatusUnclaimed, domain.ItemStatusClaimed); err != nil {
				return fmt.Errorf("move item into custody: %w", err)
			}
			if _, err := s.items.SetActive(txCtx, itemID, false); err != nil {
				return fmt.Errorf("archive item: %w", err)
			}
		case domain.TurnoverStatusRejected:
			if _, err := s.items.CASStatus(txCtx, itemID, domain.ItemStatusClaimed, domain.ItemStatusUnclaimed); err != nil {
				return fmt.Errorf("release item: %w", err)
			}
			if _, err := s.items.SetActive(txCtx, itemID, true); err != nil {
				return fmt.Errorf("restore item: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// A concurrent moderator decided first. Re-read and apply the
			// idempotency rule against the winner's state.
			return s.resolveDecisionRace(ctx, itemID, decision)
		}
		return nil, fmt.Errorf("report.decide turnover: %w", err)
	}

	s.log.InfoContext(ctx, "turnover decided",
		slog.String("item_id", itemID.String()),
		slog.String("decision", decision.String()),
		slog.String("moderator_id", moderatorID.String()))

	return decided, nil
}

func (s *Service) resolveDecisionRace(ctx context.Context, itemID uuid.UUID, decision domain.TurnoverStatus) (*domain.TurnoverRequest, error) {
	latest, err := s.claims.LatestTurnoverByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("report.decide turnover reread: %w", err)
	}
	if latest.Status == decision {
		return latest, nil
	}
	return nil, fmt.Errorf("turnover already %s: %w", latest.Status, domain.ErrConflict)
}

// LatestTurnover returns the item's most recent turnover request. Moderators
// and the finder may look it up.
func (s *Service) LatestTurnover(ctx context.Context, itemID uuid.UUID) (*domain.TurnoverRequest, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	latest, err := s.claims.LatestTurnoverByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("report.LatestTurnover: %w", err)
	}
	if latest.FinderID != callerID && !ctxutil.IsModeratorCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	return latest, nil
}
