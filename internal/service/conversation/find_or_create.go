package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
	"github.com/Michael3682/track-n-find-sub000/pkg/ctxutil"
)

// FindOrCreate returns the conversation for (itemID, hostID, caller), creating
// it on first contact. Two callers racing on the same triple both end up with
// the single stored row: the loser of the insert race silently re-reads the
// winner's conversation.
func (s *Service) FindOrCreate(ctx context.Context, itemID, hostID uuid.UUID) (*domain.ConversationView, error) {
	senderID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if itemID == uuid.Nil {
		return nil, domain.NewValidationError("itemId", "required")
	}
	if hostID == senderID {
		return nil, domain.NewValidationError("hostId", "host and sender must be different users")
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("conversation.FindOrCreate get item: %w", err)
	}
	if item.ReporterID != hostID {
		return nil, domain.NewValidationError("hostId", "host is not the item's reporter")
	}

	conv, err := s.conversations.GetByTriple(ctx, itemID, hostID, senderID)
	switch {
	case err == nil:
		// existing thread
	case errors.Is(err, domain.ErrNotFound):
		conv, err = s.create(ctx, itemID, hostID, senderID)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("conversation.FindOrCreate lookup: %w", err)
	}

	view, err := s.buildView(ctx, conv, item, senderID)
	if err != nil {
		return nil, err
	}

	return view, nil
}

// create inserts the conversation, falling back to the winning row when a
// concurrent caller got there first.
func (s *Service) create(ctx context.Context, itemID, hostID, senderID uuid.UUID) (*domain.Conversation, error) {
	conv, err := s.conversations.Create(ctx, &domain.Conversation{
		ID:        uuid.New(),
		ItemID:    itemID,
		HostID:    hostID,
		SenderID:  senderID,
		CreatedAt: time.Now(),
	})
	if err == nil {
		s.log.InfoContext(ctx, "conversation created",
			slog.String("conversation_id", conv.ID.String()),
			slog.String("item_id", itemID.String()))
		return conv, nil
	}

	if errors.Is(err, domain.ErrAlreadyExists) {
		existing, readErr := s.conversations.GetByTriple(ctx, itemID, hostID, senderID)
		if readErr != nil {
			return nil, fmt.Errorf("conversation.FindOrCreate reread after conflict: %w", readErr)
		}
		return existing, nil
	}

	return nil, fmt.Errorf("conversation.FindOrCreate create: %w", err)
}

// buildView joins participant names onto the conversation and projects it for
// the viewer.
func (s *Service) buildView(ctx context.Context, conv *domain.Conversation, item *domain.Item, viewerID uuid.UUID) (*domain.ConversationView, error) {
	names, err := s.users.GetNames(ctx, []uuid.UUID{conv.HostID, conv.SenderID})
	if err != nil {
		return nil, fmt.Errorf("conversation view names: %w", err)
	}

	view := domain.ProjectConversation(*conv, item.Name, thumbnail(item), names[conv.HostID], names[conv.SenderID], viewerID)
	return &view, nil
}
