package conversation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
	"github.com/Michael3682/track-n-find-sub000/pkg/ctxutil"
)

// GetByID returns the conversation with its ordered message history,
// projected for the caller. Non-participants get ErrForbidden.
func (s *Service) GetByID(ctx context.Context, conversationID uuid.UUID) (*domain.ConversationView, error) {
	viewerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	conv, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("conversation.GetByID: %w", err)
	}
	if !conv.HasParticipant(viewerID) {
		return nil, domain.ErrForbidden
	}

	item, err := s.items.GetByID(ctx, conv.ItemID)
	if err != nil {
		return nil, fmt.Errorf("conversation.GetByID get item: %w", err)
	}

	view, err := s.buildView(ctx, conv, item, viewerID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messages.ListByConversation(ctx, conversationID, s.cfg.HistoryPageSize)
	if err != nil {
		return nil, fmt.Errorf("conversation.GetByID list messages: %w", err)
	}
	view.Messages = messages
	if len(messages) > 0 {
		last := messages[len(messages)-1]
		view.LastMessage = &last
	}

	return view, nil
}
