package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
	"github.com/Michael3682/track-n-find-sub000/internal/realtime"
)

// Send stores a message and bumps the conversation's activity timestamp in
// one transaction, then pushes it to the counterparty's live connections.
// Delivery is best-effort: an offline or failing recipient never fails the
// send, and per-conversation ordering comes solely from persistence order.
func (s *Service) Send(ctx context.Context, conversationID, authorID uuid.UUID, content string) (*domain.Message, error) {
	if authorID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if err := validateContent(content, s.cfg.MaxMessageLength); err != nil {
		return nil, err
	}

	conv, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("messaging.Send get conversation: %w", err)
	}
	if !conv.HasParticipant(authorID) {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	msg := &domain.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		AuthorID:       authorID,
		Content:        content,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var stored *domain.Message
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err := s.messages.Create(txCtx, msg)
		if err != nil {
			return fmt.Errorf("create message: %w", err)
		}
		if err := s.conversations.UpdateLastMessageAt(txCtx, conversationID, created.CreatedAt); err != nil {
			return fmt.Errorf("bump conversation: %w", err)
		}
		stored = created
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("messaging.Send: %w", err)
	}

	s.notifyCounterparty(ctx, conv, authorID, stored)

	return stored, nil
}

// notifyCounterparty pushes the new message and a refreshed conversation list
// to the other participant. Failures are logged and swallowed.
func (s *Service) notifyCounterparty(ctx context.Context, conv *domain.Conversation, authorID uuid.UUID, msg *domain.Message) {
	counterparty, ok := conv.Counterparty(authorID)
	if !ok {
		return
	}

	s.push.Push(counterparty, realtime.ReceiveMessageEvent(*msg))

	metas, err := s.conversations.ListForUser(ctx, counterparty)
	if err != nil {
		s.log.WarnContext(ctx, "conversation list refresh for push failed",
			slog.String("user_id", counterparty.String()),
			slog.String("error", err.Error()))
		return
	}

	views := make([]domain.ConversationView, 0, len(metas))
	for _, cm := range metas {
		view := domain.ProjectConversation(cm.Conversation, cm.ItemName, cm.ItemThumbnail, cm.HostName, cm.SenderName, counterparty)
		view.LastMessage = cm.LastMessage
		views = append(views, view)
	}

	s.push.Push(counterparty, realtime.NewMessageEvent(views))
}

// validateContent rejects empty and oversized message bodies.
func validateContent(content string, maxLen int) error {
	if strings.TrimSpace(content) == "" {
		return domain.NewValidationError("content", "required")
	}
	if maxLen > 0 && utf8.RuneCountInString(content) > maxLen {
		return domain.NewValidationError("content", fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return nil
}
