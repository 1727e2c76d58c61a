package messaging

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
	"github.com/Michael3682/track-n-find-sub000/pkg/ctxutil"
)

// Edit replaces the body of the caller's own message. Edits are not pushed
// to live connections; recipients see them on the next history fetch.
func (s *Service) Edit(ctx context.Context, messageID uuid.UUID, content string) (*domain.Message, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validateContent(content, s.cfg.MaxMessageLength); err != nil {
		return nil, err
	}

	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("messaging.Edit get message: %w", err)
	}
	if msg.AuthorID != callerID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.messages.UpdateContent(ctx, messageID, content)
	if err != nil {
		return nil, fmt.Errorf("messaging.Edit: %w", err)
	}

	return updated, nil
}

// Delete removes the caller's own message. Like Edit, not pushed live.
func (s *Service) Delete(ctx context.Context, messageID uuid.UUID) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return fmt.Errorf("messaging.Delete get message: %w", err)
	}
	if msg.AuthorID != callerID {
		return domain.ErrForbidden
	}

	if err := s.messages.Delete(ctx, messageID); err != nil {
		return fmt.Errorf("messaging.Delete: %w", err)
	}

	return nil
}
