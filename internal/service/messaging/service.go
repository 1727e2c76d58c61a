// Package messaging implements message send, edit and delete, plus the
// fire-and-forget live push to the counterparty.
package messaging

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/config"
	"github.com/Michael3682/track-n-find-sub000/internal/domain"
	"github.com/Michael3682/track-n-find-sub000/internal/realtime"
)

// messageRepo defines the message repository interface needed by messaging service.
type messageRepo interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*domain.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// conversationRepo defines the conversation repository interface needed by
// messaging service.
type conversationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
	UpdateLastMessageAt(ctx context.Context, id uuid.UUID, at time.Time) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.ConversationWithMeta, error)
}

// txManager defines the transaction manager interface needed by messaging service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// pusher delivers events to a user's live connections. Best-effort by
// contract: it never returns an error.
type pusher interface {
	Push(userID uuid.UUID, ev realtime.Event)
}

// Service implements messaging operations.
type Service struct {
	log           *slog.Logger
	messages      messageRepo
	conversations conversationRepo
	tx            txManager
	push          pusher
	cfg           config.ChatConfig
}

// NewService creates a new messaging service instance.
func NewService(
	logger *slog.Logger,
	messages messageRepo,
	conversations conversationRepo,
	tx txManager,
	push pusher,
	cfg config.ChatConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "messaging"),
		messages:      messages,
		conversations: conversations,
		tx:            tx,
		push:          push,
		cfg:           cfg,
	}
}
