// Package conversation implements find-or-create and read operations for
// chat threads between an item's reporter and an interested counterparty.
package conversation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/config"
	"github.com/Michael3682/track-n-find-sub000/internal/domain"
)

// conversationRepo defines the conversation repository interface needed by
// conversation service.
type conversationRepo interface {
	Create(ctx context.Context, c *domain.Conversation) (*domain.Conversation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
	GetByTriple(ctx context.Context, itemID, hostID, senderID uuid.UUID) (*domain.Conversation, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.ConversationWithMeta, error)
}

// itemRepo defines the item repository interface needed by conversation service.
type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
}

// userRepo defines the user repository interface needed by conversation service.
type userRepo interface {
	GetNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// messageRepo defines the message repository interface needed by conversation service.
type messageRepo interface {
	ListByConversation(ctx context.Context, conversationID uuid.UUID, limit int) ([]domain.Message, error)
}

// Service implements conversation operations.
type Service struct {
	log           *slog.Logger
	conversations conversationRepo
	items         itemRepo
	users         userRepo
	messages      messageRepo
	cfg           config.ChatConfig
}

// NewService creates a new conversation service instance.
func NewService(
	logger *slog.Logger,
	conversations conversationRepo,
	items itemRepo,
	users userRepo,
	messages messageRepo,
	cfg config.ChatConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "conversation"),
		conversations: conversations,
		items:         items,
		users:         users,
		messages:      messages,
		cfg:           cfg,
	}
}

// thumbnail returns the item's first attachment, empty when it has none.
func thumbnail(item *domain.Item) string {
	if len(item.Attachments) == 0 {
		return ""
	}
	return item.Attachments[0]
}

// projectMeta converts a joined list row into the viewer-relative shape.
func projectMeta(cm domain.ConversationWithMeta, viewerID uuid.UUID) domain.ConversationView {
	view := domain.ProjectConversation(cm.Conversation, cm.ItemName, cm.ItemThumbnail, cm.HostName, cm.SenderName, viewerID)
	view.LastMessage = cm.LastMessage
	return view
}
