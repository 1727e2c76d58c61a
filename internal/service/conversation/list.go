package conversation

import (
	"context"
	"fmt"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
	"github.com/Michael3682/track-n-find-sub000/pkg/ctxutil"
)

// ListForUser returns every conversation the caller participates in, most
// recently active first, each projected for the caller with its latest
// message only.
func (s *Service) ListForUser(ctx context.Context) ([]domain.ConversationView, error) {
	viewerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	metas, err := s.conversations.ListForUser(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("conversation.ListForUser: %w", err)
	}

	views := make([]domain.ConversationView, 0, len(metas))
	for _, cm := range metas {
		views = append(views, projectMeta(cm, viewerID))
	}

	return views, nil
}
