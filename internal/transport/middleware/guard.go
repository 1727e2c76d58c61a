package middleware

import (
	"context"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
	"github.com/Michael3682/track-n-find-sub000/pkg/ctxutil"
)

// RequireModerator returns domain.ErrForbidden if the context user holds no
// moderating role. Use inside handlers, not as HTTP middleware.
func RequireModerator(ctx context.Context) error {
	if !ctxutil.IsModeratorCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
func RequireAdmin(ctx context.Context) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
