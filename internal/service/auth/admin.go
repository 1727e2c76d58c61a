package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
	"github.com/Michael3682/track-n-find-sub000/pkg/ctxutil"
)

// SetUserRole changes another user's role. Only moderators and admins may
// call it; assigning ADMIN requires an admin caller. Callers cannot change
// their own role, so the last admin cannot lock everyone out by accident.
func (s *Service) SetUserRole(ctx context.Context, targetID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if !role.IsValid() {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "role", Message: "unknown role"},
		}}
	}

	if !ctxutil.IsModeratorCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if role == domain.UserRoleAdmin && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if callerID == targetID {
		return nil, fmt.Errorf("auth.SetUserRole: %w: cannot change own role", domain.ErrForbidden)
	}

	updated, err := s.users.UpdateRole(ctx, targetID, role)
	if err != nil {
		return nil, fmt.Errorf("auth.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role changed",
		slog.String("user_id", targetID.String()),
		slog.String("role", role.String()),
		slog.String("changed_by", callerID.String()))

	return updated, nil
}
