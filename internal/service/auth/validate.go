package auth

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
)

// ValidateToken checks an access token and returns the user ID and role it
// carries. Used by the HTTP auth middleware and the websocket handshake.
func (s *Service) ValidateToken(token string) (uuid.UUID, domain.UserRole, error) {
	userID, roleStr, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	role := domain.UserRole(roleStr)
	if !role.IsValid() {
		return uuid.Nil, "", fmt.Errorf("%w: unknown role %q", domain.ErrUnauthorized, roleStr)
	}

	return userID, role, nil
}
