package auth

import "github.com/Michael3682/track-n-find-sub000/internal/domain"

// AuthResult is returned by Register and LoginWithPassword.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
