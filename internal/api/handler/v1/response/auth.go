package response

import "github.com/kravdojo/gym-api/internal/domain"

// AuthResponse is returned by login and sign-up.
type AuthResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}
