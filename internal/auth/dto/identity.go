package dto

import (
	"time"
)

type IdentityOutput struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Roles     string    `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateIdentityInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthContext is what Authorize hands back to protected operations: the
// verified caller and the claims that were trusted after the revocation check.
type AuthContext struct {
	IdentityID string
	Roles      string
	JTI        string
}
