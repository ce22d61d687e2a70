package domain

import (
	"strings"
	"time"
)

type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

type Identity struct {
	ID           string
	Email        string
	PasswordHash string
	Roles        string // comma-joined role names
	FailedLogins int
	LockUntil    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the comma-joined role set contains the given role.
func (i *Identity) HasRole(role string) bool {
	return RolesContain(i.Roles, role)
}

// RolesContain checks a comma-joined role string for one role name.
func RolesContain(roles, role string) bool {
	for _, r := range strings.Split(roles, ",") {
		if strings.TrimSpace(r) == role {
			return true
		}
	}
	return false
}

type RevokedToken struct {
	JTI        string
	Kind       TokenKind
	IdentityID string // empty when the owning identity is unknown or deleted
	RevokedAt  time.Time
}
