package domain

//go:generate mockgen -destination=../../mocks/mock_repository.go -package=mocks github.com/portofolyo/auth-service/internal/auth/domain IdentityRepository,RevocationLedger

import (
	"context"
	"time"

	"github.com/portofolyo/auth-service/internal/auth/lockout"
)

type IdentityRepository interface {
	GetByEmail(ctx context.Context, email string) (*Identity, error)
	GetByID(ctx context.Context, id string) (*Identity, error)
	Create(ctx context.Context, identity *Identity) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateEmail(ctx context.Context, id, email string) error
	Delete(ctx context.Context, id string) error

	// ApplyFailedAttempt runs the policy's failure branch inside a single
	// transaction so racing failed logins cannot lose counter increments.
	ApplyFailedAttempt(ctx context.Context, id string, policy lockout.Policy) (lockout.State, error)
	ClearLockout(ctx context.Context, id string) error
}

type RevocationLedger interface {
	// Revoke appends the jti to the ledger. Revoking an already-revoked jti
	// is a no-op success.
	Revoke(ctx context.Context, jti string, kind TokenKind, identityID string) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	// PurgeBefore drops entries revoked before the cutoff. Storage hygiene
	// only; correctness never depends on it.
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
