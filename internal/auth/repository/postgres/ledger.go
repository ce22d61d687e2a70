package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/portofolyo/auth-service/internal/auth/domain"
)

// PostgresLedger is the relational revocation ledger: an append-only table
// keyed by jti. Presence in the table is the sole authority for "revoked".
type PostgresLedger struct {
	db PgxIface
}

func NewPostgresLedger(db PgxIface) *PostgresLedger {
	return &PostgresLedger{db: db}
}

func (l *PostgresLedger) Revoke(ctx context.Context, jti string, kind domain.TokenKind, identityID string) error {
	// identity_id stays nullable so revocations outlive identity deletion.
	var owner any
	if identityID != "" {
		owner = identityID
	}

	_, err := l.db.Exec(ctx, `
		INSERT INTO revoked_tokens (jti, token_kind, identity_id, revoked_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (jti) DO NOTHING
	`, jti, kind, owner)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

func (l *PostgresLedger) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var revoked bool
	row := l.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1)
	`, jti)
	if err := row.Scan(&revoked); err != nil {
		return false, fmt.Errorf("failed to check revocation: %w", err)
	}

	return revoked, nil
}

func (l *PostgresLedger) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := l.db.Exec(ctx, `DELETE FROM revoked_tokens WHERE revoked_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge revoked tokens: %w", err)
	}

	return tag.RowsAffected(), nil
}
