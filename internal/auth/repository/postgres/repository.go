package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/portofolyo/auth-service/internal/auth/domain"
	"github.com/portofolyo/auth-service/internal/auth/lockout"
	autherror "github.com/portofolyo/auth-service/internal/errors"
)

const uniqueViolationCode = "23505"

// PgxIface is the subset of pgxpool.Pool the repositories need; pgxmock
// satisfies it in tests.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	query := `
		SELECT id, email, password_hash, roles, failed_logins, lock_until, created_at, updated_at
		FROM identities
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	identity, err := scanIdentity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity by email: %w", err)
	}

	return identity, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Identity, error) {
	query := `
		SELECT id, email, password_hash, roles, failed_logins, lock_until, created_at, updated_at
		FROM identities
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	identity, err := scanIdentity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity by id: %w", err)
	}

	return identity, nil
}

func (r *PostgresRepository) Create(ctx context.Context, identity *domain.Identity) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO identities (id, email, password_hash, roles, failed_logins, lock_until, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, identity.ID, identity.Email, identity.PasswordHash, identity.Roles,
		identity.FailedLogins, identity.LockUntil, identity.CreatedAt, identity.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return autherror.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("failed to create identity: %w", err)
	}

	return nil
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE identities SET password_hash = $1, updated_at = now() WHERE id = $2
	`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrIdentityNotFound
	}

	return nil
}

func (r *PostgresRepository) UpdateEmail(ctx context.Context, id, email string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE identities SET email = $1, updated_at = now() WHERE id = $2
	`, email, id)
	if err != nil {
		if isUniqueViolation(err) {
			return autherror.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("failed to update email: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrIdentityNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM identities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrIdentityNotFound
	}

	return nil
}

// ApplyFailedAttempt re-reads the lockout state under FOR UPDATE and writes
// the policy's next state in the same transaction, so two racing failed
// logins both land their increments.
func (r *PostgresRepository) ApplyFailedAttempt(ctx context.Context, id string, policy lockout.Policy) (lockout.State, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return lockout.State{}, fmt.Errorf("failed to begin lockout tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var state lockout.State
	row := tx.QueryRow(ctx, `
		SELECT failed_logins, lock_until FROM identities WHERE id = $1 FOR UPDATE
	`, id)
	if err := row.Scan(&state.FailedLogins, &state.LockUntil); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return lockout.State{}, autherror.ErrIdentityNotFound
		}
		return lockout.State{}, fmt.Errorf("failed to read lockout state: %w", err)
	}

	next := policy.Fail(state, time.Now())

	if _, err := tx.Exec(ctx, `
		UPDATE identities SET failed_logins = $1, lock_until = $2, updated_at = now() WHERE id = $3
	`, next.FailedLogins, next.LockUntil, id); err != nil {
		return lockout.State{}, fmt.Errorf("failed to write lockout state: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return lockout.State{}, fmt.Errorf("failed to commit lockout tx: %w", err)
	}

	return next, nil
}

func (r *PostgresRepository) ClearLockout(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE identities SET failed_logins = 0, lock_until = NULL, updated_at = now() WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to clear lockout state: %w", err)
	}

	return nil
}

func scanIdentity(row pgx.Row) (*domain.Identity, error) {
	var identity domain.Identity
	err := row.Scan(&identity.ID, &identity.Email, &identity.PasswordHash, &identity.Roles,
		&identity.FailedLogins, &identity.LockUntil, &identity.CreatedAt, &identity.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &identity, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
