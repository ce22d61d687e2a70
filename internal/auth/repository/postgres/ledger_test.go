package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portofolyo/auth-service/internal/auth/domain"
	repo "github.com/portofolyo/auth-service/internal/auth/repository/postgres"
)

func TestLedgerRevoke(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	l := repo.NewPostgresLedger(mock)
	ctx := context.Background()

	t.Run("appends with owner", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO revoked_tokens").
			WithArgs("jti-1", domain.TokenKindRefresh, "identity-123").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, l.Revoke(ctx, "jti-1", domain.TokenKindRefresh, "identity-123"))
	})

	t.Run("appends without owner", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO revoked_tokens").
			WithArgs("jti-2", domain.TokenKindAccess, nil).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, l.Revoke(ctx, "jti-2", domain.TokenKindAccess, ""))
	})

	t.Run("re-revoking is a no-op success", func(t *testing.T) {
		// ON CONFLICT DO NOTHING: zero rows affected, no error.
		mock.ExpectExec("INSERT INTO revoked_tokens").
			WithArgs("jti-1", domain.TokenKindRefresh, "identity-123").
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		require.NoError(t, l.Revoke(ctx, "jti-1", domain.TokenKindRefresh, "identity-123"))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerIsRevoked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	l := repo.NewPostgresLedger(mock)
	ctx := context.Background()

	t.Run("present", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("jti-1").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		revoked, err := l.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("absent", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("jti-unknown").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		revoked, err := l.IsRevoked(ctx, "jti-unknown")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerPurgeBefore(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	l := repo.NewPostgresLedger(mock)
	cutoff := time.Now().Add(-7 * 24 * time.Hour)

	mock.ExpectExec("DELETE FROM revoked_tokens").
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	purged, err := l.PurgeBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(4), purged)

	require.NoError(t, mock.ExpectationsWereMet())
}
