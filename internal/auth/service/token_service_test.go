package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portofolyo/auth-service/internal/auth/domain"
	autherror "github.com/portofolyo/auth-service/internal/errors"
)

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 60, 10080)

	assert.NotNil(t, ts)
	assert.Equal(t, time.Hour, ts.GetAccessTokenExpiry())
	assert.Equal(t, 7*24*time.Hour, ts.GetRefreshTokenExpiry())
}

func TestTokenService_IssueAccess(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 60, 10080)

	signed, claims, err := ts.IssueAccess("identity-123", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, signed)

	require.NotNil(t, claims)
	assert.Equal(t, "identity-123", claims.Subject)
	assert.Equal(t, "admin", claims.Roles)
	assert.Equal(t, domain.TokenKindAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID, "every issuance carries a jti")
}

func TestTokenService_JTIUniquePerIssuance(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 60, 10080)

	_, first, err := ts.IssueAccess("identity-123", "admin")
	require.NoError(t, err)
	_, second, err := ts.IssueAccess("identity-123", "admin")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestTokenService_RoundTrip(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 60, 10080)

	tests := []struct {
		name   string
		issue  func() (string, *JWTCustomClaims, error)
		verify func(string) (*JWTCustomClaims, error)
		roles  string
	}{
		{
			name:   "access token",
			issue:  func() (string, *JWTCustomClaims, error) { return ts.IssueAccess("identity-123", "admin,editor") },
			verify: ts.VerifyAccess,
			roles:  "admin,editor",
		},
		{
			name:   "refresh token",
			issue:  func() (string, *JWTCustomClaims, error) { return ts.IssueRefresh("identity-123") },
			verify: ts.VerifyRefresh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, issued, err := tt.issue()
			require.NoError(t, err)

			claims, err := tt.verify(signed)
			require.NoError(t, err)

			assert.Equal(t, "identity-123", claims.Subject)
			assert.Equal(t, issued.ID, claims.ID)
			assert.Equal(t, tt.roles, claims.Roles)
		})
	}
}

func TestTokenService_Verify_Failures(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 60, 10080)
	other := NewTokenService("other-access", "other-refresh", 60, 10080)

	accessToken, _, err := ts.IssueAccess("identity-123", "admin")
	require.NoError(t, err)
	refreshToken, _, err := ts.IssueRefresh("identity-123")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		verify  func(string) (*JWTCustomClaims, error)
		wantErr error
	}{
		{
			name:    "garbage string is malformed",
			token:   "not-a-token",
			verify:  ts.VerifyAccess,
			wantErr: autherror.ErrTokenMalformed,
		},
		{
			name:    "wrong secret is malformed",
			token:   accessToken,
			verify:  other.VerifyAccess,
			wantErr: autherror.ErrTokenMalformed,
		},
		{
			name:    "refresh token rejected as access",
			token:   refreshToken,
			verify:  ts.VerifyAccess,
			wantErr: autherror.ErrTokenMalformed,
		},
		{
			name:    "access token rejected as refresh",
			token:   accessToken,
			verify:  ts.VerifyRefresh,
			wantErr: autherror.ErrTokenMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.verify(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 60, 10080)

	// Sign an already-expired token with the service's own secret.
	now := time.Now()
	claims := &JWTCustomClaims{
		TokenType: domain.TokenKindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-expired",
			Subject:   "identity-123",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	require.NoError(t, err)

	got, err := ts.VerifyAccess(signed)
	assert.ErrorIs(t, err, autherror.ErrTokenExpired)
	assert.Nil(t, got)
}

func TestTokenService_Verify_MissingJTI(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 60, 10080)

	now := time.Now()
	claims := &JWTCustomClaims{
		TokenType: domain.TokenKindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "identity-123",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	require.NoError(t, err)

	got, err := ts.VerifyAccess(signed)
	assert.ErrorIs(t, err, autherror.ErrTokenMalformed)
	assert.Nil(t, got)
}
