package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/portofolyo/auth-service/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/portofolyo/auth-service/internal/auth/domain"
	autherror "github.com/portofolyo/auth-service/internal/errors"
)

type TokenGenerator interface {
	IssueAccess(identityID, roles string) (string, *JWTCustomClaims, error)
	IssueRefresh(identityID string) (string, *JWTCustomClaims, error)
	VerifyAccess(tokenString string) (*JWTCustomClaims, error)
	VerifyRefresh(tokenString string) (*JWTCustomClaims, error)
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
}

type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	// Roles is serialized at issuance time; later role changes do not affect
	// tokens already in flight.
	Roles     string           `json:"roles,omitempty"`
	TokenType domain.TokenKind `json:"token_type"`
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

// IssueAccess mints a short-lived access token for the identity. Every call
// gets a fresh jti, which is the revocation key for this issuance.
func (ts *TokenService) IssueAccess(identityID, roles string) (string, *JWTCustomClaims, error) {
	now := time.Now()
	claims := &JWTCustomClaims{
		Roles:     roles,
		TokenType: domain.TokenKindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identityID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.AccessTokenExpiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.AccessTokenSecret))
	if err != nil {
		return "", nil, fmt.Errorf("sign access token: %w", err)
	}

	return signed, claims, nil
}

// IssueRefresh mints a long-lived refresh token. Refresh tokens carry no
// roles claim; roles are re-read from the store on rotation.
func (ts *TokenService) IssueRefresh(identityID string) (string, *JWTCustomClaims, error) {
	now := time.Now()
	claims := &JWTCustomClaims{
		TokenType: domain.TokenKindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identityID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.RefreshTokenExpiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.RefreshTokenSecret))
	if err != nil {
		return "", nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return signed, claims, nil
}

func (ts *TokenService) VerifyAccess(tokenString string) (*JWTCustomClaims, error) {
	return ts.verify(tokenString, ts.AccessTokenSecret, domain.TokenKindAccess)
}

func (ts *TokenService) VerifyRefresh(tokenString string) (*JWTCustomClaims, error) {
	return ts.verify(tokenString, ts.RefreshTokenSecret, domain.TokenKindRefresh)
}

// verify fails closed: any parse or signature problem other than a plain
// expiry maps to the malformed outcome. A token of the wrong kind is
// malformed too, so a refresh token can never pass as an access token.
func (ts *TokenService) verify(tokenString, secret string, kind domain.TokenKind) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherror.ErrTokenExpired
		}
		return nil, autherror.ErrTokenMalformed
	}

	if !token.Valid || claims.ID == "" || claims.Subject == "" {
		return nil, autherror.ErrTokenMalformed
	}

	if claims.TokenType != kind {
		return nil, autherror.ErrTokenMalformed
	}

	return claims, nil
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}

func (ts *TokenService) GetRefreshTokenExpiry() time.Duration {
	return ts.RefreshTokenExpiry
}
