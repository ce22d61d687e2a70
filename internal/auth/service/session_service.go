package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/portofolyo/auth-service/internal/auth/domain"
	"github.com/portofolyo/auth-service/internal/auth/dto"
	"github.com/portofolyo/auth-service/internal/auth/lockout"
	autherror "github.com/portofolyo/auth-service/internal/errors"
	"github.com/portofolyo/auth-service/pkg/constant"
)

// SessionService ties the credential store, lockout policy, token issuer and
// revocation ledger into the login/refresh/logout lifecycle.
type SessionService struct {
	identities domain.IdentityRepository
	ledger     domain.RevocationLedger
	tokens     TokenGenerator
	policy     lockout.Policy
	bcryptCost int
	logger     *zap.Logger
}

func NewSessionService(
	identities domain.IdentityRepository,
	ledger domain.RevocationLedger,
	tokens TokenGenerator,
	policy lockout.Policy,
	bcryptCost int,
	logger *zap.Logger,
) *SessionService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &SessionService{
		identities: identities,
		ledger:     ledger,
		tokens:     tokens,
		policy:     policy,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *SessionService) Register(ctx context.Context, input dto.RegisterInput) (*domain.Identity, error) {
	if input.Email == "" || input.Password == "" {
		return nil, autherror.ErrInvalidCredentials
	}

	existing, err := s.identities.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hashed),
		Roles:        constant.DefaultRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.identities.Create(ctx, identity); err != nil {
		return nil, err
	}

	s.logger.Info("identity registered", zap.String("identity_id", identity.ID))

	return identity, nil
}

// Login checks the lockout window before the password so a locked identity
// gets the same rejection whether or not the password is correct.
func (s *SessionService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	identity, err := s.identities.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		// Unknown email and wrong password are indistinguishable to callers.
		return nil, autherror.ErrInvalidCredentials
	}

	state := lockout.State{FailedLogins: identity.FailedLogins, LockUntil: identity.LockUntil}
	if s.policy.IsLocked(state, time.Now()) {
		return nil, autherror.ErrAccountLocked
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(input.Password)) != nil {
		// The counter write is committed even though the login fails.
		next, applyErr := s.identities.ApplyFailedAttempt(ctx, identity.ID, s.policy)
		if applyErr != nil {
			s.logger.Warn("failed to persist lockout state",
				zap.String("identity_id", identity.ID), zap.Error(applyErr))
		} else if next.LockUntil != nil {
			s.logger.Warn("identity locked out",
				zap.String("identity_id", identity.ID), zap.Time("lock_until", *next.LockUntil))
		}
		return nil, autherror.ErrInvalidCredentials
	}

	if err := s.identities.ClearLockout(ctx, identity.ID); err != nil {
		return nil, err
	}

	return s.issuePair(identity.ID, identity.Roles)
}

// Refresh rotates the presented refresh token: its jti is revoked before the
// new pair is issued, so there is no window with two live refresh tokens.
func (s *SessionService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	if input.RefreshToken == "" {
		return nil, autherror.ErrMissingToken
	}

	claims, err := s.tokens.VerifyRefresh(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	revoked, err := s.ledger.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		// Re-use of a rotated token signals possible theft.
		s.logger.Warn("revoked refresh token presented",
			zap.String("identity_id", claims.Subject), zap.String("jti", claims.ID))
		return nil, autherror.ErrTokenRevoked
	}

	if err := s.ledger.Revoke(ctx, claims.ID, domain.TokenKindRefresh, claims.Subject); err != nil {
		return nil, err
	}

	// Re-read roles so rotation picks up role changes made since issuance.
	identity, err := s.identities.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, autherror.ErrIdentityNotFound
	}

	return s.issuePair(identity.ID, identity.Roles)
}

// Logout revokes the presented token's jti. Revoking an already-revoked jti
// is a no-op success.
func (s *SessionService) Logout(ctx context.Context, token string, kind domain.TokenKind) error {
	if token == "" {
		return autherror.ErrMissingToken
	}

	var claims *JWTCustomClaims
	var err error
	switch kind {
	case domain.TokenKindRefresh:
		claims, err = s.tokens.VerifyRefresh(token)
	default:
		claims, err = s.tokens.VerifyAccess(token)
	}
	if err != nil {
		return err
	}

	return s.ledger.Revoke(ctx, claims.ID, kind, claims.Subject)
}

// Authorize is the single verify-and-authorize step every protected
// operation runs first. Ordering is fixed: signature and expiry, then the
// revocation ledger, and only then are the claims trusted.
func (s *SessionService) Authorize(ctx context.Context, accessToken, requiredRole string) (*dto.AuthContext, error) {
	if accessToken == "" {
		return nil, autherror.ErrMissingToken
	}

	claims, err := s.tokens.VerifyAccess(accessToken)
	if err != nil {
		return nil, err
	}

	revoked, err := s.ledger.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, autherror.ErrTokenRevoked
	}

	if requiredRole != "" && !domain.RolesContain(claims.Roles, requiredRole) {
		return nil, autherror.ErrForbidden
	}

	return &dto.AuthContext{
		IdentityID: claims.Subject,
		Roles:      claims.Roles,
		JTI:        claims.ID,
	}, nil
}

func (s *SessionService) UpdatePassword(ctx context.Context, callerID, targetID, newPassword string) error {
	if callerID != targetID {
		return autherror.ErrForbidden
	}
	if newPassword == "" {
		return autherror.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return err
	}

	return s.identities.UpdatePassword(ctx, targetID, string(hashed))
}

func (s *SessionService) UpdateEmail(ctx context.Context, callerID, targetID, newEmail string) error {
	if callerID != targetID {
		return autherror.ErrForbidden
	}
	if newEmail == "" {
		return autherror.ErrInvalidCredentials
	}

	return s.identities.UpdateEmail(ctx, targetID, newEmail)
}

func (s *SessionService) DeleteIdentity(ctx context.Context, callerID, targetID string) error {
	if callerID != targetID {
		return autherror.ErrForbidden
	}

	return s.identities.Delete(ctx, targetID)
}

func (s *SessionService) FindByEmail(ctx context.Context, email string) (*dto.IdentityOutput, error) {
	identity, err := s.identities.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, autherror.ErrIdentityNotFound
	}

	return &dto.IdentityOutput{
		ID:        identity.ID,
		Email:     identity.Email,
		Roles:     identity.Roles,
		CreatedAt: identity.CreatedAt,
	}, nil
}

// PurgeExpiredRevocations drops ledger entries old enough that their tokens
// have expired on their own. Optional hygiene, typically run at startup.
func (s *SessionService) PurgeExpiredRevocations(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.tokens.GetRefreshTokenExpiry())
	return s.ledger.PurgeBefore(ctx, cutoff)
}

func (s *SessionService) issuePair(identityID, roles string) (*dto.TokenResponse, error) {
	accessToken, _, err := s.tokens.IssueAccess(identityID, roles)
	if err != nil {
		return nil, err
	}

	refreshToken, _, err := s.tokens.IssueRefresh(identityID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
