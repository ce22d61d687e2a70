package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/portofolyo/auth-service/internal/auth/domain"
	"github.com/portofolyo/auth-service/internal/auth/dto"
	"github.com/portofolyo/auth-service/internal/auth/service"
	autherror "github.com/portofolyo/auth-service/internal/errors"
)

const authContextKey = "auth"

type AuthHandler struct {
	sessions *service.SessionService
}

func NewAuthHandler(sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	identity, err := h.sessions.Register(c.Context(), input)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    identity.ID,
		"email": identity.Email,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	tokenPair, err := h.sessions.Login(c.Context(), input)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokenPair)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	tokens, err := h.sessions.Refresh(c.Context(), input)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

// LogoutAccess revokes the access token presented in the Authorization header.
func (h *AuthHandler) LogoutAccess(c *fiber.Ctx) error {
	token := bearerToken(c)

	if err := h.sessions.Logout(c.Context(), token, domain.TokenKindAccess); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "access token revoked"})
}

// LogoutRefresh revokes the refresh token carried in the request body.
func (h *AuthHandler) LogoutRefresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.sessions.Logout(c.Context(), input.RefreshToken, domain.TokenKindRefresh); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "refresh token revoked"})
}

// UpdateIdentity changes the password and/or email of the identity in the
// path. The service rejects callers that do not own the target.
func (h *AuthHandler) UpdateIdentity(c *fiber.Ctx) error {
	auth, ok := c.Locals(authContextKey).(*dto.AuthContext)
	if !ok {
		return errorResponse(c, autherror.ErrMissingToken)
	}

	var input dto.UpdateIdentityInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	targetID := c.Params("id")

	if input.Password != "" {
		if err := h.sessions.UpdatePassword(c.Context(), auth.IdentityID, targetID, input.Password); err != nil {
			return errorResponse(c, err)
		}
	}
	if input.Email != "" {
		if err := h.sessions.UpdateEmail(c.Context(), auth.IdentityID, targetID, input.Email); err != nil {
			return errorResponse(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "identity updated"})
}

func (h *AuthHandler) DeleteIdentity(c *fiber.Ctx) error {
	auth, ok := c.Locals(authContextKey).(*dto.AuthContext)
	if !ok {
		return errorResponse(c, autherror.ErrMissingToken)
	}

	if err := h.sessions.DeleteIdentity(c.Context(), auth.IdentityID, c.Params("id")); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "identity deleted"})
}

func (h *AuthHandler) FindByEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email parameter is required"})
	}

	identity, err := h.sessions.FindByEmail(c.Context(), email)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(identity)
}

// RequireRole authorizes the bearer token up front and stores the verified
// context in locals for the protected handler.
func (h *AuthHandler) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth, err := h.sessions.Authorize(c.Context(), bearerToken(c), role)
		if err != nil {
			return errorResponse(c, err)
		}

		c.Locals(authContextKey, auth)

		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusFromError(err)).JSON(fiber.Map{"error": err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return fiber.StatusConflict
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrTokenExpired),
		errors.Is(err, autherror.ErrTokenRevoked),
		errors.Is(err, autherror.ErrMissingToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrAccountLocked),
		errors.Is(err, autherror.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, autherror.ErrTokenMalformed):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, autherror.ErrIdentityNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
