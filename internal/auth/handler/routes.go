package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/portofolyo/auth-service/pkg/constant"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	api := app.Group("/api/admin")

	api.Post("/register", h.Register)
	// IP-scoped brute-force guard in front of the lockout policy.
	api.Post("/login", limiter.New(limiter.Config{
		Max:        constant.DefaultMaxLoginAttempts,
		Expiration: time.Minute,
	}), h.Login)
	api.Post("/refresh", h.Refresh)
	api.Post("/logout/access", h.LogoutAccess)
	api.Post("/logout/refresh", h.LogoutRefresh)
	api.Get("/find-by-email", h.FindByEmail)

	// Identity management is admin-only and ownership-checked in the service.
	api.Put("/:id", h.RequireRole(constant.DefaultRole), h.UpdateIdentity)
	api.Delete("/:id", h.RequireRole(constant.DefaultRole), h.DeleteIdentity)
}
