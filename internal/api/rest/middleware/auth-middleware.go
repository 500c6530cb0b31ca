package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mplarena/registration_service/internal/helper"
)

// AdminAuth guards the moderation routes. Every approve/reject/delete and
// admin list call must pass it first.
func AdminAuth(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// cookie first, then Authorization header
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		admin, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		ctx.Locals("admin", admin)
		return ctx.Next()
	}
}

// AllowedIP restricts admin login to one configured address, matching the
// original deployment's single-operator setup. Empty config disables it.
func AllowedIP(allowed string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if allowed == "" {
			return ctx.Next()
		}
		ip := strings.TrimPrefix(ctx.IP(), "::ffff:")
		if ip != allowed {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied for this IP address",
			})
		}
		return ctx.Next()
	}
}
