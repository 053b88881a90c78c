package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
)

// IsAdmin reports whether the session passed the admin token check.
func IsAdmin(c fiber.Ctx) bool {
	sess := session.FromContext(c)
	if sess == nil {
		return false
	}
	v, _ := sess.Get(SessionKeyIsAdmin).(bool)
	return v
}

// RequireAdmin rejects requests whose session has not been authenticated
// with the admin token.
func RequireAdmin(c fiber.Ctx) error {
	if !IsAdmin(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "admin authentication required",
		})
	}
	return c.Next()
}
