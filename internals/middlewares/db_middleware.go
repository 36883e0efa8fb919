package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DBMiddleware stores a request-scoped DB session in the request context.
// The session carries the request's context, so cancellation/timeout releases
// the underlying connection when the request ends.
func DBMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("db", db.WithContext(c.UserContext()))
		return c.Next()
	}
}
