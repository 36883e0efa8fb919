package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"userservice_backend/internals/middlewares/logger"
)

// SetupMiddlewares registers the app-wide middleware chain.
func SetupMiddlewares(app *fiber.App) {
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(GlobalRateLimiter())
}
