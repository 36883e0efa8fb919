package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "userservice_backend/internals/features/users/user/route"
	middlewares "userservice_backend/internals/middlewares"
)

// SetupRoutes mounts every handler under the versioned prefix. The DB
// middleware gives each request its own scoped session.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up /api/v1 routes...")

	v1 := app.Group("/api/v1", middlewares.DBMiddleware(db))
	userRoute.UserRoutes(v1, db)
}
