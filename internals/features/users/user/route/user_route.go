package route

import (
	userController "userservice_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserRoutes mounts the user CRUD endpoints on the versioned group.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	api.Get("/users/", ctrl.GetUsers)
	api.Get("/users/email/:email", ctrl.GetUserByEmail)
	api.Get("/users/:user_id", ctrl.GetUser)

	api.Post("/users/", ctrl.CreateUser)

	api.Put("/users/:user_id/username", ctrl.UpdateUserUsername)
	api.Put("/users/:user_id/email", ctrl.UpdateUserEmail)
	api.Put("/users/:user_id/active", ctrl.UpdateUserActive)
	api.Put("/users/:user_id/contact_details", ctrl.UpsertUserContactDetails)

	api.Delete("/users/:user_id", ctrl.DeleteUser)
	api.Delete("/users/:user_id/contact_details", ctrl.DeleteUserContactDetails)
}
