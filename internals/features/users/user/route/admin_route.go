package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aicommunity_backend/internals/features/users/user/controller"
)

// UserAdminRoutes mounts user management under the admin group.
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	users := api.Group("/users")
	users.Get("/", userCtrl.GetAllUsers)
	users.Get("/:id", userCtrl.GetUser)
	users.Put("/:id", userCtrl.UpdateUser)
	users.Delete("/:id", userCtrl.DeleteUser)
}
