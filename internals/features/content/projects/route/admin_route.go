package route

import (
	"aicommunity_backend/internals/features/content/projects/controller"
	"aicommunity_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProjectAdminRoutes mounts the admin management endpoints for projects.
func ProjectAdminRoutes(api fiber.Router, db *gorm.DB, blobs storage.BlobService) {
	ctrl := controller.NewProjectController(db, blobs)

	projects := api.Group("/projects")
	projects.Post("/", ctrl.CreateProject)
	projects.Put("/:id", ctrl.UpdateProject)
	projects.Delete("/:id", ctrl.DeleteProject)
}
