package route

import (
	"aicommunity_backend/internals/features/content/projects/controller"
	"aicommunity_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProjectUserRoutes mounts the public read endpoints for showcase projects.
func ProjectUserRoutes(api fiber.Router, db *gorm.DB, blobs storage.BlobService) {
	ctrl := controller.NewProjectController(db, blobs)

	projects := api.Group("/projects")
	projects.Get("/", ctrl.GetAllProjects)
	projects.Get("/:id", ctrl.GetProject)
}
