package route

import (
	"aicommunity_backend/internals/features/admin/media/controller"
	"aicommunity_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
)

// MediaAdminRoutes mounts the dashboard upload endpoints.
func MediaAdminRoutes(api fiber.Router, blobs storage.BlobService) {
	ctrl := controller.NewMediaController(blobs)

	media := api.Group("/media")
	media.Post("/", ctrl.Upload)
	media.Delete("/", ctrl.Delete)
}
