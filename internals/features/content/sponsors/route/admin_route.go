package route

import (
	"aicommunity_backend/internals/features/content/sponsors/controller"
	"aicommunity_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SponsorAdminRoutes mounts the admin management endpoints for sponsors.
func SponsorAdminRoutes(api fiber.Router, db *gorm.DB, blobs storage.BlobService) {
	ctrl := controller.NewSponsorController(db, blobs)

	sponsors := api.Group("/sponsors")
	sponsors.Get("/", ctrl.GetAllSponsorsAdmin)
	sponsors.Post("/", ctrl.CreateSponsor)
	sponsors.Put("/:id", ctrl.UpdateSponsor)
	sponsors.Delete("/:id", ctrl.DeleteSponsor)
}
