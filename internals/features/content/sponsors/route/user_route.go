package route

import (
	"aicommunity_backend/internals/features/content/sponsors/controller"
	"aicommunity_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SponsorUserRoutes mounts the public read endpoints for sponsors.
func SponsorUserRoutes(api fiber.Router, db *gorm.DB, blobs storage.BlobService) {
	ctrl := controller.NewSponsorController(db, blobs)

	sponsors := api.Group("/sponsors")
	sponsors.Get("/", ctrl.GetAllSponsors)
	sponsors.Get("/:id", ctrl.GetSponsor)
}
