package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aicommunity_backend/internals/features/events/events/controller"
	"aicommunity_backend/internals/helpers/storage"
)

// EventPublicRoutes mounts the public event pages.
func EventPublicRoutes(api fiber.Router, db *gorm.DB, blobs storage.BlobService) {
	eventCtrl := controller.NewEventController(db, blobs)

	events := api.Group("/events")
	events.Get("/", eventCtrl.GetAllEvents)
	events.Get("/:id", eventCtrl.GetEvent)
	events.Get("/:id/availability", eventCtrl.GetEventAvailability)
}
