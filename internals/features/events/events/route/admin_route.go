package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aicommunity_backend/internals/features/events/events/controller"
	"aicommunity_backend/internals/helpers/storage"
)

// EventAdminRoutes mounts event management under the admin group.
func EventAdminRoutes(api fiber.Router, db *gorm.DB, blobs storage.BlobService) {
	eventCtrl := controller.NewEventController(db, blobs)

	events := api.Group("/events")
	events.Get("/", eventCtrl.GetAllEventsAdmin)
	events.Post("/", eventCtrl.CreateEvent)
	events.Put("/:id", eventCtrl.UpdateEvent)
	events.Delete("/:id", eventCtrl.DeleteEvent)
}
