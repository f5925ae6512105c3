package route

import (
	"log"

	"aicommunity_backend/internals/helpers/mailer"
	"aicommunity_backend/internals/helpers/storage"
	"aicommunity_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires every route group onto the app. Shared services
// (blob storage, mailer) are built once here and passed down.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	blobs, err := storage.NewBlobServiceFromEnv("uploads")
	if err != nil {
		log.Fatalf("[INIT] blob storage: %v", err)
	}
	m, err := mailer.NewMailerFromEnv()
	if err != nil {
		log.Fatalf("[INIT] mailer: %v", err)
	}
	if m == nil {
		log.Println("[INIT] SMTP not configured, registration emails disabled")
	}

	BaseRoutes(app, db)

	details.AuthRoutes(app, db)
	details.PublicRoutes(app, db, blobs, m)
	details.AdminRoutes(app, db, blobs, m)
}
