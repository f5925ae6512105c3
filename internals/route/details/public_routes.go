package details

import (
	eventRoute "aicommunity_backend/internals/features/events/events/route"
	registrationRoute "aicommunity_backend/internals/features/events/registrations/route"

	opportunityRoute "aicommunity_backend/internals/features/content/opportunities/route"
	postRoute "aicommunity_backend/internals/features/content/posts/route"
	projectRoute "aicommunity_backend/internals/features/content/projects/route"
	sponsorRoute "aicommunity_backend/internals/features/content/sponsors/route"

	"aicommunity_backend/internals/helpers/mailer"
	"aicommunity_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PublicRoutes mounts everything reachable without a session: event
// browsing, event registration, and the published content surfaces.
func PublicRoutes(app *fiber.App, db *gorm.DB, blobs storage.BlobService, m *mailer.Mailer) {
	api := app.Group("/api")

	eventRoute.EventPublicRoutes(api, db, blobs)
	registrationRoute.RegistrationPublicRoutes(api, db, m)

	postRoute.PostUserRoutes(api, db, blobs)
	projectRoute.ProjectUserRoutes(api, db, blobs)
	sponsorRoute.SponsorUserRoutes(api, db, blobs)
	opportunityRoute.OpportunityUserRoutes(api, db)
}
