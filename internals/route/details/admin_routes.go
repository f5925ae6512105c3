package details

import (
	"aicommunity_backend/internals/constants"
	mediaRoute "aicommunity_backend/internals/features/admin/media/route"
	statsRoute "aicommunity_backend/internals/features/admin/stats/route"
	eventRoute "aicommunity_backend/internals/features/events/events/route"
	registrationRoute "aicommunity_backend/internals/features/events/registrations/route"
	userRoute "aicommunity_backend/internals/features/users/user/route"
	"aicommunity_backend/internals/middlewares/auth"

	opportunityRoute "aicommunity_backend/internals/features/content/opportunities/route"
	postRoute "aicommunity_backend/internals/features/content/posts/route"
	projectRoute "aicommunity_backend/internals/features/content/projects/route"
	sponsorRoute "aicommunity_backend/internals/features/content/sponsors/route"

	"aicommunity_backend/internals/helpers/mailer"
	"aicommunity_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminRoutes mounts the management API under /api/a. Every route in
// the group requires a valid session with the ADMIN role.
func AdminRoutes(app *fiber.App, db *gorm.DB, blobs storage.BlobService, m *mailer.Mailer) {
	admin := app.Group("/api/a",
		auth.AuthMiddleware(db),
		auth.OnlyRoles(constants.RoleErrorAdmin("admin area"), constants.RoleAdmin),
	)

	eventRoute.EventAdminRoutes(admin, db, blobs)
	registrationRoute.RegistrationAdminRoutes(admin, db, m)
	userRoute.UserAdminRoutes(admin, db)
	statsRoute.StatsAdminRoutes(admin, db)
	mediaRoute.MediaAdminRoutes(admin, blobs)

	postRoute.PostAdminRoutes(admin, db, blobs)
	projectRoute.ProjectAdminRoutes(admin, db, blobs)
	sponsorRoute.SponsorAdminRoutes(admin, db, blobs)
	opportunityRoute.OpportunityAdminRoutes(admin, db)
}
