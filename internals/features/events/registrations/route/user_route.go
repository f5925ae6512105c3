package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aicommunity_backend/internals/features/events/registrations/controller"
	"aicommunity_backend/internals/helpers/mailer"
	"aicommunity_backend/internals/middlewares"
)

// RegistrationPublicRoutes mounts the public registration submission.
func RegistrationPublicRoutes(api fiber.Router, db *gorm.DB, m *mailer.Mailer) {
	regCtrl := controller.NewRegistrationController(db, m)

	api.Post("/event-registrations", middlewares.EventRegistrationRateLimiter(), regCtrl.CreateRegistration)
}
