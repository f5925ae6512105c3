package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aicommunity_backend/internals/features/events/registrations/controller"
	"aicommunity_backend/internals/helpers/mailer"
)

// RegistrationAdminRoutes mounts registration management under the admin group.
func RegistrationAdminRoutes(api fiber.Router, db *gorm.DB, m *mailer.Mailer) {
	regCtrl := controller.NewRegistrationController(db, m)

	regs := api.Group("/event-registrations")
	regs.Get("/", regCtrl.GetAllRegistrations)
	regs.Put("/:id/cancel", regCtrl.CancelRegistration)
	regs.Delete("/:id", regCtrl.DeleteRegistration)
}
