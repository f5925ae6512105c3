package route

import (
	"aicommunity_backend/internals/features/content/opportunities/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OpportunityAdminRoutes mounts the admin management endpoints for the
// opportunities board.
func OpportunityAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOpportunityController(db)

	opps := api.Group("/opportunities")
	opps.Get("/", ctrl.GetAllOpportunitiesAdmin)
	opps.Post("/", ctrl.CreateOpportunity)
	opps.Put("/:id", ctrl.UpdateOpportunity)
	opps.Delete("/:id", ctrl.DeleteOpportunity)
}
