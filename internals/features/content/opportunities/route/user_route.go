package route

import (
	"aicommunity_backend/internals/features/content/opportunities/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OpportunityUserRoutes mounts the public read endpoints for the
// opportunities board.
func OpportunityUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOpportunityController(db)

	opps := api.Group("/opportunities")
	opps.Get("/", ctrl.GetAllOpportunities)
	opps.Get("/:id", ctrl.GetOpportunity)
}
