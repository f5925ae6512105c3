package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aicommunity_backend/internals/features/admin/stats/controller"
)

// StatsAdminRoutes mounts the dashboard stats endpoint.
func StatsAdminRoutes(api fiber.Router, db *gorm.DB) {
	statsCtrl := controller.NewStatsController(db)

	api.Get("/stats", statsCtrl.GetStats)
}
