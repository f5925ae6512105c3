package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aicommunity_backend/internals/features/admin/stats/service"
	helper "aicommunity_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

// GetStats returns the dashboard aggregates. Role gating happens in the
// admin route group.
func (ctrl *StatsController) GetStats(c *fiber.Ctx) error {
	stats, err := service.Collect(ctrl.DB)
	if err != nil {
		log.Println("[ERROR] stats collect:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	return helper.JsonOK(c, "", fiber.Map{"stats": stats})
}
