package route

import (
	"os"

	"aicommunity_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BaseRoutes registers the root and readiness endpoints, plus the
// static file handler when uploads are stored on local disk.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "AI community backend is running",
		})
	})

	app.Get("/ready", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"message": "database unreachable",
			})
		}
		return c.JSON(fiber.Map{"success": true, "message": "ready"})
	})

	if os.Getenv("OSS_ENDPOINT") == "" {
		app.Static("/uploads", configs.GetEnv("UPLOADS_DIR", "./uploads"))
	}
}
