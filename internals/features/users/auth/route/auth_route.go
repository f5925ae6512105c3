package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aicommunity_backend/internals/features/users/auth/controller"
	"aicommunity_backend/internals/middlewares"
	authMw "aicommunity_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the public auth surface plus the authenticated
// session endpoints.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/register", middlewares.RegisterRateLimiter(), authCtrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	api.Post("/login/google", middlewares.LoginRateLimiter(), authCtrl.LoginGoogle)
	api.Post("/refresh-token", authCtrl.RefreshToken)
	api.Post("/logout", authCtrl.Logout)

	private := api.Group("", authMw.AuthMiddleware(db))
	private.Get("/me", authCtrl.Me)
	private.Post("/change-password", authCtrl.ChangePassword)
}
