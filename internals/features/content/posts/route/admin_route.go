package route

import (
	"aicommunity_backend/internals/features/content/posts/controller"
	"aicommunity_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PostAdminRoutes mounts the admin management endpoints for posts.
func PostAdminRoutes(api fiber.Router, db *gorm.DB, blobs storage.BlobService) {
	ctrl := controller.NewPostController(db, blobs)

	posts := api.Group("/posts")
	posts.Get("/", ctrl.GetAllPostsAdmin)
	posts.Post("/", ctrl.CreatePost)
	posts.Put("/:id", ctrl.UpdatePost)
	posts.Delete("/:id", ctrl.DeletePost)
}
