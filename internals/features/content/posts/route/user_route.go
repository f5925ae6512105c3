package route

import (
	"aicommunity_backend/internals/features/content/posts/controller"
	"aicommunity_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PostUserRoutes mounts the public read endpoints for posts.
func PostUserRoutes(api fiber.Router, db *gorm.DB, blobs storage.BlobService) {
	ctrl := controller.NewPostController(db, blobs)

	posts := api.Group("/posts")
	posts.Get("/", ctrl.GetAllPosts)
	posts.Get("/:id", ctrl.GetPost)
}
