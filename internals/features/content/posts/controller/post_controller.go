package controller

import (
	"encoding/json"
	"log"

	"aicommunity_backend/internals/features/content/posts/dto"
	"aicommunity_backend/internals/features/content/posts/model"
	helper "aicommunity_backend/internals/helpers"
	"aicommunity_backend/internals/helpers/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PostController struct {
	DB    *gorm.DB
	Blobs storage.BlobService
}

func NewPostController(db *gorm.DB, blobs storage.BlobService) *PostController {
	return &PostController{DB: db, Blobs: blobs}
}

var validatePost = validator.New()

func tagsToJSON(tags []string) datatypes.JSON {
	if tags == nil {
		tags = []string{}
	}
	raw, _ := json.Marshal(tags)
	return datatypes.JSON(raw)
}

// CreatePost handles POST /api/a/posts (multipart, optional cover image).
func (ctrl *PostController) CreatePost(c *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePost.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	uid, _ := c.Locals("user_id").(string)
	authorID, err := uuid.Parse(uid)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid session")
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:      "posts",
		SlugColumn: "post_slug",
	}, req.PostTitle)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	post := model.PostModel{
		PostTitle:    req.PostTitle,
		PostSlug:     slug,
		PostContent:  req.PostContent,
		PostTags:     tagsToJSON(req.PostTags),
		PostAuthorID: authorID,
	}
	if req.PostIsPublished != nil {
		post.PostIsPublished = *req.PostIsPublished
	}

	if form, err := c.MultipartForm(); err == nil {
		if fh := storage.GetImageFile(form); fh != nil {
			url, upErr := ctrl.Blobs.UploadImage(c.UserContext(), "posts", fh)
			if upErr != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Cover upload failed: "+upErr.Error())
			}
			post.PostCoverURL = &url
		}
	}

	if err := ctrl.DB.Create(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create post")
	}
	return helper.JsonCreated(c, "Post created", dto.ToPostDTO(post))
}

// GetAllPosts handles GET /api/posts. Only published posts, newest first.
func (ctrl *PostController) GetAllPosts(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 50)

	q := ctrl.DB.Model(&model.PostModel{}).Where("post_is_published = ?", true)
	if search := c.Query("search"); search != "" {
		q = q.Where("post_title ILIKE ?", "%"+search+"%")
	}
	if tag := c.Query("tag"); tag != "" {
		q = q.Where("post_tags @> ?", tagsToJSON([]string{tag}))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count posts")
	}

	var posts []model.PostModel
	if err := q.Order("post_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch posts")
	}

	return helper.JsonList(c, "", dto.ToPostDTOList(posts), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GetAllPostsAdmin handles GET /api/a/posts including drafts.
func (ctrl *PostController) GetAllPostsAdmin(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	q := ctrl.DB.Model(&model.PostModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("post_title ILIKE ?", "%"+search+"%")
	}
	if published := c.Query("is_published"); published != "" {
		q = q.Where("post_is_published = ?", published == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count posts")
	}

	var posts []model.PostModel
	if err := q.Order("post_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch posts")
	}

	return helper.JsonList(c, "", dto.ToPostDTOList(posts), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctrl *PostController) findPost(idOrSlug string) (*model.PostModel, error) {
	var post model.PostModel
	q := ctrl.DB
	if id, err := uuid.Parse(idOrSlug); err == nil {
		q = q.Where("post_id = ?", id)
	} else {
		q = q.Where("post_slug = ?", idOrSlug)
	}
	if err := q.First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPost handles GET /api/posts/:id (UUID or slug).
func (ctrl *PostController) GetPost(c *fiber.Ctx) error {
	post, err := ctrl.findPost(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
	}
	return helper.JsonOK(c, "OK", dto.ToPostDTO(*post))
}

// UpdatePost handles PUT /api/a/posts/:id with partial fields.
func (ctrl *PostController) UpdatePost(c *fiber.Ctx) error {
	post, err := ctrl.findPost(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
	}

	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePost.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	updates := map[string]interface{}{}
	if req.PostTitle != nil {
		updates["post_title"] = *req.PostTitle
	}
	if req.PostContent != nil {
		updates["post_content"] = *req.PostContent
	}
	if req.PostTags != nil {
		updates["post_tags"] = tagsToJSON(*req.PostTags)
	}
	if req.PostIsPublished != nil {
		updates["post_is_published"] = *req.PostIsPublished
	}

	if form, err := c.MultipartForm(); err == nil {
		if fh := storage.GetImageFile(form); fh != nil {
			url, upErr := ctrl.Blobs.UploadImage(c.UserContext(), "posts", fh)
			if upErr != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Cover upload failed: "+upErr.Error())
			}
			if post.PostCoverURL != nil {
				if err := ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *post.PostCoverURL); err != nil {
					log.Println("[WARN] old cover delete:", err)
				}
			}
			updates["post_cover_url"] = url
		}
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(post).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update post")
		}
	}

	refreshed, err := ctrl.findPost(post.PostID.String())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload post")
	}
	return helper.JsonUpdated(c, "Post updated", dto.ToPostDTO(*refreshed))
}

// DeletePost handles DELETE /api/a/posts/:id.
func (ctrl *PostController) DeletePost(c *fiber.Ctx) error {
	post, err := ctrl.findPost(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
	}
	if err := ctrl.DB.Delete(post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete post")
	}
	if post.PostCoverURL != nil {
		if err := ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *post.PostCoverURL); err != nil {
			log.Println("[WARN] cover delete:", err)
		}
	}
	return helper.JsonDeleted(c, "Post deleted", fiber.Map{"post_id": post.PostID})
}
