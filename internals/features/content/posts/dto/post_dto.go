package dto

import (
	"encoding/json"
	"time"

	"aicommunity_backend/internals/features/content/posts/model"

	"github.com/google/uuid"
)

type PostDTO struct {
	PostID          uuid.UUID `json:"post_id"`
	PostTitle       string    `json:"post_title"`
	PostSlug        string    `json:"post_slug"`
	PostContent     string    `json:"post_content"`
	PostCoverURL    *string   `json:"post_cover_url"`
	PostTags        []string  `json:"post_tags"`
	PostAuthorID    uuid.UUID `json:"post_author_id"`
	PostIsPublished bool      `json:"post_is_published"`
	PostCreatedAt   time.Time `json:"post_created_at"`
	PostUpdatedAt   time.Time `json:"post_updated_at"`
}

type CreatePostRequest struct {
	PostTitle       string   `form:"post_title" validate:"required,min=3,max=200"`
	PostContent     string   `form:"post_content" validate:"required"`
	PostTags        []string `form:"post_tags" validate:"omitempty,dive,min=1,max=50"`
	PostIsPublished *bool    `form:"post_is_published"`
}

type UpdatePostRequest struct {
	PostTitle       *string   `form:"post_title" validate:"omitempty,min=3,max=200"`
	PostContent     *string   `form:"post_content" validate:"omitempty"`
	PostTags        *[]string `form:"post_tags" validate:"omitempty,dive,min=1,max=50"`
	PostIsPublished *bool     `form:"post_is_published"`
}

func ToPostDTO(m model.PostModel) PostDTO {
	var tags []string
	if len(m.PostTags) > 0 {
		_ = json.Unmarshal(m.PostTags, &tags)
	}
	if tags == nil {
		tags = []string{}
	}
	return PostDTO{
		PostID:          m.PostID,
		PostTitle:       m.PostTitle,
		PostSlug:        m.PostSlug,
		PostContent:     m.PostContent,
		PostCoverURL:    m.PostCoverURL,
		PostTags:        tags,
		PostAuthorID:    m.PostAuthorID,
		PostIsPublished: m.PostIsPublished,
		PostCreatedAt:   m.PostCreatedAt,
		PostUpdatedAt:   m.PostUpdatedAt,
	}
}

func ToPostDTOList(models []model.PostModel) []PostDTO {
	out := make([]PostDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToPostDTO(m))
	}
	return out
}
