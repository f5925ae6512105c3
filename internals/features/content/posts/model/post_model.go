package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PostModel maps the community posts table. Tags are stored as a JSON
// array of strings.
type PostModel struct {
	PostID          uuid.UUID      `gorm:"column:post_id;type:uuid;default:gen_random_uuid();primaryKey" json:"post_id"`
	PostTitle       string         `gorm:"column:post_title;size:200;not null" json:"post_title"`
	PostSlug        string         `gorm:"column:post_slug;size:160;uniqueIndex;not null" json:"post_slug"`
	PostContent     string         `gorm:"column:post_content;type:text;not null" json:"post_content"`
	PostCoverURL    *string        `gorm:"column:post_cover_url;size:512" json:"post_cover_url"`
	PostTags        datatypes.JSON `gorm:"column:post_tags" json:"post_tags"`
	PostAuthorID    uuid.UUID      `gorm:"column:post_author_id;type:uuid;not null" json:"post_author_id"`
	PostIsPublished bool           `gorm:"column:post_is_published;not null;default:false" json:"post_is_published"`
	PostCreatedAt   time.Time      `gorm:"column:post_created_at;autoCreateTime" json:"post_created_at"`
	PostUpdatedAt   time.Time      `gorm:"column:post_updated_at;autoUpdateTime" json:"post_updated_at"`
}

func (PostModel) TableName() string {
	return "posts"
}
