package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProjectModel maps the community showcase projects table.
type ProjectModel struct {
	ProjectID          uuid.UUID      `gorm:"column:project_id;type:uuid;default:gen_random_uuid();primaryKey" json:"project_id"`
	ProjectTitle       string         `gorm:"column:project_title;size:200;not null" json:"project_title"`
	ProjectSlug        string         `gorm:"column:project_slug;size:160;uniqueIndex;not null" json:"project_slug"`
	ProjectDescription string         `gorm:"column:project_description;type:text;not null" json:"project_description"`
	ProjectTechStack   pq.StringArray `gorm:"column:project_tech_stack;type:text[]" json:"project_tech_stack"`
	ProjectRepoURL     *string        `gorm:"column:project_repo_url;size:512" json:"project_repo_url"`
	ProjectDemoURL     *string        `gorm:"column:project_demo_url;size:512" json:"project_demo_url"`
	ProjectImageURL    *string        `gorm:"column:project_image_url;size:512" json:"project_image_url"`
	ProjectIsFeatured  bool           `gorm:"column:project_is_featured;not null;default:false" json:"project_is_featured"`
	ProjectCreatedAt   time.Time      `gorm:"column:project_created_at;autoCreateTime" json:"project_created_at"`
	ProjectUpdatedAt   time.Time      `gorm:"column:project_updated_at;autoUpdateTime" json:"project_updated_at"`
}

func (ProjectModel) TableName() string {
	return "projects"
}
