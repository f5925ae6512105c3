package dto

import (
	"time"

	"aicommunity_backend/internals/features/content/projects/model"

	"github.com/google/uuid"
)

type ProjectDTO struct {
	ProjectID          uuid.UUID `json:"project_id"`
	ProjectTitle       string    `json:"project_title"`
	ProjectSlug        string    `json:"project_slug"`
	ProjectDescription string    `json:"project_description"`
	ProjectTechStack   []string  `json:"project_tech_stack"`
	ProjectRepoURL     *string   `json:"project_repo_url"`
	ProjectDemoURL     *string   `json:"project_demo_url"`
	ProjectImageURL    *string   `json:"project_image_url"`
	ProjectIsFeatured  bool      `json:"project_is_featured"`
	ProjectCreatedAt   time.Time `json:"project_created_at"`
	ProjectUpdatedAt   time.Time `json:"project_updated_at"`
}

type CreateProjectRequest struct {
	ProjectTitle       string   `form:"project_title" validate:"required,min=3,max=200"`
	ProjectDescription string   `form:"project_description" validate:"required"`
	ProjectTechStack   []string `form:"project_tech_stack" validate:"omitempty,dive,min=1,max=60"`
	ProjectRepoURL     *string  `form:"project_repo_url" validate:"omitempty,url"`
	ProjectDemoURL     *string  `form:"project_demo_url" validate:"omitempty,url"`
	ProjectIsFeatured  *bool    `form:"project_is_featured"`
}

type UpdateProjectRequest struct {
	ProjectTitle       *string   `form:"project_title" validate:"omitempty,min=3,max=200"`
	ProjectDescription *string   `form:"project_description" validate:"omitempty"`
	ProjectTechStack   *[]string `form:"project_tech_stack" validate:"omitempty,dive,min=1,max=60"`
	ProjectRepoURL     *string   `form:"project_repo_url" validate:"omitempty,url"`
	ProjectDemoURL     *string   `form:"project_demo_url" validate:"omitempty,url"`
	ProjectIsFeatured  *bool     `form:"project_is_featured"`
}

func ToProjectDTO(m model.ProjectModel) ProjectDTO {
	stack := []string(m.ProjectTechStack)
	if stack == nil {
		stack = []string{}
	}
	return ProjectDTO{
		ProjectID:          m.ProjectID,
		ProjectTitle:       m.ProjectTitle,
		ProjectSlug:        m.ProjectSlug,
		ProjectDescription: m.ProjectDescription,
		ProjectTechStack:   stack,
		ProjectRepoURL:     m.ProjectRepoURL,
		ProjectDemoURL:     m.ProjectDemoURL,
		ProjectImageURL:    m.ProjectImageURL,
		ProjectIsFeatured:  m.ProjectIsFeatured,
		ProjectCreatedAt:   m.ProjectCreatedAt,
		ProjectUpdatedAt:   m.ProjectUpdatedAt,
	}
}

func ToProjectDTOList(models []model.ProjectModel) []ProjectDTO {
	out := make([]ProjectDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToProjectDTO(m))
	}
	return out
}
