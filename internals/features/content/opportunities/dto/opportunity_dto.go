package dto

import (
	"time"

	"aicommunity_backend/internals/features/content/opportunities/model"

	"github.com/google/uuid"
)

type OpportunityDTO struct {
	OpportunityID          uuid.UUID  `json:"opportunity_id"`
	OpportunityTitle       string     `json:"opportunity_title"`
	OpportunityCompany     string     `json:"opportunity_company"`
	OpportunityType        string     `json:"opportunity_type"`
	OpportunityDescription string     `json:"opportunity_description"`
	OpportunityLocation    *string    `json:"opportunity_location"`
	OpportunityApplyURL    string     `json:"opportunity_apply_url"`
	OpportunityTags        []string   `json:"opportunity_tags"`
	OpportunityDeadline    *time.Time `json:"opportunity_deadline"`
	OpportunityIsActive    bool       `json:"opportunity_is_active"`
	OpportunityCreatedAt   time.Time  `json:"opportunity_created_at"`
	OpportunityUpdatedAt   time.Time  `json:"opportunity_updated_at"`
}

type CreateOpportunityRequest struct {
	OpportunityTitle       string   `json:"opportunity_title" validate:"required,min=3,max=200"`
	OpportunityCompany     string   `json:"opportunity_company" validate:"required,min=2,max=150"`
	OpportunityType        string   `json:"opportunity_type" validate:"required,oneof=JOB INTERNSHIP VOLUNTEER"`
	OpportunityDescription string   `json:"opportunity_description" validate:"required"`
	OpportunityLocation    *string  `json:"opportunity_location" validate:"omitempty,max=150"`
	OpportunityApplyURL    string   `json:"opportunity_apply_url" validate:"required,url"`
	OpportunityTags        []string `json:"opportunity_tags" validate:"omitempty,dive,min=1,max=50"`
	// RFC3339, optional
	OpportunityDeadline *string `json:"opportunity_deadline"`
}

type UpdateOpportunityRequest struct {
	OpportunityTitle       *string   `json:"opportunity_title" validate:"omitempty,min=3,max=200"`
	OpportunityCompany     *string   `json:"opportunity_company" validate:"omitempty,min=2,max=150"`
	OpportunityType        *string   `json:"opportunity_type" validate:"omitempty,oneof=JOB INTERNSHIP VOLUNTEER"`
	OpportunityDescription *string   `json:"opportunity_description" validate:"omitempty"`
	OpportunityLocation    *string   `json:"opportunity_location" validate:"omitempty,max=150"`
	OpportunityApplyURL    *string   `json:"opportunity_apply_url" validate:"omitempty,url"`
	OpportunityTags        *[]string `json:"opportunity_tags" validate:"omitempty,dive,min=1,max=50"`
	OpportunityDeadline    *string   `json:"opportunity_deadline"`
	OpportunityIsActive    *bool     `json:"opportunity_is_active"`
}

func ToOpportunityDTO(m model.OpportunityModel) OpportunityDTO {
	tags := []string(m.OpportunityTags)
	if tags == nil {
		tags = []string{}
	}
	return OpportunityDTO{
		OpportunityID:          m.OpportunityID,
		OpportunityTitle:       m.OpportunityTitle,
		OpportunityCompany:     m.OpportunityCompany,
		OpportunityType:        m.OpportunityType,
		OpportunityDescription: m.OpportunityDescription,
		OpportunityLocation:    m.OpportunityLocation,
		OpportunityApplyURL:    m.OpportunityApplyURL,
		OpportunityTags:        tags,
		OpportunityDeadline:    m.OpportunityDeadline,
		OpportunityIsActive:    m.OpportunityIsActive,
		OpportunityCreatedAt:   m.OpportunityCreatedAt,
		OpportunityUpdatedAt:   m.OpportunityUpdatedAt,
	}
}

func ToOpportunityDTOList(models []model.OpportunityModel) []OpportunityDTO {
	out := make([]OpportunityDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToOpportunityDTO(m))
	}
	return out
}
