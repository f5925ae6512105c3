package dto

import (
	"encoding/json"
	"time"

	"aicommunity_backend/internals/features/content/sponsors/model"

	"github.com/google/uuid"
)

type SponsorDTO struct {
	SponsorID          uuid.UUID         `json:"sponsor_id"`
	SponsorName        string            `json:"sponsor_name"`
	SponsorTier        string            `json:"sponsor_tier"`
	SponsorDescription *string           `json:"sponsor_description"`
	SponsorLogoURL     *string           `json:"sponsor_logo_url"`
	SponsorLinks       map[string]string `json:"sponsor_links"`
	SponsorIsActive    bool              `json:"sponsor_is_active"`
	SponsorCreatedAt   time.Time         `json:"sponsor_created_at"`
	SponsorUpdatedAt   time.Time         `json:"sponsor_updated_at"`
}

type CreateSponsorRequest struct {
	SponsorName        string  `form:"sponsor_name" validate:"required,min=2,max=150"`
	SponsorTier        string  `form:"sponsor_tier" validate:"required,oneof=PLATINUM GOLD SILVER COMMUNITY"`
	SponsorDescription *string `form:"sponsor_description"`
	// JSON object string, e.g. {"website":"https://...","linkedin":"https://..."}
	SponsorLinks    *string `form:"sponsor_links" validate:"omitempty,json"`
	SponsorIsActive *bool   `form:"sponsor_is_active"`
}

type UpdateSponsorRequest struct {
	SponsorName        *string `form:"sponsor_name" validate:"omitempty,min=2,max=150"`
	SponsorTier        *string `form:"sponsor_tier" validate:"omitempty,oneof=PLATINUM GOLD SILVER COMMUNITY"`
	SponsorDescription *string `form:"sponsor_description"`
	SponsorLinks       *string `form:"sponsor_links" validate:"omitempty,json"`
	SponsorIsActive    *bool   `form:"sponsor_is_active"`
}

func ToSponsorDTO(m model.SponsorModel) SponsorDTO {
	links := map[string]string{}
	if len(m.SponsorLinks) > 0 {
		_ = json.Unmarshal(m.SponsorLinks, &links)
	}
	return SponsorDTO{
		SponsorID:          m.SponsorID,
		SponsorName:        m.SponsorName,
		SponsorTier:        m.SponsorTier,
		SponsorDescription: m.SponsorDescription,
		SponsorLogoURL:     m.SponsorLogoURL,
		SponsorLinks:       links,
		SponsorIsActive:    m.SponsorIsActive,
		SponsorCreatedAt:   m.SponsorCreatedAt,
		SponsorUpdatedAt:   m.SponsorUpdatedAt,
	}
}

func ToSponsorDTOList(models []model.SponsorModel) []SponsorDTO {
	out := make([]SponsorDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToSponsorDTO(m))
	}
	return out
}
