package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SponsorModel maps the sponsors table. Links hold arbitrary labeled
// URLs (website, linkedin, twitter) as a JSON object.
type SponsorModel struct {
	SponsorID          uuid.UUID      `gorm:"column:sponsor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"sponsor_id"`
	SponsorName        string         `gorm:"column:sponsor_name;size:150;not null" json:"sponsor_name"`
	SponsorTier        string         `gorm:"column:sponsor_tier;size:20;not null;default:'COMMUNITY'" json:"sponsor_tier"`
	SponsorDescription *string        `gorm:"column:sponsor_description;type:text" json:"sponsor_description"`
	SponsorLogoURL     *string        `gorm:"column:sponsor_logo_url;size:512" json:"sponsor_logo_url"`
	SponsorLinks       datatypes.JSON `gorm:"column:sponsor_links" json:"sponsor_links"`
	SponsorIsActive    bool           `gorm:"column:sponsor_is_active;not null;default:true" json:"sponsor_is_active"`
	SponsorCreatedAt   time.Time      `gorm:"column:sponsor_created_at;autoCreateTime" json:"sponsor_created_at"`
	SponsorUpdatedAt   time.Time      `gorm:"column:sponsor_updated_at;autoUpdateTime" json:"sponsor_updated_at"`
}

func (SponsorModel) TableName() string {
	return "sponsors"
}
