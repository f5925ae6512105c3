package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OpportunityModel maps the opportunities board table (jobs,
// internships, volunteer roles shared with the community).
type OpportunityModel struct {
	OpportunityID          uuid.UUID      `gorm:"column:opportunity_id;type:uuid;default:gen_random_uuid();primaryKey" json:"opportunity_id"`
	OpportunityTitle       string         `gorm:"column:opportunity_title;size:200;not null" json:"opportunity_title"`
	OpportunityCompany     string         `gorm:"column:opportunity_company;size:150;not null" json:"opportunity_company"`
	OpportunityType        string         `gorm:"column:opportunity_type;size:20;not null" json:"opportunity_type"`
	OpportunityDescription string         `gorm:"column:opportunity_description;type:text;not null" json:"opportunity_description"`
	OpportunityLocation    *string        `gorm:"column:opportunity_location;size:150" json:"opportunity_location"`
	OpportunityApplyURL    string         `gorm:"column:opportunity_apply_url;size:512;not null" json:"opportunity_apply_url"`
	OpportunityTags        pq.StringArray `gorm:"column:opportunity_tags;type:text[]" json:"opportunity_tags"`
	OpportunityDeadline    *time.Time     `gorm:"column:opportunity_deadline" json:"opportunity_deadline"`
	OpportunityIsActive    bool           `gorm:"column:opportunity_is_active;not null;default:true" json:"opportunity_is_active"`
	OpportunityCreatedAt   time.Time      `gorm:"column:opportunity_created_at;autoCreateTime" json:"opportunity_created_at"`
	OpportunityUpdatedAt   time.Time      `gorm:"column:opportunity_updated_at;autoUpdateTime" json:"opportunity_updated_at"`
}

func (OpportunityModel) TableName() string {
	return "opportunities"
}
