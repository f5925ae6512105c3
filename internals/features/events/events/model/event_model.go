package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel maps the events table. EventCapacity nil means no capacity
// limit; the registration count is always derived, never stored here.
type EventModel struct {
	EventID                   uuid.UUID  `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventTitle                string     `gorm:"column:event_title;size:200;not null" json:"event_title"`
	EventSlug                 string     `gorm:"column:event_slug;size:160;uniqueIndex;not null" json:"event_slug"`
	EventDescription          string     `gorm:"column:event_description;type:text;not null" json:"event_description"`
	EventLocation             string     `gorm:"column:event_location;size:255" json:"event_location"`
	EventStartTime            time.Time  `gorm:"column:event_start_time;not null" json:"event_start_time"`
	EventEndTime              time.Time  `gorm:"column:event_end_time;not null" json:"event_end_time"`
	EventCapacity             *int       `gorm:"column:event_capacity" json:"event_capacity"`
	EventRegistrationDeadline *time.Time `gorm:"column:event_registration_deadline" json:"event_registration_deadline"`
	EventThumbnailURL         *string    `gorm:"column:event_thumbnail_url;size:512" json:"event_thumbnail_url"`
	EventIsPublished          bool       `gorm:"column:event_is_published;not null;default:false" json:"event_is_published"`
	EventCreatedAt            time.Time  `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt            time.Time  `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}
