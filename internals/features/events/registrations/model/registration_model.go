package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationModel maps the event_registrations table. Status is assigned
// once at creation; a cancellation never promotes anyone off the waitlist.
type RegistrationModel struct {
	RegistrationID        uuid.UUID `gorm:"column:registration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"registration_id"`
	RegistrationEventID   uuid.UUID `gorm:"column:registration_event_id;type:uuid;not null;index;uniqueIndex:uniq_registration_event_email" json:"registration_event_id"`
	RegistrationName      string    `gorm:"column:registration_name;size:100;not null" json:"registration_name"`
	RegistrationEmail     string    `gorm:"column:registration_email;size:255;not null;uniqueIndex:uniq_registration_event_email" json:"registration_email"`
	RegistrationStatus    string    `gorm:"column:registration_status;type:varchar(20);not null" json:"registration_status"`
	RegistrationCreatedAt time.Time `gorm:"column:registration_created_at;autoCreateTime" json:"registration_created_at"`
}

func (RegistrationModel) TableName() string {
	return "event_registrations"
}
