package dto

import (
	"time"

	"aicommunity_backend/internals/features/events/registrations/model"
)

// ============================
// Response DTO
// ============================

type RegistrationDTO struct {
	RegistrationID        string    `json:"registration_id"`
	RegistrationEventID   string    `json:"registration_event_id"`
	RegistrationName      string    `json:"registration_name"`
	RegistrationEmail     string    `json:"registration_email"`
	RegistrationStatus    string    `json:"registration_status"`
	RegistrationCreatedAt time.Time `json:"registration_created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateRegistrationRequest struct {
	EventID string `json:"event_id" validate:"required,uuid"`
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
}

// ============================
// Converter
// ============================

func ToRegistrationDTO(m model.RegistrationModel) RegistrationDTO {
	return RegistrationDTO{
		RegistrationID:        m.RegistrationID.String(),
		RegistrationEventID:   m.RegistrationEventID.String(),
		RegistrationName:      m.RegistrationName,
		RegistrationEmail:     m.RegistrationEmail,
		RegistrationStatus:    m.RegistrationStatus,
		RegistrationCreatedAt: m.RegistrationCreatedAt,
	}
}
