package dto

import (
	"time"

	"aicommunity_backend/internals/features/events/events/model"
	regService "aicommunity_backend/internals/features/events/registrations/service"
)

// ============================
// Response DTOs
// ============================

type EventDTO struct {
	EventID                   string     `json:"event_id"`
	EventTitle                string     `json:"event_title"`
	EventSlug                 string     `json:"event_slug"`
	EventDescription          string     `json:"event_description"`
	EventLocation             string     `json:"event_location"`
	EventStartTime            time.Time  `json:"event_start_time"`
	EventEndTime              time.Time  `json:"event_end_time"`
	EventCapacity             *int       `json:"event_capacity"`
	EventRegistrationDeadline *time.Time `json:"event_registration_deadline"`
	EventThumbnailURL         *string    `json:"event_thumbnail_url"`
	EventIsPublished          bool       `json:"event_is_published"`
	EventPhase                string     `json:"event_phase,omitempty"`
	EventCreatedAt            time.Time  `json:"event_created_at"`
}

// EventDetailDTO adds the availability projection to the detail response.
type EventDetailDTO struct {
	EventDTO
	Availability regService.Availability `json:"availability"`
}

// ============================
// Request DTOs (multipart forms from the dashboard)
// ============================

type CreateEventRequest struct {
	Title                string `form:"title" validate:"required,min=3,max=200"`
	Description          string `form:"description" validate:"required,min=10"`
	Location             string `form:"location" validate:"omitempty,max=255"`
	StartTime            string `form:"start_time" validate:"required"`
	EndTime              string `form:"end_time" validate:"required"`
	Capacity             *int   `form:"capacity" validate:"omitempty,gte=0"`
	RegistrationDeadline string `form:"registration_deadline"`
	IsPublished          *bool  `form:"is_published"`
}

type UpdateEventRequest struct {
	Title                *string `form:"title" validate:"omitempty,min=3,max=200"`
	Description          *string `form:"description" validate:"omitempty,min=10"`
	Location             *string `form:"location" validate:"omitempty,max=255"`
	StartTime            *string `form:"start_time"`
	EndTime              *string `form:"end_time"`
	Capacity             *int    `form:"capacity" validate:"omitempty,gte=0"`
	RegistrationDeadline *string `form:"registration_deadline"`
	IsPublished          *bool   `form:"is_published"`
}

// ============================
// Converters
// ============================

func ToEventDTO(m model.EventModel, phase string) EventDTO {
	return EventDTO{
		EventID:                   m.EventID.String(),
		EventTitle:                m.EventTitle,
		EventSlug:                 m.EventSlug,
		EventDescription:          m.EventDescription,
		EventLocation:             m.EventLocation,
		EventStartTime:            m.EventStartTime,
		EventEndTime:              m.EventEndTime,
		EventCapacity:             m.EventCapacity,
		EventRegistrationDeadline: m.EventRegistrationDeadline,
		EventThumbnailURL:         m.EventThumbnailURL,
		EventIsPublished:          m.EventIsPublished,
		EventPhase:                phase,
		EventCreatedAt:            m.EventCreatedAt,
	}
}

func ToEventDetailDTO(m model.EventModel, phase string, availability regService.Availability) EventDetailDTO {
	return EventDetailDTO{
		EventDTO:     ToEventDTO(m, phase),
		Availability: availability,
	}
}
