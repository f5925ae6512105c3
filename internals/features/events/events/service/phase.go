package service

import (
	"time"

	"aicommunity_backend/internals/constants"
	"aicommunity_backend/internals/features/events/events/model"
)

// Phase derives the display status of an event from the clock. Nothing is
// persisted; each request recomputes it.
//
// PAST once the event ended, ONGOING between start and end,
// REGISTRATION_CLOSED when the deadline passed before start, UPCOMING
// otherwise.
func Phase(e model.EventModel, now time.Time) string {
	if now.After(e.EventEndTime) {
		return constants.EventPast
	}
	if !now.Before(e.EventStartTime) {
		return constants.EventOngoing
	}
	if e.EventRegistrationDeadline != nil && now.After(*e.EventRegistrationDeadline) {
		return constants.EventRegistrationClosed
	}
	return constants.EventUpcoming
}

// RegistrationOpen reports whether a new registration may be submitted.
func RegistrationOpen(e model.EventModel, now time.Time) bool {
	return Phase(e, now) == constants.EventUpcoming
}
