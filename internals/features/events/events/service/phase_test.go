package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"aicommunity_backend/internals/constants"
	"aicommunity_backend/internals/features/events/events/model"
)

func timeptr(t time.Time) *time.Time { return &t }

func TestPhase(t *testing.T) {
	start := time.Date(2026, 6, 10, 18, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	deadline := start.Add(-24 * time.Hour)

	base := model.EventModel{
		EventStartTime:            start,
		EventEndTime:              end,
		EventRegistrationDeadline: timeptr(deadline),
	}

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"well before deadline", deadline.Add(-48 * time.Hour), constants.EventUpcoming},
		{"exactly at deadline", deadline, constants.EventUpcoming},
		{"after deadline, before start", deadline.Add(time.Hour), constants.EventRegistrationClosed},
		{"exactly at start", start, constants.EventOngoing},
		{"mid event", start.Add(time.Hour), constants.EventOngoing},
		{"exactly at end", end, constants.EventOngoing},
		{"after end", end.Add(time.Minute), constants.EventPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phase(base, tt.now))
		})
	}
}

func TestPhaseWithoutDeadline(t *testing.T) {
	start := time.Date(2026, 6, 10, 18, 0, 0, 0, time.UTC)
	e := model.EventModel{
		EventStartTime: start,
		EventEndTime:   start.Add(time.Hour),
	}

	// no deadline: registration stays open until start
	assert.Equal(t, constants.EventUpcoming, Phase(e, start.Add(-time.Minute)))
	assert.True(t, RegistrationOpen(e, start.Add(-time.Minute)))
	assert.False(t, RegistrationOpen(e, start))
}
