package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicommunity_backend/internals/constants"
)

func intptr(n int) *int { return &n }

func TestDecide(t *testing.T) {
	tests := []struct {
		name      string
		capacity  *int
		confirmed int64
		want      string
	}{
		{"no capacity limit never waitlists", nil, 100000, constants.RegistrationConfirmed},
		{"under capacity", intptr(10), 9, constants.RegistrationConfirmed},
		{"at capacity", intptr(10), 10, constants.RegistrationWaitlisted},
		{"over capacity", intptr(10), 11, constants.RegistrationWaitlisted},
		{"zero capacity waitlists immediately", intptr(0), 0, constants.RegistrationWaitlisted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.capacity, tt.confirmed))
		})
	}
}

// Capacity C: registrations 1..C are CONFIRMED, C+1 is WAITLISTED when
// processed sequentially.
func TestDecideSequentialFill(t *testing.T) {
	const capC = 5
	capacity := intptr(capC)

	var confirmed int64
	for i := 0; i < capC; i++ {
		status := Decide(capacity, confirmed)
		require.Equal(t, constants.RegistrationConfirmed, status, "registration %d", i+1)
		confirmed++
	}
	assert.Equal(t, constants.RegistrationWaitlisted, Decide(capacity, confirmed))
}

func TestComputeAvailability(t *testing.T) {
	t.Run("unlimited capacity", func(t *testing.T) {
		a := ComputeAvailability(nil, 42)
		assert.Nil(t, a.Capacity)
		assert.Nil(t, a.Remaining)
		assert.EqualValues(t, 42, a.Confirmed)
		assert.False(t, a.IsFull)
	})

	t.Run("partially filled", func(t *testing.T) {
		a := ComputeAvailability(intptr(10), 4)
		require.NotNil(t, a.Remaining)
		assert.EqualValues(t, 6, *a.Remaining)
		assert.False(t, a.IsFull)
	})

	t.Run("exactly full", func(t *testing.T) {
		a := ComputeAvailability(intptr(2), 2)
		require.NotNil(t, a.Remaining)
		assert.EqualValues(t, 0, *a.Remaining)
		assert.True(t, a.IsFull)
	})

	t.Run("overshoot clamps remaining to zero", func(t *testing.T) {
		a := ComputeAvailability(intptr(2), 5)
		require.NotNil(t, a.Remaining)
		assert.EqualValues(t, 0, *a.Remaining)
		assert.True(t, a.IsFull)
	})
}

// Scenario from the product sheet: capacity=2, three sequential sign-ups.
func TestCapacityTwoScenario(t *testing.T) {
	capacity := intptr(2)

	var confirmed int64
	first := Decide(capacity, confirmed)
	confirmed++
	second := Decide(capacity, confirmed)
	confirmed++
	third := Decide(capacity, confirmed)

	assert.Equal(t, constants.RegistrationConfirmed, first)
	assert.Equal(t, constants.RegistrationConfirmed, second)
	assert.Equal(t, constants.RegistrationWaitlisted, third)

	a := ComputeAvailability(capacity, confirmed)
	require.NotNil(t, a.Remaining)
	assert.EqualValues(t, 2, a.Confirmed)
	assert.EqualValues(t, 0, *a.Remaining)
	assert.True(t, a.IsFull)
}
