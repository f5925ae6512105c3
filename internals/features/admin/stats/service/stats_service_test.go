package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowthPercent(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		monthly int64
		want    string
	}{
		{"zero total", 0, 0, "0.0%"},
		{"zero total with monthly", 0, 5, "0.0%"},
		{"twenty percent", 10, 2, "20.0%"},
		{"one hundred percent", 7, 7, "100.0%"},
		{"rounds to one decimal", 3, 1, "33.3%"},
		{"zero monthly", 50, 0, "0.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GrowthPercent(tt.total, tt.monthly))
		})
	}
}

func TestClassifyChange(t *testing.T) {
	assert.Equal(t, ChangePositive, ClassifyChange(1))
	assert.Equal(t, ChangePositive, ClassifyChange(500))
	assert.Equal(t, ChangeNeutral, ClassifyChange(0))
}

// The change_type contract allows "negative" but the aggregation never
// emits it; pin that down so nobody "fixes" it casually.
func TestNegativeNeverProduced(t *testing.T) {
	for _, monthly := range []int64{0, 1, 10, 1000} {
		assert.NotEqual(t, ChangeNegative, ClassifyChange(monthly))
	}
}

func TestBuildStat(t *testing.T) {
	s := BuildStat("Total Users", 10, 2)
	assert.Equal(t, "Total Users", s.Name)
	assert.EqualValues(t, 10, s.Value)
	assert.Equal(t, "20.0%", s.Change)
	assert.Equal(t, ChangePositive, s.ChangeType)

	empty := BuildStat("Total Events", 0, 0)
	assert.Equal(t, "0.0%", empty.Change)
	assert.Equal(t, ChangeNeutral, empty.ChangeType)
}
