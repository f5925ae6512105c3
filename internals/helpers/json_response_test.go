package helper

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{"empty result still has one page", 0, 1, 20, 1, false, false},
		{"exact multiple", 40, 1, 20, 2, true, false},
		{"partial last page", 41, 3, 20, 3, false, true},
		{"middle page", 100, 2, 20, 5, true, true},
		{"bad inputs normalized", 10, 0, 0, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", statusToErrorCode(fiber.StatusBadRequest))
	assert.Equal(t, "UNAUTHORIZED", statusToErrorCode(fiber.StatusUnauthorized))
	assert.Equal(t, "FORBIDDEN", statusToErrorCode(fiber.StatusForbidden))
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(fiber.StatusNotFound))
	assert.Equal(t, "CONFLICT", statusToErrorCode(fiber.StatusConflict))
	assert.Equal(t, "RATE_LIMITED", statusToErrorCode(fiber.StatusTooManyRequests))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(fiber.StatusBadGateway))
	assert.Equal(t, "ERROR", statusToErrorCode(fiber.StatusTeapot))
}

func TestValidationMap(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Role  string `validate:"oneof=USER ADMIN"`
	}
	err := validator.New().Struct(payload{Email: "not-an-email", Role: "ROOT"})
	require.Error(t, err)

	m := ValidationMap(err)
	assert.Contains(t, m["email"], "must be a valid email address")
	assert.Contains(t, m["role"], "must be one of: USER ADMIN")
}

func TestValidationMapNonValidatorError(t *testing.T) {
	m := ValidationMap(assert.AnError)
	assert.Equal(t, []string{"invalid input"}, m["request"])
}
