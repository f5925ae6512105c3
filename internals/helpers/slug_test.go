package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AI Summit 2026", "ai-summit-2026"},
		{"  Hello,   World!  ", "hello-world"},
		{"---already---dashed---", "already-dashed"},
		{"ÜBER cool", "über-cool"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.in), "input %q", tt.in)
	}
}

func TestCutToLen(t *testing.T) {
	assert.Equal(t, "abc", cutToLen("abc", 10))
	assert.Equal(t, "ab", cutToLen("ab-cd", 3))
	assert.Equal(t, "abc", cutToLen("abc", 0))
}
