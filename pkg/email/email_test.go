package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"ada@example.com", true},
		{"ada.lovelace+claims@mail.example.co.uk", true},
		{"ADA@EXAMPLE.COM", true},
		{"", false},
		{"ada", false},
		{"ada@example", false},
		{"@example.com", false},
		{"ada@.com", false},
		{"ada@example.c", false},
		{"ada @example.com", false},
		{strings.Repeat("a", 250) + "@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ada@example.com", Normalize("  Ada@Example.COM "))
}
