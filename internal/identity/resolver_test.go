package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"timestamped upload", "20231015_143000_jane_doe.pdf", "Jane Doe"},
		{"plain underscores", "ravi_shankar.pdf", "Ravi Shankar"},
		{"hyphens", "maria-garcia.docx", "Maria Garcia"},
		{"mixed separators", "zakir_hussain-profile.png", "Zakir Hussain Profile"},
		{"already spaced", "Anoushka Shankar.jpeg", "Anoushka Shankar"},
		{"repeated separators collapse", "jane__doe.pdf", "Jane Doe"},
		{"only separators", "___.pdf", "Unknown Artist"},
		{"empty after extension", ".pdf", "Unknown Artist"},
		{"single character", "a.pdf", "Unknown Artist"},
		{"single multibyte character", "é.pdf", "Unknown Artist"},
		{"two multibyte characters", "éà.pdf", "Éà"},
		{"no extension", "jane_doe", "Jane Doe"},
		{"apostrophe", "shaun_o'brien.pdf", "Shaun O'Brien"},
		{"timestamp only strips once", "20231015_143000_20231015_143000_x_y.pdf", "20231015 143000 X Y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveName(tt.filename))
		})
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Jane Doe", titleCase("jane doe"))
	assert.Equal(t, "Jane Doe", titleCase("JANE DOE"))
	assert.Equal(t, "Abc3De", titleCase("abc3de"))
}
