package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnav-deshpande/kalakaar/internal/entity"
)

func TestBuildInitialPrompt(t *testing.T) {
	p := BuildInitialPrompt("Jane Doe", "Jane Doe is a vocalist.")
	assert.Contains(t, p, `The artist name is: "Jane Doe"`)
	assert.Contains(t, p, "Jane Doe is a vocalist.")
	assert.Contains(t, p, "```json")
	assert.Contains(t, p, `"artist_name": "Jane Doe"`)
	assert.Contains(t, p, `"tiktok"`)
	assert.Contains(t, p, "never omit a key")
}

func TestBuildRefinementPromptIncludesExistingRecord(t *testing.T) {
	existing := &entity.ArtistProfile{
		ArtistName: "Jane Doe",
		GuruName:   entity.StrPtr("Ustad Ali Khan"),
	}
	p := BuildRefinementPrompt("Jane Doe", existing, "some document text")
	assert.Contains(t, p, "Existing Profile")
	assert.Contains(t, p, `"guru_name": "Ustad Ali Khan"`)
	assert.Contains(t, p, "some document text")
	assert.Contains(t, p, "Improve the profile")
}

func TestBuildRefinementPromptTruncatesText(t *testing.T) {
	long := strings.Repeat("a", RefinementTextLimit+500)
	p := BuildRefinementPrompt("Jane Doe", &entity.ArtistProfile{ArtistName: "Jane Doe"}, long)
	assert.NotContains(t, p, strings.Repeat("a", RefinementTextLimit+1))
	assert.Contains(t, p, strings.Repeat("a", RefinementTextLimit))
}
