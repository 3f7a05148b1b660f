package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnav-deshpande/kalakaar/internal/common"
)

func TestExtractJSONPayloadFenced(t *testing.T) {
	raw := "Here is the profile you asked for:\n```json\n{\"artist_name\": \"Jane Doe\"}\n```\nLet me know if you need more."
	payload, err := ExtractJSONPayload(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"artist_name": "Jane Doe"}`, string(payload))
}

func TestExtractJSONPayloadBareBraces(t *testing.T) {
	raw := `Sure! {"artist_name": "Jane Doe", "guru_name": null} Hope that helps.`
	payload, err := ExtractJSONPayload(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"artist_name": "Jane Doe", "guru_name": null}`, string(payload))
}

func TestExtractJSONPayloadBrokenFenceFallsThrough(t *testing.T) {
	// fenced block is invalid JSON, but the brace span is fine
	raw := "```json\nnot json at all\n```\nactual: {\"artist_name\": \"X\"}"
	payload, err := ExtractJSONPayload(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"artist_name": "X"}`, string(payload))
}

func TestExtractJSONPayloadNoBraces(t *testing.T) {
	_, err := ExtractJSONPayload("I could not find any information in this document.")
	assert.ErrorIs(t, err, common.ErrParse)
}

func TestDecodeProfileInjectsCanonicalName(t *testing.T) {
	payload := []byte(`{"artist_name": null, "guru_name": "Pandit X", "summary": "A vocalist."}`)
	p, err := DecodeProfile(payload, "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.ArtistName)
	require.NotNil(t, p.GuruName)
	assert.Equal(t, "Pandit X", *p.GuruName)
}

func TestDecodeProfileOverridesModelName(t *testing.T) {
	payload := []byte(`{"artist_name": "Someone Else"}`)
	p, err := DecodeProfile(payload, "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.ArtistName)
}

func TestDecodeProfileRejectsBadConfidence(t *testing.T) {
	payload := []byte(`{"artist_name": "x", "extraction_confidence": "certain"}`)
	_, err := DecodeProfile(payload, "Jane Doe")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestDecodeProfileRejectsNonObject(t *testing.T) {
	_, err := DecodeProfile([]byte(`[1, 2, 3]`), "Jane Doe")
	assert.ErrorIs(t, err, common.ErrParse)
}

func TestDecodeProfileFullShape(t *testing.T) {
	payload := []byte(`{
		"artist_name": "Jane Doe",
		"guru_name": "Ustad Ali Khan",
		"gharana_details": {"gharana_name": "Jaipur", "style": "Khayal", "tradition": null},
		"biography": {"early_life": null, "background": "Born in Mumbai.", "education": null, "career_highlights": null},
		"achievements": [{"type": "award", "title": "National Award", "year": "2015", "details": null}],
		"contact_details": {
			"social_media": {"instagram": "janedoe", "facebook": null, "twitter": null, "youtube": null,
				"linkedin": null, "spotify": null, "tiktok": null, "snapchat": null, "discord": null, "other": null},
			"contact_info": {"phone_numbers": ["9876543210"], "emails": ["jane@example.com"],
				"website": null, "phone": "9876543210", "email": "jane@example.com"},
			"address": {"full_address": "12 Marine Drive, Mumbai", "city": "Mumbai", "state": null, "country": "India"}
		},
		"summary": "A leading khayal vocalist.",
		"extraction_confidence": "high",
		"additional_notes": null
	}`)
	p, err := DecodeProfile(payload, "Jane Doe")
	require.NoError(t, err)
	require.NotNil(t, p.GharanaDetails)
	assert.Equal(t, "Jaipur", *p.GharanaDetails.GharanaName)
	require.Len(t, p.Achievements, 1)
	assert.Equal(t, "National Award", p.Achievements[0].Title)
	require.NotNil(t, p.ContactDetails)
	assert.Equal(t, "janedoe", *p.ContactDetails.SocialMedia.Instagram)
	assert.Equal(t, "high", *p.ExtractionConfidence)
	assert.Nil(t, p.AdditionalNotes)
}
