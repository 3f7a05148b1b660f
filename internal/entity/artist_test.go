package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The profile is stored as a jsonb column, so a marshal/unmarshal cycle is
// exactly what persistence does to it. Every field, filled or null, must
// come back identical.
func TestArtistProfileJSONRoundTrip(t *testing.T) {
	original := &ArtistProfile{
		ArtistName: "Zakir Hussain",
		GuruName:   StrPtr("Alla Rakha"),
		GharanaDetails: &GharanaDetails{
			GharanaName: StrPtr("Punjab"),
			Style:       StrPtr("tabla"),
			Tradition:   nil,
		},
		Biography: &Biography{
			EarlyLife:        StrPtr("Born in Mumbai."),
			Background:       nil,
			Education:        StrPtr("Trained under his father."),
			CareerHighlights: StrPtr("Performed worldwide."),
		},
		Achievements: []Achievement{
			{Type: "award", Title: "Padma Shri", Year: StrPtr("1988"), Details: nil},
			{Type: "award", Title: "Padma Bhushan", Year: StrPtr("2002"), Details: StrPtr("Government of India")},
			{Type: "recognition", Title: "Grammy winner", Year: nil, Details: nil},
		},
		ContactDetails: &ContactDetails{
			SocialMedia: SocialMedia{
				Instagram: StrPtr("https://instagram.com/zakirhq"),
				YouTube:   StrPtr("https://youtube.com/@zakirhq"),
			},
			ContactInfo: ContactInfo{
				PhoneNumbers: []string{"+91 98765 43210", "+91 98765 43210"},
				Emails:       []string{"zakir@example.com"},
				Website:      StrPtr("https://example.com"),
				Phone:        StrPtr("+91 98765 43210"),
				Email:        nil,
			},
			Address: &Address{
				FullAddress: StrPtr("12 Carter Road, Mumbai"),
			},
		},
		Summary:              StrPtr("Tabla virtuoso."),
		ExtractionConfidence: StrPtr("high"),
		AdditionalNotes:      nil,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var got ArtistProfile
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, original, &got)

	// Nulls are serialized explicitly, not dropped.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "additional_notes")
	assert.Equal(t, "null", string(raw["additional_notes"]))

	var social map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(mustField(t, data, "contact_details", "social_media"), &social))
	assert.Len(t, social, 10)
	assert.Equal(t, "null", string(social["spotify"]))

	// Achievement order survives.
	require.Len(t, got.Achievements, 3)
	assert.Equal(t, "Padma Shri", got.Achievements[0].Title)
	assert.Equal(t, "Grammy winner", got.Achievements[2].Title)

	// Duplicate phone matches are preserved verbatim.
	assert.Equal(t, []string{"+91 98765 43210", "+91 98765 43210"},
		got.ContactDetails.ContactInfo.PhoneNumbers)
}

func TestArtistProfileMinimalRoundTrip(t *testing.T) {
	original := &ArtistProfile{ArtistName: "Unknown Artist"}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var got ArtistProfile
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, original, &got)
	assert.Nil(t, got.GuruName)
	assert.Nil(t, got.Achievements)
	assert.Nil(t, got.ContactDetails)
}

func mustField(t *testing.T, data []byte, keys ...string) json.RawMessage {
	t.Helper()
	cur := json.RawMessage(data)
	for _, k := range keys {
		var m map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(cur, &m))
		require.Contains(t, m, k)
		cur = m[k]
	}
	return cur
}
