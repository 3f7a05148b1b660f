package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactText = "Contact: jane@example.com, +91-9876543210, instagram.com/janedoe"

func TestExtractContacts(t *testing.T) {
	cd := ExtractContacts(contactText)

	assert.Equal(t, []string{"jane@example.com"}, cd.ContactInfo.Emails)
	require.NotEmpty(t, cd.ContactInfo.PhoneNumbers)
	assert.Contains(t, cd.ContactInfo.PhoneNumbers[0], "9876543210")
	require.NotNil(t, cd.SocialMedia.Instagram)
	assert.Equal(t, "janedoe", *cd.SocialMedia.Instagram)
	require.NotNil(t, cd.ContactInfo.Email)
	assert.Equal(t, "jane@example.com", *cd.ContactInfo.Email)
}

func TestExtractContactsIdempotent(t *testing.T) {
	first := ExtractContacts(contactText)
	second := ExtractContacts(contactText)
	assert.Equal(t, first, second)
}

func TestExtractContactsEmailNotMistakenForHandle(t *testing.T) {
	cd := ExtractContacts("Reach jane@example.com for bookings. IG: instagram.com/janedoe")
	require.NotNil(t, cd.SocialMedia.Instagram)
	assert.Equal(t, "janedoe", *cd.SocialMedia.Instagram)
}

func TestExtractContactsWebsite(t *testing.T) {
	cd := ExtractContacts("Profiles: facebook.com/jane and www.janedoe-music.com/about")
	require.NotNil(t, cd.SocialMedia.Facebook)
	assert.Equal(t, "jane", *cd.SocialMedia.Facebook)
	require.NotNil(t, cd.ContactInfo.Website)
	assert.Equal(t, "https://janedoe-music.com/about", *cd.ContactInfo.Website)
}

func TestExtractContactsAddressLine(t *testing.T) {
	cd := ExtractContacts("Jane Doe\nBased in Mumbai, Maharashtra\nVocalist")
	require.NotNil(t, cd.Address)
	require.NotNil(t, cd.Address.FullAddress)
	assert.Equal(t, "Based in Mumbai, Maharashtra", *cd.Address.FullAddress)
	assert.Nil(t, cd.Address.City)
}

func TestExtractContactsNothingFound(t *testing.T) {
	cd := ExtractContacts("just plain words here")
	assert.Nil(t, cd.SocialMedia.Instagram)
	assert.Nil(t, cd.ContactInfo.Email)
	assert.Nil(t, cd.Address)
	assert.Empty(t, cd.ContactInfo.Emails)
}

func TestExtractGuruName(t *testing.T) {
	lines := []string{
		"Jane Doe is a vocalist.",
		"She trained under Pandit Ravi Shankar for a decade.",
	}
	got := ExtractGuruName(lines)
	require.NotNil(t, got)
	assert.Equal(t, "Ravi Shankar", *got)
}

func TestExtractGuruNameNoMatch(t *testing.T) {
	assert.Nil(t, ExtractGuruName([]string{"nothing of note here"}))
}

func TestExtractGharanaName(t *testing.T) {
	lines := []string{"She belongs to the Jaipur gharana of khayal."}
	got := ExtractGharanaName(lines, "she belongs to the jaipur gharana of khayal.")
	require.NotNil(t, got)
	assert.Equal(t, "Jaipur", *got)
}

func TestExtractGharanaNameAbsent(t *testing.T) {
	assert.Nil(t, ExtractGharanaName([]string{"no tradition here"}, "no tradition here"))
}

func TestExtractAchievements(t *testing.T) {
	lines := []string{
		"Jane Doe, vocalist.",
		"Received the Sangeet Natak Akademi Award in 2015.",
		"Performed at the Saptak festival.",
	}
	got := ExtractAchievements(lines)
	require.Len(t, got, 2)
	assert.Equal(t, "recognition", got[0].Type)
	assert.Equal(t, "Received the Sangeet Natak Akademi Award in 2015.", got[0].Title)
	assert.Equal(t, "Performed at the Saptak festival.", got[1].Title)
	assert.Nil(t, got[0].Year)
}

func TestSummarize(t *testing.T) {
	text := "First sentence. Second sentence. Third sentence. Fourth sentence."
	got := Summarize(text, "Jane Doe")
	assert.Contains(t, got, "First sentence")
	assert.Contains(t, got, "Third sentence")
	assert.NotContains(t, got, "Fourth")
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, "Information about Jane Doe", Summarize("", "Jane Doe"))
}

func TestBuildProfile(t *testing.T) {
	text := "Jane Doe is a vocalist of the Jaipur gharana of classical khayal.\n" +
		"She trained under Ustad Ali Khan.\n" +
		"Received the national award in 2015.\n" +
		"Contact: jane@example.com"
	p := BuildProfile("Jane Doe", text)

	assert.Equal(t, "Jane Doe", p.ArtistName)
	require.NotNil(t, p.GharanaDetails)
	require.NotNil(t, p.GharanaDetails.GharanaName)
	assert.Equal(t, "Jaipur", *p.GharanaDetails.GharanaName)
	require.NotNil(t, p.GharanaDetails.Style)
	assert.Equal(t, "Indian Classical", *p.GharanaDetails.Style)
	require.NotNil(t, p.GuruName)
	assert.Equal(t, "Ali Khan", *p.GuruName)
	require.Len(t, p.Achievements, 1)
	require.NotNil(t, p.ExtractionConfidence)
	assert.Equal(t, "medium", *p.ExtractionConfidence)
	require.NotNil(t, p.ContactDetails)
	assert.Equal(t, []string{"jane@example.com"}, p.ContactDetails.ContactInfo.Emails)
	require.NotNil(t, p.Summary)
	require.NotNil(t, p.Biography)
	assert.Equal(t, p.Summary, p.Biography.Background)
}
