// Package fallback builds a best-effort artist profile from raw text with
// regular expressions and keyword scans. It is the recovery path used when
// no generation backend is available; the heuristics are single-pass and
// first-match-wins, so the output is approximate on purpose.
package fallback

import (
	"strings"

	"github.com/arnav-deshpande/kalakaar/constants"
	"github.com/arnav-deshpande/kalakaar/internal/entity"
)

var guruKeywords = []string{
	"guru", "teacher", "ustad", "pandit", "under", "trained with", "student of",
}

var achievementKeywords = []string{
	"award", "conferred", "recognition", "performed", "festival",
	"honor", "prize", "achievement",
}

// BuildProfile assembles a full profile for name from text using pattern
// matching only.
func BuildProfile(name, text string) *entity.ArtistProfile {
	lower := strings.ToLower(text)
	lines := strings.Split(text, "\n")

	summary := Summarize(text, name)
	confidence := constants.ConfidenceMedium
	notes := "Extracted using fallback method with pattern matching"

	var gharana *entity.GharanaDetails
	if gn := ExtractGharanaName(lines, lower); gn != nil {
		gharana = &entity.GharanaDetails{GharanaName: gn}
		if strings.Contains(lower, "classical") {
			gharana.Style = entity.StrPtr("Indian Classical")
			gharana.Tradition = entity.StrPtr("Indian Classical Music")
		}
	}

	return &entity.ArtistProfile{
		ArtistName:           name,
		GuruName:             ExtractGuruName(lines),
		GharanaDetails:       gharana,
		Biography:            &entity.Biography{Background: &summary},
		Achievements:         ExtractAchievements(lines),
		ContactDetails:       ExtractContacts(text),
		Summary:              &summary,
		ExtractionConfidence: &confidence,
		AdditionalNotes:      &notes,
	}
}

// Summarize joins the first three sentences of text, falling back to a
// stock line when there are none.
func Summarize(text, name string) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	sentences := strings.Split(flat, ".")
	if len(sentences) > 3 {
		sentences = sentences[:3]
	}
	s := strings.TrimSpace(strings.Join(sentences, ". "))
	if s == "" {
		return "Information about " + name
	}
	return s + "."
}

// ExtractGuruName scans lines for mentor keywords and takes the two words
// that follow the keyword token as a naive name guess. First hit wins.
func ExtractGuruName(lines []string) *string {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range guruKeywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			words := strings.Fields(line)
			for i, w := range words {
				if strings.Contains(strings.ToLower(w), kw) && i < len(words)-2 {
					guess := strings.Trim(words[i+1]+" "+words[i+2], ".,")
					if guess != "" {
						return &guess
					}
				}
			}
		}
	}
	return nil
}

// ExtractGharanaName returns the word immediately before the first
// occurrence of "gharana", or nil when the text never mentions one.
func ExtractGharanaName(lines []string, lowerText string) *string {
	if !strings.Contains(lowerText, "gharana") {
		return nil
	}
	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), "gharana") {
			continue
		}
		words := strings.Fields(line)
		for i, w := range words {
			if strings.Contains(strings.ToLower(w), "gharana") && i > 0 {
				return &words[i-1]
			}
		}
		break
	}
	return nil
}

// ExtractAchievements turns every line mentioning an achievement keyword
// into one generic "recognition" entry with the whole line as the title.
func ExtractAchievements(lines []string) []entity.Achievement {
	var out []entity.Achievement
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range achievementKeywords {
			if strings.Contains(lower, kw) {
				out = append(out, entity.Achievement{
					Type:  "recognition",
					Title: strings.TrimSpace(line),
				})
				break
			}
		}
	}
	return out
}
