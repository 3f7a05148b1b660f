package llm

import (
	"encoding/json"
	"strings"

	"github.com/arnav-deshpande/kalakaar/internal/entity"
)

// RefinementTextLimit bounds how much raw document text rides along in a
// refinement prompt; the existing record is the primary context there.
const RefinementTextLimit = 2000

const profileJSONShape = `{
  "artist_name": "%ARTIST_NAME%",
  "guru_name": "Primary guru/teacher name or null",
  "gharana_details": {
    "gharana_name": "Gharana name or null",
    "style": "Musical/dance style or null",
    "tradition": "Cultural tradition or null"
  },
  "biography": {
    "early_life": "Early life details or null",
    "background": "Background information or null",
    "education": "Education details or null",
    "career_highlights": "Career highlights or null"
  },
  "achievements": [
    {
      "type": "award/performance/recognition",
      "title": "Achievement title",
      "year": "Year or null",
      "details": "Additional details or null"
    }
  ],
  "contact_details": {
    "social_media": {
      "instagram": "Instagram handle/URL or null",
      "facebook": "Facebook profile/URL or null",
      "twitter": "Twitter handle/URL or null",
      "youtube": "YouTube channel/URL or null",
      "linkedin": "LinkedIn profile/URL or null",
      "spotify": "Spotify artist profile/URL or null",
      "tiktok": "TikTok handle/URL or null",
      "snapchat": "Snapchat handle or null",
      "discord": "Discord handle or null",
      "other": "Any other social media links or null"
    },
    "contact_info": {
      "phone_numbers": ["Phone number 1", "Phone number 2"],
      "emails": ["email1@example.com", "email2@example.com"],
      "website": "Website URL or null",
      "phone": "Primary phone number or null",
      "email": "Primary email address or null"
    },
    "address": {
      "full_address": "Complete postal address or null",
      "city": "City or null",
      "state": "State/Province or null",
      "country": "Country or null"
    }
  },
  "summary": "Comprehensive summary of the artist based on the document",
  "extraction_confidence": "high/medium/low",
  "additional_notes": "Any other relevant information"
}`

// BuildInitialPrompt produces the extraction prompt for a first pass over
// a document. The name is stated as ground truth so the model does not
// invent one.
func BuildInitialPrompt(name, text string) string {
	var b strings.Builder
	b.WriteString("# Artist Information Extraction Task\n\n")
	b.WriteString("You are an expert information extraction specialist. ")
	b.WriteString("Extract comprehensive artist information from the provided document text. ")
	b.WriteString("The artist name is: \"" + name + "\"\n\n")
	b.WriteString("## Document Text:\n")
	b.WriteString(text)
	b.WriteString("\n\n## Output Format (JSON):\n\n```json\n")
	b.WriteString(strings.ReplaceAll(profileJSONShape, "%ARTIST_NAME%", name))
	b.WriteString("\n```\n\n## Guidelines:\n")
	b.WriteString("- ALWAYS use \"" + name + "\" as the artist_name\n")
	b.WriteString("- Extract information ONLY from the provided document text\n")
	b.WriteString("- Use null for information not found; never omit a key, never invent facts\n")
	b.WriteString("- Be accurate and factual\n")
	b.WriteString("- Generate a comprehensive summary based on available information\n")
	b.WriteString("- For social media: look for Instagram, Facebook, Twitter, YouTube, LinkedIn, Spotify, TikTok handles or URLs\n\n")
	b.WriteString("Provide the extracted information in the exact JSON format specified.\n")
	return b.String()
}

// BuildRefinementPrompt produces the enhancement prompt: the existing
// record serialized as context to be revised, plus a bounded slice of the
// original text. Unlike the initial prompt it asks the model to improve
// existing values, not only fill nulls.
func BuildRefinementPrompt(name string, existing *entity.ArtistProfile, text string) string {
	existingJSON, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		existingJSON = []byte("{}")
	}
	if len(text) > RefinementTextLimit {
		text = text[:RefinementTextLimit]
	}

	var b strings.Builder
	b.WriteString("# Artist Information Enhancement Task\n\n")
	b.WriteString("You are an expert information extraction specialist. ")
	b.WriteString("Below is an existing artist profile followed by the original document text. ")
	b.WriteString("Improve the profile: correct inaccurate values, enrich sparse ones, and fill nulls ")
	b.WriteString("where the document supports it. The artist name is: \"" + name + "\"\n\n")
	b.WriteString("## Existing Profile:\n```json\n")
	b.Write(existingJSON)
	b.WriteString("\n```\n\n## Original Document Text (may be truncated):\n")
	b.WriteString(text)
	b.WriteString("\n\n## Output Format (JSON):\n\n```json\n")
	b.WriteString(strings.ReplaceAll(profileJSONShape, "%ARTIST_NAME%", name))
	b.WriteString("\n```\n\n## Guidelines:\n")
	b.WriteString("- ALWAYS use \"" + name + "\" as the artist_name\n")
	b.WriteString("- Keep existing values unless the document contradicts them\n")
	b.WriteString("- Use null for information that cannot be found; never omit a key, never invent facts\n\n")
	b.WriteString("Provide the full revised profile in the exact JSON format specified.\n")
	return b.String()
}
