package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/arnav-deshpande/kalakaar/internal/common"
	"github.com/arnav-deshpande/kalakaar/internal/entity"
)

var fencedJSON = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n```")

// ExtractJSONPayload recovers a JSON object from raw model output. Models
// wrap JSON in prose or code fences inconsistently, so three strategies
// are tried in order: a fenced block, then the first-{ to last-} span,
// then give up with ErrParse keeping a slice of the offender for logs.
func ExtractJSONPayload(raw string) ([]byte, error) {
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		candidate := []byte(m[1])
		if json.Valid(candidate) {
			return candidate, nil
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		candidate := []byte(raw[start : end+1])
		if json.Valid(candidate) {
			return candidate, nil
		}
	}

	return nil, common.NewAppError("PARSE_ERROR",
		"no recoverable JSON in response: "+snippet(raw, 200), common.ErrParse)
}

// DecodeProfile validates the payload against the profile schema and
// decodes it. The canonical name is injected before validation: the model's
// guess for artist_name is never trusted, and a null there must not fail
// an otherwise good payload.
func DecodeProfile(payload []byte, canonicalName string) (*entity.ArtistProfile, error) {
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, common.NewAppError("PARSE_ERROR",
			"payload is not a JSON object", common.ErrParse)
	}
	m["artist_name"] = canonicalName

	normalized, err := json.Marshal(m)
	if err != nil {
		return nil, common.NewAppError("PARSE_ERROR",
			"re-marshal payload failed", common.ErrParse)
	}

	if err := ValidateJSONAgainstSchema(BuildArtistJSONSchema(), normalized); err != nil {
		return nil, common.NewAppError("VALIDATION_ERROR",
			err.Error(), common.ErrValidation)
	}

	var p entity.ArtistProfile
	if err := json.Unmarshal(normalized, &p); err != nil {
		return nil, common.NewAppError("VALIDATION_ERROR",
			"payload does not decode into a profile: "+err.Error(), common.ErrValidation)
	}
	p.ArtistName = canonicalName
	return &p, nil
}

func snippet(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
