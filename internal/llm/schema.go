package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

func nullableStringArray() map[string]any {
	return map[string]any{
		"type":  []string{"array", "null"},
		"items": map[string]any{"type": "string"},
	}
}

// BuildArtistJSONSchema returns the JSON schema an extracted profile must
// satisfy. Only artist_name is required; everything else is nullable, and
// unknown sibling keys are tolerated so a chatty model does not fail an
// otherwise usable payload.
func BuildArtistJSONSchema() map[string]any {
	socialMedia := map[string]any{
		"type": []string{"object", "null"},
		"properties": map[string]any{
			"instagram": nullableString(),
			"facebook":  nullableString(),
			"twitter":   nullableString(),
			"youtube":   nullableString(),
			"linkedin":  nullableString(),
			"spotify":   nullableString(),
			"tiktok":    nullableString(),
			"snapchat":  nullableString(),
			"discord":   nullableString(),
			"other":     nullableString(),
		},
	}
	contactInfo := map[string]any{
		"type": []string{"object", "null"},
		"properties": map[string]any{
			"phone_numbers": nullableStringArray(),
			"emails":        nullableStringArray(),
			"website":       nullableString(),
			"phone":         nullableString(),
			"email":         nullableString(),
		},
	}
	address := map[string]any{
		"type": []string{"object", "null"},
		"properties": map[string]any{
			"full_address": nullableString(),
			"city":         nullableString(),
			"state":        nullableString(),
			"country":      nullableString(),
		},
	}

	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type":    "object",
		"properties": map[string]any{
			"artist_name": map[string]any{"type": "string", "minLength": 1},
			"guru_name":   nullableString(),
			"gharana_details": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"gharana_name": nullableString(),
					"style":        nullableString(),
					"tradition":    nullableString(),
				},
			},
			"biography": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"early_life":        nullableString(),
					"background":        nullableString(),
					"education":         nullableString(),
					"career_highlights": nullableString(),
				},
			},
			"achievements": map[string]any{
				"type": []string{"array", "null"},
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":    nullableString(),
						"title":   nullableString(),
						"year":    nullableString(),
						"details": nullableString(),
					},
				},
			},
			"contact_details": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"social_media": socialMedia,
					"contact_info": contactInfo,
					"address":      address,
				},
			},
			"summary": nullableString(),
			"extraction_confidence": map[string]any{
				"anyOf": []any{
					map[string]any{"type": "string", "enum": []string{"high", "medium", "low"}},
					map[string]any{"type": "null"},
				},
			},
			"additional_notes": nullableString(),
		},
		"required": []string{"artist_name"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
