package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaRequiresArtistName(t *testing.T) {
	schema := BuildArtistJSONSchema()
	err := ValidateJSONAgainstSchema(schema, []byte(`{"guru_name": "X"}`))
	assert.Error(t, err)

	err = ValidateJSONAgainstSchema(schema, []byte(`{"artist_name": ""}`))
	assert.Error(t, err)

	err = ValidateJSONAgainstSchema(schema, []byte(`{"artist_name": "Jane Doe"}`))
	assert.NoError(t, err)
}

func TestSchemaAcceptsNullOptionals(t *testing.T) {
	schema := BuildArtistJSONSchema()
	doc := `{
		"artist_name": "Jane Doe",
		"guru_name": null,
		"gharana_details": null,
		"biography": null,
		"achievements": null,
		"contact_details": null,
		"summary": null,
		"extraction_confidence": null,
		"additional_notes": null
	}`
	require.NoError(t, ValidateJSONAgainstSchema(schema, []byte(doc)))
}

func TestSchemaRejectsWrongTypes(t *testing.T) {
	schema := BuildArtistJSONSchema()
	assert.Error(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"artist_name": "X", "achievements": "not a list"}`)))
	assert.Error(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"artist_name": "X", "contact_details": {"contact_info": {"emails": "one@example.com"}}}`)))
}
