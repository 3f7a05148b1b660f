// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/arnav-deshpande/kalakaar/db/ent/schema"
	"github.com/arnav-deshpande/kalakaar/gen/ent/artist"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	artistFields := schema.Artist{}.Fields()
	_ = artistFields
	// artistDescArtistName is the schema descriptor for artist_name field.
	artistDescArtistName := artistFields[1].Descriptor()
	// artist.ArtistNameValidator is a validator for the "artist_name" field. It is called by the builders before save.
	artist.ArtistNameValidator = artistDescArtistName.Validators[0].(func(string) error)
	// artistDescOriginalFilename is the schema descriptor for original_filename field.
	artistDescOriginalFilename := artistFields[4].Descriptor()
	// artist.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	artist.OriginalFilenameValidator = artistDescOriginalFilename.Validators[0].(func(string) error)
	// artistDescStatus is the schema descriptor for status field.
	artistDescStatus := artistFields[6].Descriptor()
	// artist.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	artist.StatusValidator = artistDescStatus.Validators[0].(func(string) error)
	// artistDescExtractionMethod is the schema descriptor for extraction_method field.
	artistDescExtractionMethod := artistFields[7].Descriptor()
	// artist.ExtractionMethodValidator is a validator for the "extraction_method" field. It is called by the builders before save.
	artist.ExtractionMethodValidator = artistDescExtractionMethod.Validators[0].(func(string) error)
	// artistDescCreatedAt is the schema descriptor for created_at field.
	artistDescCreatedAt := artistFields[9].Descriptor()
	// artist.DefaultCreatedAt holds the default value on creation for the created_at field.
	artist.DefaultCreatedAt = artistDescCreatedAt.Default.(func() time.Time)
	// artistDescUpdatedAt is the schema descriptor for updated_at field.
	artistDescUpdatedAt := artistFields[10].Descriptor()
	// artist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	artist.DefaultUpdatedAt = artistDescUpdatedAt.Default.(func() time.Time)
	// artist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	artist.UpdateDefaultUpdatedAt = artistDescUpdatedAt.UpdateDefault.(func() time.Time)
	// artistDescID is the schema descriptor for id field.
	artistDescID := artistFields[0].Descriptor()
	// artist.DefaultID holds the default value on creation for the id field.
	artist.DefaultID = artistDescID.Default.(func() uuid.UUID)
}
