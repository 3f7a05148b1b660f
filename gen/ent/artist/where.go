// Code generated by ent, DO NOT EDIT.

package artist

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arnav-deshpande/kalakaar/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Artist {
	return predicate.Artist(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Artist {
	return predicate.Artist(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Artist {
	return predicate.Artist(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Artist {
	return predicate.Artist(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Artist {
	return predicate.Artist(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Artist {
	return predicate.Artist(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Artist {
	return predicate.Artist(sql.FieldLTE(FieldID, id))
}

// ArtistName applies equality check predicate on the "artist_name" field. It's identical to ArtistNameEQ.
func ArtistName(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldArtistName, v))
}

// GuruName applies equality check predicate on the "guru_name" field. It's identical to GuruNameEQ.
func GuruName(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldGuruName, v))
}

// GharanaName applies equality check predicate on the "gharana_name" field. It's identical to GharanaNameEQ.
func GharanaName(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldGharanaName, v))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldOriginalFilename, v))
}

// ExtractedText applies equality check predicate on the "extracted_text" field. It's identical to ExtractedTextEQ.
func ExtractedText(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldExtractedText, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldStatus, v))
}

// ExtractionMethod applies equality check predicate on the "extraction_method" field. It's identical to ExtractionMethodEQ.
func ExtractionMethod(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldExtractionMethod, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldUpdatedAt, v))
}

// ArtistNameEQ applies the EQ predicate on the "artist_name" field.
func ArtistNameEQ(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldArtistName, v))
}

// ArtistNameNEQ applies the NEQ predicate on the "artist_name" field.
func ArtistNameNEQ(v string) predicate.Artist {
	return predicate.Artist(sql.FieldNEQ(FieldArtistName, v))
}

// ArtistNameIn applies the In predicate on the "artist_name" field.
func ArtistNameIn(vs ...string) predicate.Artist {
	return predicate.Artist(sql.FieldIn(FieldArtistName, vs...))
}

// ArtistNameNotIn applies the NotIn predicate on the "artist_name" field.
func ArtistNameNotIn(vs ...string) predicate.Artist {
	return predicate.Artist(sql.FieldNotIn(FieldArtistName, vs...))
}

// ArtistNameGT applies the GT predicate on the "artist_name" field.
func ArtistNameGT(v string) predicate.Artist {
	return predicate.Artist(sql.FieldGT(FieldArtistName, v))
}

// ArtistNameGTE applies the GTE predicate on the "artist_name" field.
func ArtistNameGTE(v string) predicate.Artist {
	return predicate.Artist(sql.FieldGTE(FieldArtistName, v))
}

// ArtistNameLT applies the LT predicate on the "artist_name" field.
func ArtistNameLT(v string) predicate.Artist {
	return predicate.Artist(sql.FieldLT(FieldArtistName, v))
}

// ArtistNameLTE applies the LTE predicate on the "artist_name" field.
func ArtistNameLTE(v string) predicate.Artist {
	return predicate.Artist(sql.FieldLTE(FieldArtistName, v))
}

// ArtistNameContains applies the Contains predicate on the "artist_name" field.
func ArtistNameContains(v string) predicate.Artist {
	return predicate.Artist(sql.FieldContains(FieldArtistName, v))
}

// ArtistNameHasPrefix applies the HasPrefix predicate on the "artist_name" field.
func ArtistNameHasPrefix(v string) predicate.Artist {
	return predicate.Artist(sql.FieldHasPrefix(FieldArtistName, v))
}

// ArtistNameHasSuffix applies the HasSuffix predicate on the "artist_name" field.
func ArtistNameHasSuffix(v string) predicate.Artist {
	return predicate.Artist(sql.FieldHasSuffix(FieldArtistName, v))
}

// ArtistNameEqualFold applies the EqualFold predicate on the "artist_name" field.
func ArtistNameEqualFold(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEqualFold(FieldArtistName, v))
}

// ArtistNameContainsFold applies the ContainsFold predicate on the "artist_name" field.
func ArtistNameContainsFold(v string) predicate.Artist {
	return predicate.Artist(sql.FieldContainsFold(FieldArtistName, v))
}

// GuruNameEQ applies the EQ predicate on the "guru_name" field.
func GuruNameEQ(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldGuruName, v))
}

// GuruNameNEQ applies the NEQ predicate on the "guru_name" field.
func GuruNameNEQ(v string) predicate.Artist {
	return predicate.Artist(sql.FieldNEQ(FieldGuruName, v))
}

// GuruNameIn applies the In predicate on the "guru_name" field.
func GuruNameIn(vs ...string) predicate.Artist {
	return predicate.Artist(sql.FieldIn(FieldGuruName, vs...))
}

// GuruNameNotIn applies the NotIn predicate on the "guru_name" field.
func GuruNameNotIn(vs ...string) predicate.Artist {
	return predicate.Artist(sql.FieldNotIn(FieldGuruName, vs...))
}

// GuruNameGT applies the GT predicate on the "guru_name" field.
func GuruNameGT(v string) predicate.Artist {
	return predicate.Artist(sql.FieldGT(FieldGuruName, v))
}

// GuruNameGTE applies the GTE predicate on the "guru_name" field.
func GuruNameGTE(v string) predicate.Artist {
	return predicate.Artist(sql.FieldGTE(FieldGuruName, v))
}

// GuruNameLT applies the LT predicate on the "guru_name" field.
func GuruNameLT(v string) predicate.Artist {
	return predicate.Artist(sql.FieldLT(FieldGuruName, v))
}

// GuruNameLTE applies the LTE predicate on the "guru_name" field.
func GuruNameLTE(v string) predicate.Artist {
	return predicate.Artist(sql.FieldLTE(FieldGuruName, v))
}

// GuruNameContains applies the Contains predicate on the "guru_name" field.
func GuruNameContains(v string) predicate.Artist {
	return predicate.Artist(sql.FieldContains(FieldGuruName, v))
}

// GuruNameHasPrefix applies the HasPrefix predicate on the "guru_name" field.
func GuruNameHasPrefix(v string) predicate.Artist {
	return predicate.Artist(sql.FieldHasPrefix(FieldGuruName, v))
}

// GuruNameHasSuffix applies the HasSuffix predicate on the "guru_name" field.
func GuruNameHasSuffix(v string) predicate.Artist {
	return predicate.Artist(sql.FieldHasSuffix(FieldGuruName, v))
}

// GuruNameIsNil applies the IsNil predicate on the "guru_name" field.
func GuruNameIsNil() predicate.Artist {
	return predicate.Artist(sql.FieldIsNull(FieldGuruName))
}

// GuruNameNotNil applies the NotNil predicate on the "guru_name" field.
func GuruNameNotNil() predicate.Artist {
	return predicate.Artist(sql.FieldNotNull(FieldGuruName))
}

// GuruNameEqualFold applies the EqualFold predicate on the "guru_name" field.
func GuruNameEqualFold(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEqualFold(FieldGuruName, v))
}

// GuruNameContainsFold applies the ContainsFold predicate on the "guru_name" field.
func GuruNameContainsFold(v string) predicate.Artist {
	return predicate.Artist(sql.FieldContainsFold(FieldGuruName, v))
}

// GharanaNameEQ applies the EQ predicate on the "gharana_name" field.
func GharanaNameEQ(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldGharanaName, v))
}

// GharanaNameNEQ applies the NEQ predicate on the "gharana_name" field.
func GharanaNameNEQ(v string) predicate.Artist {
	return predicate.Artist(sql.FieldNEQ(FieldGharanaName, v))
}

// GharanaNameIn applies the In predicate on the "gharana_name" field.
func GharanaNameIn(vs ...string) predicate.Artist {
	return predicate.Artist(sql.FieldIn(FieldGharanaName, vs...))
}

// GharanaNameNotIn applies the NotIn predicate on the "gharana_name" field.
func GharanaNameNotIn(vs ...string) predicate.Artist {
	return predicate.Artist(sql.FieldNotIn(FieldGharanaName, vs...))
}

// GharanaNameGT applies the GT predicate on the "gharana_name" field.
func GharanaNameGT(v string) predicate.Artist {
	return predicate.Artist(sql.FieldGT(FieldGharanaName, v))
}

// GharanaNameGTE applies the GTE predicate on the "gharana_name" field.
func GharanaNameGTE(v string) predicate.Artist {
	return predicate.Artist(sql.FieldGTE(FieldGharanaName, v))
}

// GharanaNameLT applies the LT predicate on the "gharana_name" field.
func GharanaNameLT(v string) predicate.Artist {
	return predicate.Artist(sql.FieldLT(FieldGharanaName, v))
}

// GharanaNameLTE applies the LTE predicate on the "gharana_name" field.
func GharanaNameLTE(v string) predicate.Artist {
	return predicate.Artist(sql.FieldLTE(FieldGharanaName, v))
}

// GharanaNameContains applies the Contains predicate on the "gharana_name" field.
func GharanaNameContains(v string) predicate.Artist {
	return predicate.Artist(sql.FieldContains(FieldGharanaName, v))
}

// GharanaNameHasPrefix applies the HasPrefix predicate on the "gharana_name" field.
func GharanaNameHasPrefix(v string) predicate.Artist {
	return predicate.Artist(sql.FieldHasPrefix(FieldGharanaName, v))
}

// GharanaNameHasSuffix applies the HasSuffix predicate on the "gharana_name" field.
func GharanaNameHasSuffix(v string) predicate.Artist {
	return predicate.Artist(sql.FieldHasSuffix(FieldGharanaName, v))
}

// GharanaNameIsNil applies the IsNil predicate on the "gharana_name" field.
func GharanaNameIsNil() predicate.Artist {
	return predicate.Artist(sql.FieldIsNull(FieldGharanaName))
}

// GharanaNameNotNil applies the NotNil predicate on the "gharana_name" field.
func GharanaNameNotNil() predicate.Artist {
	return predicate.Artist(sql.FieldNotNull(FieldGharanaName))
}

// GharanaNameEqualFold applies the EqualFold predicate on the "gharana_name" field.
func GharanaNameEqualFold(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEqualFold(FieldGharanaName, v))
}

// GharanaNameContainsFold applies the ContainsFold predicate on the "gharana_name" field.
func GharanaNameContainsFold(v string) predicate.Artist {
	return predicate.Artist(sql.FieldContainsFold(FieldGharanaName, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.Artist {
	return predicate.Artist(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.Artist {
	return predicate.Artist(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.Artist {
	return predicate.Artist(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.Artist {
	return predicate.Artist(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.Artist {
	return predicate.Artist(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.Artist {
	return predicate.Artist(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.Artist {
	return predicate.Artist(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.Artist {
	return predicate.Artist(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.Artist {
	return predicate.Artist(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.Artist {
	return predicate.Artist(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.Artist {
	return predicate.Artist(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// ExtractedTextEQ applies the EQ predicate on the "extracted_text" field.
func ExtractedTextEQ(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldExtractedText, v))
}

// ExtractedTextNEQ applies the NEQ predicate on the "extracted_text" field.
func ExtractedTextNEQ(v string) predicate.Artist {
	return predicate.Artist(sql.FieldNEQ(FieldExtractedText, v))
}

// ExtractedTextIn applies the In predicate on the "extracted_text" field.
func ExtractedTextIn(vs ...string) predicate.Artist {
	return predicate.Artist(sql.FieldIn(FieldExtractedText, vs...))
}

// ExtractedTextNotIn applies the NotIn predicate on the "extracted_text" field.
func ExtractedTextNotIn(vs ...string) predicate.Artist {
	return predicate.Artist(sql.FieldNotIn(FieldExtractedText, vs...))
}

// ExtractedTextGT applies the GT predicate on the "extracted_text" field.
func ExtractedTextGT(v string) predicate.Artist {
	return predicate.Artist(sql.FieldGT(FieldExtractedText, v))
}

// ExtractedTextGTE applies the GTE predicate on the "extracted_text" field.
func ExtractedTextGTE(v string) predicate.Artist {
	return predicate.Artist(sql.FieldGTE(FieldExtractedText, v))
}

// ExtractedTextLT applies the LT predicate on the "extracted_text" field.
func ExtractedTextLT(v string) predicate.Artist {
	return predicate.Artist(sql.FieldLT(FieldExtractedText, v))
}

// ExtractedTextLTE applies the LTE predicate on the "extracted_text" field.
func ExtractedTextLTE(v string) predicate.Artist {
	return predicate.Artist(sql.FieldLTE(FieldExtractedText, v))
}

// ExtractedTextContains applies the Contains predicate on the "extracted_text" field.
func ExtractedTextContains(v string) predicate.Artist {
	return predicate.Artist(sql.FieldContains(FieldExtractedText, v))
}

// ExtractedTextHasPrefix applies the HasPrefix predicate on the "extracted_text" field.
func ExtractedTextHasPrefix(v string) predicate.Artist {
	return predicate.Artist(sql.FieldHasPrefix(FieldExtractedText, v))
}

// ExtractedTextHasSuffix applies the HasSuffix predicate on the "extracted_text" field.
func ExtractedTextHasSuffix(v string) predicate.Artist {
	return predicate.Artist(sql.FieldHasSuffix(FieldExtractedText, v))
}

// ExtractedTextEqualFold applies the EqualFold predicate on the "extracted_text" field.
func ExtractedTextEqualFold(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEqualFold(FieldExtractedText, v))
}

// ExtractedTextContainsFold applies the ContainsFold predicate on the "extracted_text" field.
func ExtractedTextContainsFold(v string) predicate.Artist {
	return predicate.Artist(sql.FieldContainsFold(FieldExtractedText, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Artist {
	return predicate.Artist(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Artist {
	return predicate.Artist(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Artist {
	return predicate.Artist(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Artist {
	return predicate.Artist(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Artist {
	return predicate.Artist(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Artist {
	return predicate.Artist(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Artist {
	return predicate.Artist(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Artist {
	return predicate.Artist(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Artist {
	return predicate.Artist(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Artist {
	return predicate.Artist(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Artist {
	return predicate.Artist(sql.FieldContainsFold(FieldStatus, v))
}

// ExtractionMethodEQ applies the EQ predicate on the "extraction_method" field.
func ExtractionMethodEQ(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldExtractionMethod, v))
}

// ExtractionMethodNEQ applies the NEQ predicate on the "extraction_method" field.
func ExtractionMethodNEQ(v string) predicate.Artist {
	return predicate.Artist(sql.FieldNEQ(FieldExtractionMethod, v))
}

// ExtractionMethodIn applies the In predicate on the "extraction_method" field.
func ExtractionMethodIn(vs ...string) predicate.Artist {
	return predicate.Artist(sql.FieldIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodNotIn applies the NotIn predicate on the "extraction_method" field.
func ExtractionMethodNotIn(vs ...string) predicate.Artist {
	return predicate.Artist(sql.FieldNotIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodGT applies the GT predicate on the "extraction_method" field.
func ExtractionMethodGT(v string) predicate.Artist {
	return predicate.Artist(sql.FieldGT(FieldExtractionMethod, v))
}

// ExtractionMethodGTE applies the GTE predicate on the "extraction_method" field.
func ExtractionMethodGTE(v string) predicate.Artist {
	return predicate.Artist(sql.FieldGTE(FieldExtractionMethod, v))
}

// ExtractionMethodLT applies the LT predicate on the "extraction_method" field.
func ExtractionMethodLT(v string) predicate.Artist {
	return predicate.Artist(sql.FieldLT(FieldExtractionMethod, v))
}

// ExtractionMethodLTE applies the LTE predicate on the "extraction_method" field.
func ExtractionMethodLTE(v string) predicate.Artist {
	return predicate.Artist(sql.FieldLTE(FieldExtractionMethod, v))
}

// ExtractionMethodContains applies the Contains predicate on the "extraction_method" field.
func ExtractionMethodContains(v string) predicate.Artist {
	return predicate.Artist(sql.FieldContains(FieldExtractionMethod, v))
}

// ExtractionMethodHasPrefix applies the HasPrefix predicate on the "extraction_method" field.
func ExtractionMethodHasPrefix(v string) predicate.Artist {
	return predicate.Artist(sql.FieldHasPrefix(FieldExtractionMethod, v))
}

// ExtractionMethodHasSuffix applies the HasSuffix predicate on the "extraction_method" field.
func ExtractionMethodHasSuffix(v string) predicate.Artist {
	return predicate.Artist(sql.FieldHasSuffix(FieldExtractionMethod, v))
}

// ExtractionMethodEqualFold applies the EqualFold predicate on the "extraction_method" field.
func ExtractionMethodEqualFold(v string) predicate.Artist {
	return predicate.Artist(sql.FieldEqualFold(FieldExtractionMethod, v))
}

// ExtractionMethodContainsFold applies the ContainsFold predicate on the "extraction_method" field.
func ExtractionMethodContainsFold(v string) predicate.Artist {
	return predicate.Artist(sql.FieldContainsFold(FieldExtractionMethod, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Artist {
	return predicate.Artist(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Artist) predicate.Artist {
	return predicate.Artist(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Artist) predicate.Artist {
	return predicate.Artist(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Artist) predicate.Artist {
	return predicate.Artist(sql.NotPredicates(p))
}
