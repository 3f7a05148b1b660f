package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/arnav-deshpande/kalakaar/constants"
)

// SocialMedia holds per-platform handles or URLs. All ten keys are always
// serialized, null when absent, so consumers see a stable shape.
type SocialMedia struct {
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
	Twitter   *string `json:"twitter"`
	YouTube   *string `json:"youtube"`
	LinkedIn  *string `json:"linkedin"`
	Spotify   *string `json:"spotify"`
	TikTok    *string `json:"tiktok"`
	Snapchat  *string `json:"snapchat"`
	Discord   *string `json:"discord"`
	Other     *string `json:"other"`
}

// ContactInfo carries phone/email lists plus the single primary values kept
// for older consumers. Pointers so that "not found" survives a round trip
// through JSON as null rather than collapsing into an empty string.
type ContactInfo struct {
	PhoneNumbers []string `json:"phone_numbers"`
	Emails       []string `json:"emails"`
	Website      *string  `json:"website"`
	Phone        *string  `json:"phone"`
	Email        *string  `json:"email"`
}

// Address is the postal address block. The fallback path only ever fills
// FullAddress.
type Address struct {
	FullAddress *string `json:"full_address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Country     *string `json:"country"`
}

// ContactDetails groups everything reachable about the artist.
type ContactDetails struct {
	SocialMedia SocialMedia `json:"social_media"`
	ContactInfo ContactInfo `json:"contact_info"`
	Address     *Address    `json:"address"`
}

// GharanaDetails describes the artist's tradition or school.
type GharanaDetails struct {
	GharanaName *string `json:"gharana_name"`
	Style       *string `json:"style"`
	Tradition   *string `json:"tradition"`
}

// Biography is the free-text life story split into sections.
type Biography struct {
	EarlyLife        *string `json:"early_life"`
	Background       *string `json:"background"`
	Education        *string `json:"education"`
	CareerHighlights *string `json:"career_highlights"`
}

// Achievement is a single recognized accomplishment.
type Achievement struct {
	Type    string  `json:"type"`
	Title   string  `json:"title"`
	Year    *string `json:"year"`
	Details *string `json:"details"`
}

// ArtistProfile is the structured payload produced by extraction. Every
// field besides ArtistName is nullable: absence means "not found", never
// "error".
type ArtistProfile struct {
	ArtistName           string          `json:"artist_name"`
	GuruName             *string         `json:"guru_name"`
	GharanaDetails       *GharanaDetails `json:"gharana_details"`
	Biography            *Biography      `json:"biography"`
	Achievements         []Achievement   `json:"achievements"`
	ContactDetails       *ContactDetails `json:"contact_details"`
	Summary              *string         `json:"summary"`
	ExtractionConfidence *string         `json:"extraction_confidence"`
	AdditionalNotes      *string         `json:"additional_notes"`
}

// ArtistRecord is a persisted profile plus its bookkeeping columns. The
// original extracted text is stored so enhancement can re-prompt with it.
type ArtistRecord struct {
	ID               uuid.UUID                  `json:"id"`
	ArtistName       string                     `json:"artist_name"`
	OriginalFilename string                     `json:"original_filename"`
	ExtractedText    string                     `json:"-"`
	Status           constants.ExtractionStatus `json:"status"`
	Method           string                     `json:"extraction_method"`
	Profile          *ArtistProfile             `json:"artist_info"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

// Extraction methods recorded on ArtistRecord.Method.
const (
	MethodLLM      = "llm"
	MethodFallback = "fallback"
)

// EnhancementOutcome reports what an enhancement attempt did. A failed
// attempt leaves the stored record untouched and carries a human-readable
// reason in Detail.
type EnhancementOutcome struct {
	Success bool          `json:"success"`
	Detail  string        `json:"detail,omitempty"`
	Record  *ArtistRecord `json:"record,omitempty"`
}

// StrPtr is a convenience for building profiles with literal values.
func StrPtr(s string) *string { return &s }
