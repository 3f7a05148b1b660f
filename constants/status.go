package constants

// ExtractionStatus is the canonical status for stored artist records.
type ExtractionStatus string

// Stable values (store these exact strings in DB).
const (
	StatusCompleted ExtractionStatus = "COMPLETED" // initial extraction finished
	StatusEnhanced  ExtractionStatus = "ENHANCED"  // refinement pass accepted
)

// Confidence labels reported by the extraction paths.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)
