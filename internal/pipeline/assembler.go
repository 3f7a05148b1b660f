// Package pipeline orchestrates one extraction: resolve the artist name
// from the filename, acquire text, attempt generation, fall back to
// pattern matching, validate, persist.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/arnav-deshpande/kalakaar/constants"
	"github.com/arnav-deshpande/kalakaar/internal/common"
	"github.com/arnav-deshpande/kalakaar/internal/entity"
	"github.com/arnav-deshpande/kalakaar/internal/fallback"
	"github.com/arnav-deshpande/kalakaar/internal/identity"
	"github.com/arnav-deshpande/kalakaar/internal/llm"
	"github.com/arnav-deshpande/kalakaar/internal/repository"
	"github.com/arnav-deshpande/kalakaar/internal/textsource"
)

// TextExtractor is what the assembler needs from the textsource layer.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (textsource.Result, error)
}

// PreviewLength bounds the raw-text preview returned with extraction
// results.
const PreviewLength = 500

// MinTextLength is the minimum number of characters a document must yield
// before profile extraction is attempted.
const MinTextLength = 10

// ExtractionMeta is the diagnostic envelope returned alongside a new
// record.
type ExtractionMeta struct {
	Filename    string `json:"filename"`
	TextLength  int    `json:"text_length"`
	TextPreview string `json:"text_preview"`
	Method      string `json:"extraction_method"`
}

type Assembler struct {
	text   TextExtractor
	gen    llm.Generator // nil means no backend configured
	repo   repository.ArtistRepository
	logger *slog.Logger
}

func NewAssembler(text TextExtractor, gen llm.Generator, repo repository.ArtistRepository, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{text: text, gen: gen, repo: repo, logger: logger}
}

// ExtractFromFile runs the full pipeline for one uploaded document and
// persists the result. The only failures that surface are unsupported
// format and insufficient text; everything after text acquisition
// degrades to a best-effort record.
func (a *Assembler) ExtractFromFile(ctx context.Context, path, originalFilename string) (*entity.ArtistRecord, *ExtractionMeta, error) {
	start := time.Now()
	name := identity.ResolveName(originalFilename)
	a.logger.Info("pipeline.extract.start",
		"filename", originalFilename, "artist_name", name)

	res, err := a.text.Extract(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	if len(res.Text) < MinTextLength {
		a.logger.Warn("pipeline.extract.too_short",
			"filename", originalFilename, "method", res.Method, "chars", len(res.Text))
		return nil, nil, common.NewAppError("NO_TEXT",
			"document yielded insufficient text", common.ErrNoTextExtracted)
	}

	profile, method := a.Assemble(ctx, name, res.Text)

	rec, err := a.repo.Create(ctx, &entity.ArtistRecord{
		ArtistName:       profile.ArtistName,
		OriginalFilename: originalFilename,
		ExtractedText:    res.Text,
		Status:           constants.StatusCompleted,
		Method:           method,
		Profile:          profile,
	})
	if err != nil {
		return nil, nil, err
	}

	a.logger.Info("pipeline.extract.done",
		"artist_id", rec.ID,
		"artist_name", rec.ArtistName,
		"method", method,
		"text_len", len(res.Text),
		"elapsed_ms", time.Since(start).Milliseconds())

	return rec, &ExtractionMeta{
		Filename:    originalFilename,
		TextLength:  len(res.Text),
		TextPreview: preview(res.Text),
		Method:      method,
	}, nil
}

// Assemble builds a profile for name from text: one generation attempt,
// then the deterministic fallback. It cannot fail, and the returned
// profile always carries the canonical name.
func (a *Assembler) Assemble(ctx context.Context, name, text string) (*entity.ArtistProfile, string) {
	profile, err := a.generateProfile(ctx, name, text)
	if err != nil {
		a.logger.Warn("pipeline.assemble.fallback", "artist_name", name, "reason", err)
		profile = fallback.BuildProfile(name, text)
		profile.ArtistName = name
		return profile, entity.MethodFallback
	}
	profile.ArtistName = name
	return profile, entity.MethodLLM
}

func (a *Assembler) generateProfile(ctx context.Context, name, text string) (*entity.ArtistProfile, error) {
	raw, err := generate(ctx, a.gen, llm.BuildInitialPrompt(name, text))
	if err != nil {
		return nil, err
	}
	payload, err := llm.ExtractJSONPayload(raw)
	if err != nil {
		return nil, err
	}
	return llm.DecodeProfile(payload, name)
}

func preview(text string) string {
	if len(text) > PreviewLength {
		return text[:PreviewLength] + "..."
	}
	return text
}
