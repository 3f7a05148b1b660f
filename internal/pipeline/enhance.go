package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/arnav-deshpande/kalakaar/constants"
	"github.com/arnav-deshpande/kalakaar/internal/common"
	"github.com/arnav-deshpande/kalakaar/internal/entity"
	"github.com/arnav-deshpande/kalakaar/internal/llm"
)

func generate(ctx context.Context, gen llm.Generator, prompt string) (string, error) {
	if gen == nil {
		return "", common.NewAppError("SERVICE_UNAVAILABLE",
			"no generation backend configured", common.ErrServiceUnavailable)
	}
	return gen.Generate(ctx, prompt)
}

// Enhance re-prompts the model with the stored profile and the original
// text. There is no fallback target here: a gateway failure is reported
// without touching the stored record; an invalid candidate is discarded
// and the failure noted on the record's additional_notes.
func (a *Assembler) Enhance(ctx context.Context, id uuid.UUID) (*entity.EnhancementOutcome, error) {
	start := time.Now()
	rec, err := a.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.logger.Info("pipeline.enhance.start", "artist_id", id, "artist_name", rec.ArtistName)

	prompt := llm.BuildRefinementPrompt(rec.ArtistName, rec.Profile, rec.ExtractedText)
	raw, err := generate(ctx, a.gen, prompt)
	if err != nil {
		a.logger.Warn("pipeline.enhance.unavailable", "artist_id", id, "reason", err)
		return &entity.EnhancementOutcome{
			Success: false,
			Detail:  "enhancement unavailable: generation backend failed",
			Record:  rec,
		}, nil
	}

	candidate, err := decodeCandidate(raw, rec.ArtistName)
	if err != nil {
		a.logger.Warn("pipeline.enhance.rejected", "artist_id", id, "reason", err)
		noted := noteFailure(rec.Profile, err)
		updated, uerr := a.repo.UpdateProfile(ctx, id, noted, rec.Status)
		if uerr != nil {
			return nil, uerr
		}
		return &entity.EnhancementOutcome{
			Success: false,
			Detail:  "enhanced candidate failed validation; previous record kept",
			Record:  updated,
		}, nil
	}

	updated, err := a.repo.UpdateProfile(ctx, id, candidate, constants.StatusEnhanced)
	if err != nil {
		return nil, err
	}
	a.logger.Info("pipeline.enhance.done",
		"artist_id", id, "elapsed_ms", time.Since(start).Milliseconds())
	return &entity.EnhancementOutcome{
		Success: true,
		Record:  updated,
	}, nil
}

func decodeCandidate(raw, name string) (*entity.ArtistProfile, error) {
	payload, err := llm.ExtractJSONPayload(raw)
	if err != nil {
		return nil, err
	}
	return llm.DecodeProfile(payload, name)
}

// noteFailure appends an enhancement diagnostic to the profile's
// additional_notes without changing anything else.
func noteFailure(p *entity.ArtistProfile, cause error) *entity.ArtistProfile {
	if p == nil {
		return nil
	}
	copied := *p
	note := "enhancement attempt discarded: "
	var appErr *common.AppError
	if errors.As(cause, &appErr) {
		note += appErr.Code
	} else {
		note += cause.Error()
	}
	if copied.AdditionalNotes != nil && *copied.AdditionalNotes != "" {
		note = *copied.AdditionalNotes + "; " + note
	}
	copied.AdditionalNotes = &note
	return &copied
}
