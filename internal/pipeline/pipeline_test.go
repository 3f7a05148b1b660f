package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnav-deshpande/kalakaar/constants"
	"github.com/arnav-deshpande/kalakaar/internal/common"
	"github.com/arnav-deshpande/kalakaar/internal/entity"
	"github.com/arnav-deshpande/kalakaar/internal/textsource"
)

type fakeText struct {
	res textsource.Result
	err error
}

func (f *fakeText) Extract(_ context.Context, _ string) (textsource.Result, error) {
	return f.res, f.err
}

type fakeGen struct {
	out string
	err error
}

func (f *fakeGen) Generate(_ context.Context, _ string) (string, error) {
	return f.out, f.err
}

type memRepo struct {
	records map[uuid.UUID]*entity.ArtistRecord
}

func newMemRepo() *memRepo {
	return &memRepo{records: map[uuid.UUID]*entity.ArtistRecord{}}
}

func (m *memRepo) Create(_ context.Context, rec *entity.ArtistRecord) (*entity.ArtistRecord, error) {
	stored := *rec
	stored.ID = uuid.New()
	m.records[stored.ID] = &stored
	return &stored, nil
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ArtistRecord, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, common.NewAppError("NOT_FOUND", "artist not found", common.ErrNotFound)
	}
	copied := *rec
	return &copied, nil
}

func (m *memRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.ArtistRecord, int, error) {
	out := make([]*entity.ArtistRecord, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	return out, len(out), nil
}

func (m *memRepo) UpdateProfile(_ context.Context, id uuid.UUID, profile *entity.ArtistProfile, status constants.ExtractionStatus) (*entity.ArtistRecord, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, common.NewAppError("NOT_FOUND", "artist not found", common.ErrNotFound)
	}
	rec.Profile = profile
	rec.Status = status
	if profile != nil {
		rec.ArtistName = profile.ArtistName
	}
	copied := *rec
	return &copied, nil
}

func (m *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.records[id]; !ok {
		return common.NewAppError("NOT_FOUND", "artist not found", common.ErrNotFound)
	}
	delete(m.records, id)
	return nil
}

const docText = "Maria Garcia is a flamenco dancer from Seville. " +
	"She trained under Carmen Amaya for years. " +
	"Received the national dance award in 2019.\nContact: maria@example.com"

func TestExtractFromFileLLMPath(t *testing.T) {
	gen := &fakeGen{out: "```json\n{\"artist_name\": null, \"summary\": \"A flamenco dancer.\", \"extraction_confidence\": \"high\"}\n```"}
	repo := newMemRepo()
	a := NewAssembler(&fakeText{res: textsource.Result{Text: docText, Method: "pdf-text"}}, gen, repo, nil)

	rec, meta, err := a.ExtractFromFile(context.Background(), "/tmp/x.pdf", "maria-garcia.pdf")
	require.NoError(t, err)

	assert.Equal(t, "Maria Garcia", rec.ArtistName)
	assert.Equal(t, entity.MethodLLM, rec.Method)
	assert.Equal(t, constants.StatusCompleted, rec.Status)
	require.NotNil(t, rec.Profile)
	assert.Equal(t, "Maria Garcia", rec.Profile.ArtistName)
	require.NotNil(t, rec.Profile.Summary)
	assert.Equal(t, "A flamenco dancer.", *rec.Profile.Summary)

	assert.Equal(t, "maria-garcia.pdf", meta.Filename)
	assert.Equal(t, len(docText), meta.TextLength)
	assert.Equal(t, entity.MethodLLM, meta.Method)
}

func TestExtractFromFileFallsBackOnGenerationFailure(t *testing.T) {
	gen := &fakeGen{err: common.NewAppError("GENERATION_FAILED", "boom", common.ErrGenerationFailed)}
	repo := newMemRepo()
	a := NewAssembler(&fakeText{res: textsource.Result{Text: docText}}, gen, repo, nil)

	rec, _, err := a.ExtractFromFile(context.Background(), "/tmp/x.pdf", "maria-garcia.pdf")
	require.NoError(t, err)

	assert.Equal(t, "Maria Garcia", rec.ArtistName)
	assert.Equal(t, entity.MethodFallback, rec.Method)
	require.NotNil(t, rec.Profile.ExtractionConfidence)
	assert.Equal(t, "medium", *rec.Profile.ExtractionConfidence)
	require.NotNil(t, rec.Profile.GuruName)
	assert.Equal(t, "Carmen Amaya", *rec.Profile.GuruName)
	assert.Equal(t, []string{"maria@example.com"}, rec.Profile.ContactDetails.ContactInfo.Emails)
	require.NotEmpty(t, rec.Profile.Achievements)
}

func TestExtractFromFileNilGenerator(t *testing.T) {
	repo := newMemRepo()
	a := NewAssembler(&fakeText{res: textsource.Result{Text: docText}}, nil, repo, nil)

	rec, _, err := a.ExtractFromFile(context.Background(), "/tmp/x.pdf", "maria-garcia.pdf")
	require.NoError(t, err)
	assert.Equal(t, entity.MethodFallback, rec.Method)
	assert.Equal(t, "Maria Garcia", rec.ArtistName)
}

func TestExtractFromFileFallsBackOnGarbageResponse(t *testing.T) {
	gen := &fakeGen{out: "I am sorry, I cannot help with that."}
	repo := newMemRepo()
	a := NewAssembler(&fakeText{res: textsource.Result{Text: docText}}, gen, repo, nil)

	rec, _, err := a.ExtractFromFile(context.Background(), "/tmp/x.pdf", "maria-garcia.pdf")
	require.NoError(t, err)
	assert.Equal(t, entity.MethodFallback, rec.Method)
}

func TestExtractFromFileShortTextIsFatal(t *testing.T) {
	repo := newMemRepo()
	a := NewAssembler(&fakeText{res: textsource.Result{Text: "hi", Method: "image-ocr"}}, nil, repo, nil)
	_, _, err := a.ExtractFromFile(context.Background(), "/tmp/scan.png", "scan.png")
	assert.ErrorIs(t, err, common.ErrNoTextExtracted)
	assert.Empty(t, repo.records)
}

func TestExtractFromFileTextFailureIsFatal(t *testing.T) {
	a := NewAssembler(&fakeText{err: common.NewAppError("NO_TEXT", "too short", common.ErrNoTextExtracted)}, nil, newMemRepo(), nil)
	_, _, err := a.ExtractFromFile(context.Background(), "/tmp/x.pdf", "maria-garcia.pdf")
	assert.ErrorIs(t, err, common.ErrNoTextExtracted)
}

func TestAssembleNeverLosesName(t *testing.T) {
	// model returns a wrong name; assembler must override it
	gen := &fakeGen{out: `{"artist_name": "Wrong Person"}`}
	a := NewAssembler(&fakeText{}, gen, newMemRepo(), nil)
	p, method := a.Assemble(context.Background(), "Maria Garcia", docText)
	assert.Equal(t, "Maria Garcia", p.ArtistName)
	assert.Equal(t, entity.MethodLLM, method)
}

func seedRecord(t *testing.T, repo *memRepo) *entity.ArtistRecord {
	t.Helper()
	summary := "A flamenco dancer."
	rec, err := repo.Create(context.Background(), &entity.ArtistRecord{
		ArtistName:       "Maria Garcia",
		OriginalFilename: "maria-garcia.pdf",
		ExtractedText:    docText,
		Status:           constants.StatusCompleted,
		Method:           entity.MethodLLM,
		Profile: &entity.ArtistProfile{
			ArtistName: "Maria Garcia",
			Summary:    &summary,
		},
	})
	require.NoError(t, err)
	return rec
}

func TestEnhanceSuccess(t *testing.T) {
	repo := newMemRepo()
	rec := seedRecord(t, repo)

	gen := &fakeGen{out: "```json\n{\"artist_name\": \"x\", \"guru_name\": \"Carmen Amaya\", \"summary\": \"A celebrated flamenco dancer.\"}\n```"}
	a := NewAssembler(&fakeText{}, gen, repo, nil)

	out, err := a.Enhance(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, constants.StatusEnhanced, out.Record.Status)
	assert.Equal(t, "Maria Garcia", out.Record.Profile.ArtistName)
	require.NotNil(t, out.Record.Profile.GuruName)
	assert.Equal(t, "Carmen Amaya", *out.Record.Profile.GuruName)
}

func TestEnhanceGatewayFailureLeavesRecordUntouched(t *testing.T) {
	repo := newMemRepo()
	rec := seedRecord(t, repo)

	gen := &fakeGen{err: common.NewAppError("GENERATION_FAILED", "down", common.ErrGenerationFailed)}
	a := NewAssembler(&fakeText{}, gen, repo, nil)

	out, err := a.Enhance(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Contains(t, out.Detail, "enhancement unavailable")

	stored, err := repo.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCompleted, stored.Status)
	assert.Equal(t, "A flamenco dancer.", *stored.Profile.Summary)
	assert.Nil(t, stored.Profile.AdditionalNotes)
}

func TestEnhanceInvalidCandidateDiscarded(t *testing.T) {
	repo := newMemRepo()
	rec := seedRecord(t, repo)

	gen := &fakeGen{out: `{"artist_name": "x", "extraction_confidence": "certain"}`}
	a := NewAssembler(&fakeText{}, gen, repo, nil)

	out, err := a.Enhance(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.False(t, out.Success)

	stored, err := repo.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCompleted, stored.Status)
	assert.Equal(t, "A flamenco dancer.", *stored.Profile.Summary)
	require.NotNil(t, stored.Profile.AdditionalNotes)
	assert.Contains(t, *stored.Profile.AdditionalNotes, "enhancement attempt discarded")
}

func TestEnhanceUnknownID(t *testing.T) {
	a := NewAssembler(&fakeText{}, nil, newMemRepo(), nil)
	_, err := a.Enhance(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
