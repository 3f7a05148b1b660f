package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnav-deshpande/kalakaar/constants"
	"github.com/arnav-deshpande/kalakaar/internal/common"
	"github.com/arnav-deshpande/kalakaar/internal/entity"
	"github.com/arnav-deshpande/kalakaar/internal/export"
	"github.com/arnav-deshpande/kalakaar/internal/pipeline"
	"github.com/arnav-deshpande/kalakaar/internal/textsource"
)

type fakeText struct {
	res textsource.Result
	err error
}

func (f *fakeText) Extract(_ context.Context, _ string) (textsource.Result, error) {
	return f.res, f.err
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
	return rec, nil
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
	return rec, nil
}

func (m *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.records[id]; !ok {
		return common.NewAppError("NOT_FOUND", "artist not found", common.ErrNotFound)
	}
	delete(m.records, id)
	return nil
}

func newTestServer(t *testing.T, repo *memRepo, text pipeline.TextExtractor) *Server {
	t.Helper()
	cfg := common.Config{}
	cfg.Server.Addr = ":0"
	cfg.Upload.Dir = t.TempDir()
	cfg.Upload.MaxFileSize = constants.MaxFileSize

	assembler := pipeline.NewAssembler(text, nil, repo, nil)
	exporter := export.NewService(repo, nil)
	return New(cfg, assembler, repo, exporter, nil, nil, nil)
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

const docText = "Jane Doe is a vocalist of the Jaipur gharana. Trained under Ustad Ali Khan. Contact: jane@example.com"

func TestExtractEndpoint(t *testing.T) {
	repo := newMemRepo()
	srv := newTestServer(t, repo, &fakeText{res: textsource.Result{Text: docText, Method: "pdf-text"}})

	body, contentType := multipartUpload(t, "jane_doe.pdf", []byte("%PDF-1.4 fake"))
	req := httptest.NewRequest(http.MethodPost, "/api/extract", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp extractResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Jane Doe", resp.Artist.ArtistName)
	assert.Equal(t, entity.MethodFallback, resp.Artist.Method)
	assert.Equal(t, "jane_doe.pdf", resp.Meta.Filename)
	assert.Equal(t, len(docText), resp.Meta.TextLength)
	assert.Len(t, repo.records, 1)
}

func TestExtractRejectsBadExtension(t *testing.T) {
	srv := newTestServer(t, newMemRepo(), &fakeText{})

	body, contentType := multipartUpload(t, "notes.txt", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/api/extract", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "UNSUPPORTED_FORMAT")
}

func TestExtractNoTextIs422(t *testing.T) {
	srv := newTestServer(t, newMemRepo(), &fakeText{
		err: common.NewAppError("NO_TEXT", "document yielded insufficient text", common.ErrNoTextExtracted),
	})

	body, contentType := multipartUpload(t, "blank.png", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/extract", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestExtractRemovesStagedUpload(t *testing.T) {
	repo := newMemRepo()
	srv := newTestServer(t, repo, &fakeText{res: textsource.Result{Text: docText, Method: "pdf-text"}})

	body, contentType := multipartUpload(t, "jane_doe.pdf", []byte("%PDF-1.4 fake"))
	req := httptest.NewRequest(http.MethodPost, "/api/extract", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	entries, err := os.ReadDir(srv.cfg.Upload.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtractRemovesStagedUploadOnFailure(t *testing.T) {
	srv := newTestServer(t, newMemRepo(), &fakeText{
		err: common.NewAppError("NO_TEXT", "document yielded insufficient text", common.ErrNoTextExtracted),
	})

	body, contentType := multipartUpload(t, "blank.png", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/extract", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	entries, err := os.ReadDir(srv.cfg.Upload.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetArtist(t *testing.T) {
	repo := newMemRepo()
	rec, err := repo.Create(context.Background(), &entity.ArtistRecord{
		ArtistName: "Jane Doe",
		Status:     constants.StatusCompleted,
		Profile:    &entity.ArtistProfile{ArtistName: "Jane Doe"},
	})
	require.NoError(t, err)

	srv := newTestServer(t, repo, &fakeText{})

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/artists/"+rec.ID.String(), nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var got entity.ArtistRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Jane Doe", got.ArtistName)
}

func TestGetArtistNotFound(t *testing.T) {
	srv := newTestServer(t, newMemRepo(), &fakeText{})
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/artists/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetArtistBadID(t *testing.T) {
	srv := newTestServer(t, newMemRepo(), &fakeText{})
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/artists/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListArtists(t *testing.T) {
	repo := newMemRepo()
	for _, name := range []string{"Jane Doe", "Ravi Shankar"} {
		_, err := repo.Create(context.Background(), &entity.ArtistRecord{
			ArtistName: name,
			Status:     constants.StatusCompleted,
		})
		require.NoError(t, err)
	}

	srv := newTestServer(t, repo, &fakeText{})
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/artists/?limit=10", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Artists, 2)
	assert.Equal(t, 10, resp.Limit)
}

func TestDeleteArtist(t *testing.T) {
	repo := newMemRepo()
	rec, err := repo.Create(context.Background(), &entity.ArtistRecord{ArtistName: "Jane Doe"})
	require.NoError(t, err)

	srv := newTestServer(t, repo, &fakeText{})
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/artists/"+rec.ID.String(), nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, repo.records)
}

func TestEnhanceWithoutBackend(t *testing.T) {
	repo := newMemRepo()
	rec, err := repo.Create(context.Background(), &entity.ArtistRecord{
		ArtistName: "Jane Doe",
		Profile:    &entity.ArtistProfile{ArtistName: "Jane Doe"},
		Status:     constants.StatusCompleted,
	})
	require.NoError(t, err)

	srv := newTestServer(t, repo, &fakeText{})
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/artists/"+rec.ID.String()+"/enhance", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var out entity.EnhancementOutcome
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.False(t, out.Success)
	assert.Contains(t, out.Detail, "enhancement unavailable")
}

func TestExportEndpoint(t *testing.T) {
	repo := newMemRepo()
	_, err := repo.Create(context.Background(), &entity.ArtistRecord{
		ArtistName: "Jane Doe",
		Status:     constants.StatusCompleted,
		Profile:    &entity.ArtistProfile{ArtistName: "Jane Doe"},
	})
	require.NoError(t, err)

	srv := newTestServer(t, repo, &fakeText{})
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/artists/export", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Body.Bytes())
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, newMemRepo(), &fakeText{})
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
