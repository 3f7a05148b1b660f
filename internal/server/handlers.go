package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arnav-deshpande/kalakaar/constants"
	"github.com/arnav-deshpande/kalakaar/internal/common"
	"github.com/arnav-deshpande/kalakaar/internal/entity"
	"github.com/arnav-deshpande/kalakaar/internal/pipeline"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

type extractResponse struct {
	Artist *entity.ArtistRecord     `json:"artist"`
	Meta   *pipeline.ExtractionMeta `json:"meta"`
}

type listResponse struct {
	Artists []*entity.ArtistRecord `json:"artists"`
	Total   int                    `json:"total"`
	Limit   int                    `json:"limit"`
	Offset  int                    `json:"offset"`
}

// handleExtract accepts a multipart upload, stages it on disk, and runs
// the extraction pipeline.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, common.NewAppError("INVALID_INPUT",
			"multipart field 'file' is required or exceeds the size limit", common.ErrInvalidInput))
		return
	}
	defer func() { _ = file.Close() }()

	if !constants.IsAllowedFilename(header.Filename) {
		writeError(w, common.NewAppError("UNSUPPORTED_FORMAT",
			fmt.Sprintf("file type not allowed: %s", header.Filename), common.ErrUnsupportedFormat))
		return
	}
	if header.Size > s.cfg.Upload.MaxFileSize {
		writeError(w, common.NewAppError("INVALID_INPUT",
			fmt.Sprintf("file too large, maximum is %d MB", s.cfg.Upload.MaxFileSize>>20),
			common.ErrInvalidInput))
		return
	}

	path, err := s.stageUpload(file, header.Filename)
	if err != nil {
		s.logger.Error("upload.stage_failed", "filename", header.Filename, "error", err)
		writeError(w, common.NewAppError("INTERNAL", "failed to store upload", common.ErrInternal))
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			s.logger.Warn("upload.cleanup_failed", "path", path, "error", err)
		}
	}()

	rec, meta, err := s.assembler.ExtractFromFile(r.Context(), path, header.Filename)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordExtraction(serviceName, "none", "error", time.Since(start))
		}
		writeError(w, err)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordExtraction(serviceName, meta.Method, "ok", time.Since(start))
	}

	writeJSON(w, http.StatusCreated, extractResponse{Artist: rec, Meta: meta})
}

// stageUpload writes the incoming file under the upload directory with a
// timestamp prefix so repeated uploads of the same name never collide.
func (s *Server) stageUpload(src io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(s.cfg.Upload.Dir, 0o755); err != nil {
		return "", err
	}
	name := time.Now().Format("20060102_150405") + "_" + filepath.Base(filename)
	path := filepath.Join(s.cfg.Upload.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	limit := queryInt(r, "limit", defaultPageLimit)
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	offset := queryInt(r, "offset", 0)
	if page := queryInt(r, "page", 0); page > 0 {
		offset = (page - 1) * limit
	}
	if offset < 0 {
		offset = 0
	}

	artists, total, err := s.repo.List(r.Context(), search, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{
		Artists: artists,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rec, err := s.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.repo.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	out, err := s.assembler.Enhance(r.Context(), id)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordEnhancement(serviceName, "error")
		}
		writeError(w, err)
		return
	}
	if s.metrics != nil {
		outcome := "rejected"
		if out.Success {
			outcome = "ok"
		}
		s.metrics.RecordEnhancement(serviceName, outcome)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.exporter.ExportArtistsXLSX(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=artists_%s.xlsx", time.Now().Format("20060102")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func pathID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.NewAppError("INVALID_INPUT",
			"invalid artist id", common.ErrInvalidInput)
	}
	return id, nil
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
