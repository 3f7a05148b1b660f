// Package textsource turns uploaded documents into plain text. PDFs and
// DOCX files are read from their embedded text layer; images go through
// tesseract.
package textsource

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/arnav-deshpande/kalakaar/constants"
	"github.com/arnav-deshpande/kalakaar/internal/common"
)

type Config struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"
	TessdataDir   string
	PSM           int // e.g., 6 is good for uniform block of text
}

type Result struct {
	Text       string
	Pages      int
	SourceType string // constants.TEXT | constants.IMAGE
	Method     string // "pdf-text" | "docx-text" | "image-ocr"
	Confidence float32
	Duration   time.Duration
	Warnings   []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// NewExtractorWithRunner is used by tests to substitute the exec layer.
func NewExtractorWithRunner(cfg Config, runner Runner, logger *slog.Logger) *Extractor {
	e := NewExtractor(cfg, logger)
	e.runner = runner
	return e
}

// Extract picks a strategy based on file extension. It reports whatever
// text the document yields; the caller decides whether that is enough to
// work with.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("textsource.extract.start", "path", path, "ext", ext)

	var res Result
	var err error
	switch constants.MapExtToFormat(ext) {
	case constants.TEXT:
		if ext == "pdf" {
			res, err = e.extractPDF(ctx, path)
		} else {
			res, err = e.extractDOCX(ctx, path)
		}
	case constants.IMAGE:
		res, err = e.extractImage(ctx, path)
	default:
		e.logger.Error("textsource.extract.unsupported", "extension", ext)
		return Result{}, common.NewAppError("UNSUPPORTED_FORMAT",
			"unsupported file extension: "+ext, common.ErrUnsupportedFormat)
	}
	res.Duration = time.Since(start)
	if err != nil {
		return res, err
	}

	e.logger.Info("textsource.extract.done",
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"chars", len(res.Text),
		"confidence", res.Confidence,
		"elapsed_ms", res.Duration.Milliseconds())
	return res, nil
}
