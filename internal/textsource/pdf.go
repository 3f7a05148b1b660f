package textsource

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/arnav-deshpande/kalakaar/constants"
	"github.com/arnav-deshpande/kalakaar/internal/common"
)

func (e *Extractor) extractPDF(_ context.Context, path string) (Result, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		e.logger.Error("textsource.pdf.open_failed", "path", path, "error", err)
		return Result{SourceType: constants.TEXT}, common.NewAppError("EXTRACTION_FAILED",
			fmt.Sprintf("failed to open PDF: %v", err), common.ErrExtractionFailed)
	}
	defer func() { _ = f.Close() }()

	pages := r.NumPage()

	var sb strings.Builder
	content, err := r.GetPlainText()
	if err != nil {
		e.logger.Error("textsource.pdf.read_failed", "path", path, "error", err)
		return Result{SourceType: constants.TEXT, Pages: pages},
			common.NewAppError("EXTRACTION_FAILED",
				fmt.Sprintf("failed to read PDF text: %v", err), common.ErrExtractionFailed)
	}
	if _, err := io.Copy(&sb, content); err != nil {
		return Result{SourceType: constants.TEXT, Pages: pages},
			common.NewAppError("EXTRACTION_FAILED",
				fmt.Sprintf("failed to read PDF text: %v", err), common.ErrExtractionFailed)
	}

	return Result{
		Text:       normalizeText(sb.String()),
		Pages:      pages,
		SourceType: constants.TEXT,
		Method:     "pdf-text",
		Confidence: 1.0,
	}, nil
}
