package textsource

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/arnav-deshpande/kalakaar/constants"
	"github.com/arnav-deshpande/kalakaar/internal/common"
)

// extractDOCX pulls text runs out of word/document.xml. A .docx is a zip
// archive; paragraphs become lines, text runs inside a paragraph are
// concatenated.
func (e *Extractor) extractDOCX(_ context.Context, path string) (Result, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		e.logger.Error("textsource.docx.open_failed", "path", path, "error", err)
		return Result{SourceType: constants.TEXT},
			common.NewAppError("EXTRACTION_FAILED",
				fmt.Sprintf("failed to open DOCX archive: %v", err), common.ErrExtractionFailed)
	}
	defer func() { _ = zr.Close() }()

	var doc io.ReadCloser
	found := false
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			found = true
			doc, err = f.Open()
			break
		}
	}
	if !found {
		return Result{SourceType: constants.TEXT}, common.NewAppError("EXTRACTION_FAILED",
			"DOCX has no word/document.xml", common.ErrExtractionFailed)
	}
	if err != nil {
		e.logger.Error("textsource.docx.body_open_failed", "path", path, "error", err)
		return Result{SourceType: constants.TEXT},
			common.NewAppError("EXTRACTION_FAILED",
				fmt.Sprintf("failed to read DOCX body: %v", err), common.ErrExtractionFailed)
	}
	defer func() { _ = doc.Close() }()

	text, err := docxText(doc)
	if err != nil {
		e.logger.Error("textsource.docx.parse_failed", "path", path, "error", err)
		return Result{SourceType: constants.TEXT},
			common.NewAppError("EXTRACTION_FAILED",
				fmt.Sprintf("failed to parse DOCX body: %v", err), common.ErrExtractionFailed)
	}

	return Result{
		Text:       normalizeText(text),
		Pages:      1,
		SourceType: constants.TEXT,
		Method:     "docx-text",
		Confidence: 1.0,
	}, nil
}

func docxText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var sb strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "br", "tab":
				sb.WriteString(" ")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
