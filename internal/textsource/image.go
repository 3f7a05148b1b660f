package textsource

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/arnav-deshpande/kalakaar/constants"
	"github.com/arnav-deshpande/kalakaar/internal/common"
)

// tsvWordLevel marks word rows in tesseract TSV output.
const tsvWordLevel = "5"

func (e *Extractor) extractImage(ctx context.Context, path string) (Result, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	// TSV gives us words with their block/line coordinates plus per-word
	// confidence in a single pass.
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return Result{SourceType: constants.IMAGE, Warnings: []string{string(errb)}},
			common.NewAppError("EXTRACTION_FAILED",
				fmt.Sprintf("tesseract failed: %v", err), common.ErrExtractionFailed)
	}

	text, conf := assembleTSV(string(out))
	return Result{
		Text:       normalizeText(text),
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Confidence: conf,
	}, nil
}

// assembleTSV rebuilds page text from tesseract TSV rows: words on the
// same line are joined with spaces, a line break starts a new line, and a
// block break inserts a blank line. Returns the text and the mean word
// confidence in 0..1.
func assembleTSV(tsv string) (string, float32) {
	var sb strings.Builder
	var sum, n float64
	prevBlock, prevLine := "", ""

	for i, ln := range strings.Split(tsv, "\n") {
		if i == 0 || ln == "" {
			continue // header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 || cols[0] != tsvWordLevel {
			continue
		}
		word := strings.TrimSpace(cols[len(cols)-1])
		if word == "" {
			continue
		}

		// line_num resets per paragraph, so both keys are compound
		block := cols[1] + ":" + cols[2]
		line := block + ":" + cols[3] + ":" + cols[4]
		switch {
		case sb.Len() == 0:
		case block != prevBlock:
			sb.WriteString("\n\n")
		case line != prevLine:
			sb.WriteString("\n")
		default:
			sb.WriteString(" ")
		}
		sb.WriteString(word)
		prevBlock, prevLine = block, line

		if confStr := cols[10]; confStr != "" && confStr != "-1" {
			if v, err := strconv.ParseFloat(confStr, 64); err == nil {
				sum += v
				n++
			}
		}
	}

	var conf float32
	if n > 0 {
		conf = float32(sum / n / 100.0)
	}
	return sb.String(), conf
}
