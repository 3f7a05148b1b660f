// Command extract runs the extraction pipeline on one local document and
// prints the resulting profile as JSON, without touching a database.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/arnav-deshpande/kalakaar/internal/common"
	"github.com/arnav-deshpande/kalakaar/internal/identity"
	"github.com/arnav-deshpande/kalakaar/internal/llm"
	"github.com/arnav-deshpande/kalakaar/internal/llm/gemini"
	"github.com/arnav-deshpande/kalakaar/internal/pipeline"
	"github.com/arnav-deshpande/kalakaar/internal/textsource"
)

func main() {
	name := flag.String("name", "", "artist name override (default: derived from filename)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: extract [-name NAME] [-v] FILE")
		os.Exit(2)
	}
	path := flag.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()

	extractor := textsource.NewExtractor(textsource.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		PSM:           cfg.OCR.PSM,
	}, logger)

	var gen llm.Generator
	if cfg.LLM.APIKey != "" {
		gen = gemini.NewClient(gemini.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	}

	ctx := context.Background()
	res, err := extractor.Extract(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract: %v\n", err)
		os.Exit(1)
	}
	if len(res.Text) < pipeline.MinTextLength {
		fmt.Fprintf(os.Stderr, "extract: document yielded insufficient text (%d chars)\n", len(res.Text))
		os.Exit(1)
	}

	artistName := *name
	if artistName == "" {
		artistName = identity.ResolveName(filepath.Base(path))
	}

	assembler := pipeline.NewAssembler(extractor, gen, nil, logger)
	profile, method := assembler.Assemble(ctx, artistName, res.Text)

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
	fmt.Fprintf(os.Stderr, "method=%s text_chars=%d confidence=%.2f\n",
		method, len(res.Text), res.Confidence)
}
