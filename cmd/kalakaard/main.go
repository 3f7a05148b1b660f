package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/arnav-deshpande/kalakaar/internal/common"
	"github.com/arnav-deshpande/kalakaar/internal/export"
	"github.com/arnav-deshpande/kalakaar/internal/llm"
	"github.com/arnav-deshpande/kalakaar/internal/llm/gemini"
	"github.com/arnav-deshpande/kalakaar/internal/observability/metrics"
	"github.com/arnav-deshpande/kalakaar/internal/pipeline"
	"github.com/arnav-deshpande/kalakaar/internal/repository"
	"github.com/arnav-deshpande/kalakaar/internal/server"
	"github.com/arnav-deshpande/kalakaar/internal/textsource"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("config invalid", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entClient, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("db open failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entClient, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.HealthTimeout); err != nil {
		logger.Error("db health failed", "error", err)
		os.Exit(1)
	}
	logger.Info("db health ok")

	repo := repository.NewArtistRepository(entClient, logger)

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
	} else {
		logger.Warn("GEMINI_API_KEY not set; extraction will use pattern matching only")
	}

	assembler := pipeline.NewAssembler(extractor, gen, repo, logger)
	exporter := export.NewService(repo, logger)
	m := metrics.New("kalakaar")

	srv := server.New(*cfg, assembler, repo, exporter, m, pool, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
	logger.Info("stopped")
}
