package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/renotools/renovation-extractor/internal/common"
	"github.com/renotools/renovation-extractor/internal/export"
	"github.com/renotools/renovation-extractor/internal/extract"
	"github.com/renotools/renovation-extractor/internal/llm"
	"github.com/renotools/renovation-extractor/internal/llm/openai"
	"github.com/renotools/renovation-extractor/internal/pipeline"
	"github.com/renotools/renovation-extractor/internal/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg := common.LoadConfig()
	if err := cfg.ApplyFile(*configPath); err != nil {
		logger.Error("load config file", "path", *configPath, "error", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	for _, warning := range cfg.Warnings() {
		logger.Warn("config.warning", "message", warning)
	}

	openaiClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	processor := pipeline.NewProcessor(
		extract.NewDocumentExtractor(logger),
		llm.NewExtractor(openaiClient, logger),
		export.NewRenderer(logger),
		logger,
	)

	server := web.NewServer(
		cfg.Server.Addr,
		cfg.Upload.MaxUploadMB,
		cfg.LLM.APIKey != "",
		processor,
		export.NewRenderer(logger),
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("web server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Stop(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("stopped")
}
