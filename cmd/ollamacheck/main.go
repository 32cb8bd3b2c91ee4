package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/docflow/internal/llm/ollama"
)

// ollamacheck probes the inference backend: reachability first, then
// whether the configured model is actually pulled.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	client := ollama.NewClient(ollama.Config{
		Model: os.Getenv("OLLAMA_MODEL"),
	}, nil, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		logger.Error("backend unreachable", "error", err)
		os.Exit(1)
	}
	logger.Info("backend reachable")

	models, err := client.ListModels(ctx)
	if err != nil {
		logger.Error("listing models failed", "error", err)
		os.Exit(1)
	}
	for _, m := range models {
		logger.Info("model available", "name", m.Name, "size_bytes", m.Size)
	}

	model := os.Getenv("OLLAMA_MODEL")
	if model == "" {
		return
	}
	ok, err := client.HasModel(ctx)
	if err != nil {
		logger.Error("model check failed", "model", model, "error", err)
		os.Exit(1)
	}
	if !ok {
		logger.Error("configured model is not pulled", "model", model)
		os.Exit(1)
	}
	logger.Info("configured model is pulled", "model", model)
}
