package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/joseph-ayodele/docflow/gen/proto/docflow/v1"
	"github.com/joseph-ayodele/docflow/internal/async"
	"github.com/joseph-ayodele/docflow/internal/common"
	"github.com/joseph-ayodele/docflow/internal/export"
	"github.com/joseph-ayodele/docflow/internal/llm/ollama"
	"github.com/joseph-ayodele/docflow/internal/pipeline"
	"github.com/joseph-ayodele/docflow/internal/raster"
	repo "github.com/joseph-ayodele/docflow/internal/repository"
	svc "github.com/joseph-ayodele/docflow/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	renderer := raster.NewRenderer(raster.Config{
		PDFRenderer:   cfg.Raster.PDFRenderer,
		MaxImageWidth: cfg.Raster.MaxImageWidth,
	}, logger)

	llmClient := ollama.NewClient(ollama.Config{
		BaseURL: cfg.Ollama.BaseURL,
		Model:   cfg.Ollama.Model,
		Timeout: cfg.Ollama.Timeout,
	}, renderer, logger)

	// Connectivity probe only; a cold backend is an operator problem,
	// not a startup failure.
	if err := llmClient.Ping(ctx); err != nil {
		logger.Warn("inference backend unreachable at startup", "base_url", cfg.Ollama.BaseURL, "error", err)
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	contractsRepo := repo.NewContractRepository(entc, logger)

	processor := pipeline.NewProcessor(docsRepo, invoicesRepo, contractsRepo, llmClient, logger)

	queue := async.NewProcessorQueue(processor, docsRepo, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithAttempts(cfg.Pipeline.MaxAttempts),
		async.WithAttemptTimeout(cfg.Pipeline.AttemptTimeout),
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	documentService := svc.NewDocumentService(docsRepo, invoicesRepo, contractsRepo, queue, logger)
	v1.RegisterDocumentServiceServer(grpcServer, documentService)

	exportService := export.NewService(docsRepo, invoicesRepo, contractsRepo, logger)
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportService, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("docflowd listening", "addr", cfg.Server.GRPCAddr, "model", cfg.Ollama.Model)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
