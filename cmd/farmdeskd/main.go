package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/agrosuivi/farmdesk/constants"
	farmdeskpb "github.com/agrosuivi/farmdesk/gen/proto/farmdesk/v1"
	"github.com/agrosuivi/farmdesk/internal/ai"
	"github.com/agrosuivi/farmdesk/internal/ai/openai"
	"github.com/agrosuivi/farmdesk/internal/common"
	"github.com/agrosuivi/farmdesk/internal/entity"
	"github.com/agrosuivi/farmdesk/internal/export"
	"github.com/agrosuivi/farmdesk/internal/fetch"
	"github.com/agrosuivi/farmdesk/internal/hybrid"
	"github.com/agrosuivi/farmdesk/internal/jobs"
	repo "github.com/agrosuivi/farmdesk/internal/repository"
	svc "github.com/agrosuivi/farmdesk/internal/server"
	"github.com/agrosuivi/farmdesk/internal/syncform"
)

func main() {
	_ = godotenv.Load()

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

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	farmsRepo := repo.NewFarmRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewJobRepository(entc, logger)
	resultsRepo := repo.NewResultRepository(entc, logger)
	editsRepo := repo.NewReviewEditRepository(entc, logger)
	formsRepo := repo.NewFormStateRepository(entc, logger)
	notifier := repo.NewJobNotifier(pool, logger)

	// AI is optional: without a key the pipeline runs pattern-only and
	// degrades when escalation would be needed
	var aiExtractor ai.Extractor
	if cfg.AI.APIKey != "" {
		aiExtractor = openai.NewClient(openai.Config{
			Model:       cfg.AI.Model,
			APIKey:      cfg.AI.APIKey,
			BaseURL:     cfg.AI.BaseURL,
			Temperature: cfg.AI.Temperature,
			Timeout:     cfg.AI.Timeout,
			Lenient:     true,
		}, logger)
	} else {
		logger.Warn("OPENAI_API_KEY not set, running pattern-only")
	}

	orchestrator := hybrid.New(nil, aiExtractor, logger)
	fetcher := fetch.New()

	coordinator := syncform.NewCoordinator(resultsRepo, editsRepo, formsRepo, logger,
		syncform.WithDebounceWindow(cfg.Sync.DebounceWindow))

	extractOpts := hybrid.Options{
		ConfidenceThreshold:     cfg.Extraction.ConfidenceThreshold,
		PriorityFieldBar:        cfg.Extraction.PriorityFieldBar,
		PriorityFields:          cfg.Extraction.PriorityFields,
		UseAIForNarrativeFields: aiExtractor != nil,
	}
	manager := jobs.NewManager(jobsRepo, resultsRepo, fetcher, orchestrator, cfg.Jobs, extractOpts, logger,
		jobs.WithCompletionHook(func(job entity.ProcessingJob) {
			notifier.Publish(context.Background(), repo.JobEvent{
				JobID:      job.ID,
				DocumentID: job.DocumentID,
				FarmID:     job.FarmID,
				Status:     job.Status,
			})
			coordinator.Trigger(job.FarmID)
		}))

	runner := jobs.NewRunner(manager, logger,
		jobs.WithWorkers(cfg.Jobs.Workers),
		jobs.WithPollInterval(cfg.Jobs.PollInterval))
	runner.Start(ctx)

	// react to jobs finished by other instances
	go func() {
		if err := notifier.Listen(ctx, func(ev repo.JobEvent) {
			if ev.Status == constants.JobStatusCompleted {
				coordinator.Trigger(ev.FarmID)
			}
		}); err != nil && ctx.Err() == nil {
			logger.Error("job event listener stopped", "error", err)
		}
	}()

	exporter := export.NewService(farmsRepo, docsRepo, formsRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.RequestLogger(logger)))

	farmdeskpb.RegisterFarmsServiceServer(grpcServer, svc.NewFarmServer(farmsRepo, exporter, logger))
	farmdeskpb.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentServer(docsRepo, farmsRepo, fetcher, logger))
	farmdeskpb.RegisterExtractionServiceServer(grpcServer, svc.NewExtractionServer(manager, coordinator, docsRepo, jobsRepo, resultsRepo, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("farmdesk listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	runner.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}
