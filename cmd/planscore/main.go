package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/seojun-park/planscore/gen/proto/planscore/v1"
	"github.com/seojun-park/planscore/internal/async"
	"github.com/seojun-park/planscore/internal/common"
	"github.com/seojun-park/planscore/internal/export"
	"github.com/seojun-park/planscore/internal/ingest"
	"github.com/seojun-park/planscore/internal/llm/gemini"
	"github.com/seojun-park/planscore/internal/pipeline"
	repo "github.com/seojun-park/planscore/internal/repository"
	"github.com/seojun-park/planscore/internal/rubric"
	svc "github.com/seojun-park/planscore/internal/server"
	"github.com/seojun-park/planscore/internal/storage"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := rubric.Load()
	if err != nil {
		logger.Error("failed to load rubric", "error", err)
		os.Exit(1)
	}

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	// Ping DB to ensure connectivity
	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewS3Store(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to set up object storage", "error", err)
		os.Exit(1)
	}

	genClient, err := gemini.NewClient(ctx, gemini.Config{
		ProjectID:     cfg.Gemini.ProjectID,
		Region:        cfg.Gemini.Region,
		AnalysisModel: cfg.Gemini.AnalysisModel,
		ReportModel:   cfg.Gemini.ReportModel,
		CallTimeout:   cfg.Gemini.CallTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to set up model client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := genClient.Close(); err != nil {
			logger.Warn("model client close failed", "error", err)
		}
	}()

	plansRepo := repo.NewPlanRepository(entc, logger)
	jobsRepo := repo.NewJobRepository(entc, logger)
	reportsRepo := repo.NewReportRepository(entc, logger)

	evaluator := pipeline.NewEvaluator(logger, pipeline.Config{
		FanoutTimeout: cfg.Evaluate.FanoutTimeout,
		MaxConcurrent: cfg.Evaluate.MaxConcurrent,
		ModelName:     cfg.Gemini.AnalysisModel,
	}, r, genClient, store, jobsRepo, reportsRepo)

	queue := async.NewEvaluatorQueue(evaluator, logger,
		async.WithWorkers(cfg.Evaluate.Workers),
		async.WithQueueSize(cfg.Evaluate.QueueSize),
		async.WithProcessTimeout(cfg.Evaluate.FanoutTimeout*2),
	)

	// gRPC server
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	inspector := ingest.NewInspector(logger)
	plansService := svc.NewPlanServer(plansRepo, store, inspector, logger)
	v1.RegisterPlansServiceServer(grpcServer, plansService)

	evalService := svc.NewEvaluationServer(evaluator, queue, plansRepo, jobsRepo, reportsRepo, logger)
	v1.RegisterEvaluationsServiceServer(grpcServer, evalService)

	exportService := svc.NewExportServer(export.NewService(reportsRepo, r, logger), logger)
	v1.RegisterExportServiceServer(grpcServer, exportService)

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	// Set the service as serving (empty string means overall server health)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	logger.Info("planscore listening", "addr", cfg.Server.GRPCAddr)
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
