package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/chartpull/portal-extractor/gen/proto/extraction/v1"
	"github.com/chartpull/portal-extractor/internal/async"
	"github.com/chartpull/portal-extractor/internal/automation"
	"github.com/chartpull/portal-extractor/internal/common"
	"github.com/chartpull/portal-extractor/internal/coverage"
	"github.com/chartpull/portal-extractor/internal/export"
	"github.com/chartpull/portal-extractor/internal/jobs"
	"github.com/chartpull/portal-extractor/internal/orchestrator"
	"github.com/chartpull/portal-extractor/internal/registry"
	repo "github.com/chartpull/portal-extractor/internal/repository"
	"github.com/chartpull/portal-extractor/internal/reuse"
	svc "github.com/chartpull/portal-extractor/internal/server"
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
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	adaptersRepo := repo.NewAdapterRepository(entc, logger)
	jobsRepo := repo.NewExtractionJobRepository(entc, logger)
	providerStores := repo.NewProviderStores(cfg.Providers, logger)
	defer providerStores.Close()

	reg := registry.NewRegistry(adaptersRepo, logger)
	jobsService := jobs.NewService(jobsRepo, reg, logger)

	engine := reuse.NewEngine(func(ctx context.Context, provider string) (reuse.SessionEvaluator, error) {
		db, err := providerStores.DB(ctx, provider)
		if err != nil {
			return nil, err
		}
		return coverage.NewEvaluator(db, logger), nil
	}, logger)

	runner := automation.NewExecRunner(cfg.Runner.ScriptsDir, logger)
	queue := async.NewRunnerQueue(jobsService, runner, logger,
		async.WithWorkers(cfg.Runner.Workers),
		async.WithQueueSize(cfg.Runner.QueueSize),
		async.WithRunTimeout(cfg.Runner.RunTimeout),
	)

	orch := orchestrator.NewService(engine, jobsService, queue, logger)
	exporter := export.NewService(jobsRepo, cfg.Export.ResultsDir, logger)

	v1.RegisterExtractionJobsServiceServer(grpcServer, svc.NewExtractionJobsService(orch, jobsService, exporter, logger))
	v1.RegisterReuseServiceServer(grpcServer, svc.NewReuseService(engine, logger))
	v1.RegisterAdaptersServiceServer(grpcServer, svc.NewAdaptersService(reg, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("portal-extractor listening", "addr", addr)
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
