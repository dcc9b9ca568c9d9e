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

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	receiptspb "github.com/splithouse/receipts-engine/gen/proto/receipts/v1"
	"github.com/splithouse/receipts-engine/internal/async"
	"github.com/splithouse/receipts-engine/internal/common"
	"github.com/splithouse/receipts-engine/internal/export"
	"github.com/splithouse/receipts-engine/internal/parser"
	"github.com/splithouse/receipts-engine/internal/pipeline"
	repo "github.com/splithouse/receipts-engine/internal/repository"
	svc "github.com/splithouse/receipts-engine/internal/server"
)

func main() {
	// Process-level logger; components get slog below.
	zlog, _ := zap.NewProduction()
	defer zlog.Sync()

	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		zlog.Fatal("invalid configuration", zap.Error(err))
	}

	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

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
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		zlog.Fatal("database health check failed", zap.Error(err))
	}

	householdsRepo := repo.NewHouseholdRepository(entc, logger)
	receiptsRepo := repo.NewReceiptRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)

	parseCfg := parser.DefaultConfig()
	parseCfg.MinItemPrice = cfg.Parser.MinItemPrice
	parseCfg.MaxItemPrice = cfg.Parser.MaxItemPrice
	parseCfg.DefaultConfidence = cfg.Parser.DefaultConfidence
	p := parser.New(parseCfg, logger)

	stage := pipeline.NewParseStage(
		logger,
		pipeline.Config{ReviewConfidence: cfg.Parser.ReviewConfidence},
		jobsRepo,
		receiptsRepo,
		p,
	)
	queue := async.NewParseQueue(stage, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.BufferLen),
	)

	exportSvc := export.NewService(receiptsRepo, logger)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(svc.UnaryRequestID(logger)),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	receiptspb.RegisterHouseholdsServiceServer(grpcServer, svc.NewHouseholdServer(householdsRepo, logger))
	receiptspb.RegisterParseServiceServer(grpcServer, svc.NewParseServer(jobsRepo, queue, p, logger))
	receiptspb.RegisterReceiptsServiceServer(grpcServer, svc.NewReceiptService(receiptsRepo, logger))
	receiptspb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportSvc, logger))

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		zlog.Fatal("failed to listen", zap.String("addr", addr), zap.Error(err))
	}
	zlog.Info("gRPC serving", zap.String("addr", addr))

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			zlog.Fatal("grpc serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")

	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(drainCtx)

	zlog.Info("stopped")
}
