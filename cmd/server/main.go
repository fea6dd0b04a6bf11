package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ogurasousui/restaurant-payroll/internal/adapters/repository"
	"github.com/ogurasousui/restaurant-payroll/internal/core/employee"
	"github.com/ogurasousui/restaurant-payroll/internal/platform/config"
	"github.com/ogurasousui/restaurant-payroll/internal/platform/logging"
	"github.com/ogurasousui/restaurant-payroll/internal/platform/server"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	repo, closeRepo, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to open repository", zap.Error(err))
	}
	defer closeRepo()

	payrollSvc := employee.NewService(repo, nil, logger)
	if err := payrollSvc.Bootstrap(ctx); err != nil {
		logger.Fatal("failed to prepare schema", zap.Error(err))
	}

	grpcServer := server.New(cfg.Server.ListenAddr, payrollSvc, logger)

	logger.Info("gRPC server listening", zap.String("addr", cfg.Server.ListenAddr))

	if err := grpcServer.Run(ctx); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}
