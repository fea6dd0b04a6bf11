package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/ogurasousui/restaurant-payroll/internal/adapters/repository"
	"github.com/ogurasousui/restaurant-payroll/internal/core/employee"
	"github.com/ogurasousui/restaurant-payroll/internal/platform/config"
	"github.com/ogurasousui/restaurant-payroll/internal/platform/logging"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

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

	ctx := context.Background()
	repo, closeRepo, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to open repository", zap.Error(err))
	}
	defer closeRepo()

	svc := employee.NewService(repo, nil, logger)
	if err := run(ctx, svc, os.Stdout); err != nil {
		logger.Error("payroll run failed", zap.Error(err))
		closeRepo()
		os.Exit(1)
	}
}

func run(ctx context.Context, svc employee.UseCase, out io.Writer) error {
	if err := svc.Bootstrap(ctx); err != nil {
		return err
	}

	if err := svc.RegisterAll(ctx, sampleEmployees()); err != nil {
		return err
	}

	payslips, err := svc.CurrentPayroll(ctx)
	if err != nil {
		return err
	}

	printPayslips(out, payslips)
	return nil
}

func printPayslips(out io.Writer, payslips []employee.Payslip) {
	fmt.Fprintln(out, "Employees:")
	fmt.Fprintln(out, "-------------------------")
	for _, p := range payslips {
		fmt.Fprintln(out, p.Summary)
		fmt.Fprintf(out, "Salary: %s\n\n", p.Pay.StringFixed(2))
	}
	fmt.Fprintf(out, "Total: %s\n", employee.Total(payslips).StringFixed(2))
}

func sampleEmployees() []*employee.Employee {
	return []*employee.Employee{
		employee.NewKitchenWorker("Cook1", date(2023, time.January, 15), decimal.NewFromInt(100), 160),
		employee.NewKitchenWorker("Cook2", date(2023, time.February, 20), decimal.NewFromInt(110), 170),
		employee.NewWaiter("Waiter1", date(2023, time.March, 10), decimal.NewFromInt(80), 150, decimal.NewFromInt(5000)),
		employee.NewWaiter("Waiter2", date(2022, time.April, 5), decimal.NewFromInt(90), 160, decimal.NewFromInt(6000)),
		employee.NewManager("Manager", date(2020, time.May, 2), decimal.NewFromInt(20000), decimal.NewFromInt(10000)),
		employee.NewJuniorManager("Junior manager", date(2021, time.June, 8), decimal.NewFromInt(18000), decimal.NewFromInt(8000)),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
