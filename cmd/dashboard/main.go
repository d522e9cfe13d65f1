package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tirasundara/spending-dashboard/internal/analysis"
	"github.com/tirasundara/spending-dashboard/internal/categorizer"
	"github.com/tirasundara/spending-dashboard/internal/config"
	"github.com/tirasundara/spending-dashboard/internal/fixture"
	"github.com/tirasundara/spending-dashboard/internal/logger"
	"github.com/tirasundara/spending-dashboard/internal/normalizer"
	"github.com/tirasundara/spending-dashboard/internal/report"
	"github.com/tirasundara/spending-dashboard/internal/repository"
	"github.com/tirasundara/spending-dashboard/internal/scheduler"
	"github.com/tirasundara/spending-dashboard/internal/server"
	"github.com/tirasundara/spending-dashboard/internal/service"
)

const usage = `Usage: dashboard [report|serve|generate] [flags]

  report    build the dashboard document from a transactions CSV (default)
  serve     serve dashboards over HTTP, optionally regenerating the output on a schedule
  generate  write a synthetic transactions CSV
`

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		exitWithError(err.Error())
	}

	command := "report"
	args := os.Args[1:]
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		command, args = args[0], args[1:]
	}

	// Defaults for generate point at the file the other commands read
	if command == "generate" {
		cfg.OutputFile = cfg.InputFile
	}

	flags := flag.NewFlagSet(command, flag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}

	switch command {
	case "report", "serve", "generate":
		cfg.RegisterFlags(flags, command == "serve", command == "generate")
	default:
		flags.Usage()
		exitWithError(fmt.Sprintf("Unknown command: %s", command))
	}

	flags.Parse(args)

	if err := cfg.Validate(); err != nil {
		exitWithError(err.Error())
	}

	log := logger.New(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch command {
	case "generate":
		err = runGenerate(cfg, log)
	case "serve":
		err = runServe(ctx, cfg, log)
	default:
		err = runReport(ctx, cfg, log)
	}

	if err != nil {
		log.WithError(err).Error("command failed")
		stop()
		exitWithError(err.Error())
	}
}

func newDashboardService(log logrus.FieldLogger) *service.DashboardService {
	return service.NewDashboardService(
		normalizer.NewNormalizer(normalizer.DefaultDateFormat, log),
		categorizer.NewRuleCategorizer(),
		analysis.NewAggregator(),
		log,
	)
}

func newSink(path string) report.Sink {
	if path == "-" {
		return report.NewWriterSink(os.Stdout)
	}
	return report.NewFileSink(path)
}

func runReport(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) error {
	formatter, err := report.NewFormatter(cfg.Format, cfg.Pretty)
	if err != nil {
		return err
	}

	repo := repository.NewCSVRecordRepository(cfg.InputFile)
	stats, err := newDashboardService(log).Publish(ctx, repo, formatter, newSink(cfg.OutputFile))
	if err != nil {
		return fmt.Errorf("building dashboard: %w", err)
	}

	log.WithFields(logrus.Fields{
		"transactions": stats.Transactions,
		"dropped":      stats.Dropped(),
	}).Info("dashboard ready")

	return nil
}

func runServe(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) error {
	svc := newDashboardService(log)

	srv := server.New(svc, server.Options{
		InputFile: cfg.InputFile,
		Format:    cfg.Format,
		Pretty:    cfg.Pretty,
		CacheTTL:  cfg.CacheTTL,
	}, log)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.ListenAndServe(ctx, ":"+cfg.Port)
	})

	if cfg.Schedule != "" {
		formatter, err := report.NewFormatter(cfg.Format, cfg.Pretty)
		if err != nil {
			return err
		}
		sink := newSink(cfg.OutputFile)

		sched, err := scheduler.New(cfg.Schedule, func(ctx context.Context) error {
			_, err := svc.Publish(ctx, repository.NewCSVRecordRepository(cfg.InputFile), formatter, sink)
			return err
		}, log)
		if err != nil {
			return err
		}

		g.Go(func() error {
			return sched.Run(ctx)
		})
	}

	return g.Wait()
}

func runGenerate(cfg *config.Config, log logrus.FieldLogger) error {
	gen := fixture.NewGenerator(cfg.Seed)

	if cfg.OutputFile == "-" {
		return gen.WriteCSV(os.Stdout, cfg.Rows)
	}

	var buf bytes.Buffer
	if err := gen.WriteCSV(&buf, cfg.Rows); err != nil {
		return fmt.Errorf("generating transactions: %w", err)
	}

	if err := report.NewFileSink(cfg.OutputFile).Write(buf.Bytes()); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"rows":   cfg.Rows,
		"seed":   cfg.Seed,
		"output": cfg.OutputFile,
	}).Info("transactions generated")

	return nil
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
