package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/altverseweb3/analytics-fetcher/pkg/config"
	"github.com/altverseweb3/analytics-fetcher/pkg/fetcher"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.LogLevel)
	client := fetcher.NewClient(cfg.BaseURL, cfg.APIKey, cfg.RequestTimeout)
	f := fetcher.New(client, logger)

	if cfg.Schedule != "" {
		runScheduled(cfg, f, logger)
		return
	}

	runBatch(context.Background(), cfg, f, logger)
}

// runBatch executes one full fetch and writes the report. Per-query
// failures are already embedded in the report; only a write failure is
// reported here, and it does not affect the exit status.
func runBatch(ctx context.Context, cfg *config.Config, f *fetcher.Fetcher, logger *logrus.Logger) {
	rep := f.Run(ctx)

	if err := rep.Write(cfg.OutputFile); err != nil {
		logger.Errorf("Could not write %s: %v", cfg.OutputFile, err)
		return
	}
	logger.Infof("All metrics saved to %s", cfg.OutputFile)
}

// runScheduled runs the batch on a cron schedule until interrupted.
func runScheduled(cfg *config.Config, f *fetcher.Fetcher, logger *logrus.Logger) {
	c := cron.New()
	_, err := c.AddFunc(cfg.Schedule, func() {
		runBatch(context.Background(), cfg, f, logger)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid schedule %q: %v\n", cfg.Schedule, err)
		os.Exit(1)
	}

	logger.Infof("Running analytics batch on schedule: %s", cfg.Schedule)
	c.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down")
	<-c.Stop().Done()
}

func setupLogger(logLevel string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
