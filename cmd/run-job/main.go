// Command run-job runs one batch of a background job outside the HTTP
// server, for manual triggering and for schedulers that prefer a process.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/jbeshir/community-feed/internal/app"
	"github.com/jbeshir/community-feed/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	batchSize := flag.Int("batch-size", 0, "batch size; zero uses the job default")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: run-job [-batch-size N] <job>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	job := flag.Arg(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})).With("job", job)
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	result, err := run(ctx, job, *batchSize)
	if err != nil {
		logger.ErrorContext(ctx, "job failed", "error", err)
		os.Exit(1)
	}

	if err := json.NewEncoder(os.Stdout).Encode(result); err != nil {
		logger.ErrorContext(ctx, "unable to write job result", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, job string, batchSize int) (any, error) {
	ds, err := app.SetupDatasources(ctx)
	if err != nil {
		return nil, err
	}

	jobs := app.Jobs(app.NewCommands(ds))
	runner, ok := jobs[job]
	if !ok {
		return nil, fmt.Errorf("unknown job [%s], expected one of %v", job, slices.Sorted(maps.Keys(jobs)))
	}

	return runner(ctx, batchSize)
}
