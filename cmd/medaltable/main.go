// Command medaltable prints medal standings built from a results table.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/medaltable/internal/adapters/render"
	"github.com/okian/medaltable/internal/adapters/source"
	service "github.com/okian/medaltable/internal/app"
	"github.com/okian/medaltable/internal/config"
	"github.com/okian/medaltable/pkg/logger"
	"github.com/okian/medaltable/pkg/metrics"
)

// flagKeys maps command-line flags onto config keys. Only flags given on
// the command line override the other layers.
var flagKeys = map[string]string{
	"source":       "source",
	"views":        "views",
	"sort":         "sort",
	"search":       "search",
	"format":       "format",
	"podium":       "podium_size",
	"workers":      "workers",
	"timeout":      "fetch_timeout",
	"metrics-file": "metrics_file",
	"log-level":    "log_level",
	"log-format":   "log_format",
}

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Stderr.WriteString("medaltable: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// run executes one report. The report goes to stdout; logs go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	fs := flag.NewFlagSet("medaltable", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configFile = fs.String("config", "", "YAML config file (default: $MEDALTABLE_CONFIG)")
		values     = map[string]any{}
	)
	fs.String("source", "", "Results file path or http(s) URL (default ./results.csv)")
	fs.String("views", "", "Comma-separated group-key columns, e.g. Team,Athlete (default Team)")
	fs.String("sort", "", "Sort mode: points, podiums or medals (default points)")
	fs.String("search", "", "Only show names containing this text, ignoring case")
	fs.String("format", "", "Report format: table or json (default table)")
	fs.Int("podium", 0, "Number of entries on the podium (default 3)")
	fs.Int("workers", 0, "Views computed at once (default CPU count)")
	fs.Duration("timeout", 0, "Timeout for loading the source (default 10s)")
	fs.String("metrics-file", "", "Write Prometheus metrics to this file on exit")
	fs.String("log-level", "", "Log level: debug, info, warn or error (default info)")
	fs.String("log-format", "", "Log format: text or json (default text)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			values[key] = f.Value.String()
		}
	})

	// Initialize logging
	if err := logger.Init(logger.WithWriter(stderr)); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Load configuration (defaults -> optional file -> env -> flags)
	cfg, err := config.Load(ctx, config.WithFile(*configFile), config.WithOverrides(values))
	if err != nil {
		return err
	}
	if cfg.LogFormat != logger.FormatText {
		if err := logger.Init(logger.WithWriter(stderr), logger.WithFormat(cfg.LogFormat)); err != nil {
			return fmt.Errorf("initialize logging: %w", err)
		}
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return err
	}
	log := logger.Named("medaltable")

	if cfg.MetricsFile != "" {
		defer func() {
			if werr := metrics.WriteTextfile(cfg.MetricsFile); werr != nil {
				err = errors.Join(err, werr)
				return
			}
			log.Debug(ctx, "metrics written", logger.String("path", cfg.MetricsFile))
		}()
	}

	start := time.Now()
	src, err := source.New(cfg.Source, source.WithTimeout(cfg.FetchTimeout))
	if err != nil {
		return err
	}

	svc := service.New(
		service.WithLogger(logger.Named("service")),
		service.WithLoader(src),
		service.WithPodiumSize(cfg.PodiumSize),
		service.WithWorkers(cfg.Workers),
	)

	ds, err := svc.Load(ctx)
	if err != nil {
		return err
	}
	boards, err := svc.Boards(ctx, ds, cfg.Views, cfg.Sort, cfg.Search)
	if err != nil {
		return err
	}

	r, err := render.New(cfg.Format, stdout)
	if err != nil {
		return err
	}
	if err := r.Render(ctx, boards); err != nil {
		return err
	}

	log.Info(ctx, "report written",
		logger.Strings("views", cfg.Views),
		logger.String("sort", cfg.Sort),
		logger.String("format", cfg.Format),
		logger.Duration("took", time.Since(start)),
	)
	return nil
}
