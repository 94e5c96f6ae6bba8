// Command gen-results writes a synthetic results table for medaltable.
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

	"github.com/okian/medaltable/internal/sampledata"
	"github.com/okian/medaltable/pkg/logger"
)

// File permission constants.
const (
	outputFilePermission = 0o644
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Stderr.WriteString("gen-results: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	def := sampledata.DefaultConfig()
	fs := flag.NewFlagSet("gen-results", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { sampledata.ShowHelp(stderr) }
	var (
		events   = fs.Int("events", def.Events, "Number of events to stage")
		teams    = fs.Int("teams", def.Teams, "Number of teams")
		athletes = fs.Int("athletes", def.AthletesPerTeam, "Athletes per team")
		entrants = fs.Int("entrants", def.EntrantsPerEvent, "Athletes drawn into each event")
		dnf      = fs.Float64("dnf", def.DNFRate, "Share of entrants that do not finish")
		seed     = fs.Uint64("seed", def.Seed, "Random seed")
		output   = fs.String("output", "", "File to write (default: stdout)")
		help     = fs.Bool("help", false, "Show help")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if *help {
		sampledata.ShowHelp(stdout)
		return nil
	}

	if err := logger.Init(logger.WithWriter(stderr)); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}

	cfg := sampledata.Config{
		Events:           *events,
		Teams:            *teams,
		AthletesPerTeam:  *athletes,
		EntrantsPerEvent: *entrants,
		DNFRate:          *dnf,
		Seed:             *seed,
	}

	w := stdout
	if *output != "" {
		f, err := os.OpenFile(*output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermission)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := sampledata.Write(ctx, cfg, w); err != nil {
		return err
	}

	logger.Get().Info(ctx, "results generated",
		logger.Int("events", cfg.Events),
		logger.Int("teams", cfg.Teams),
		logger.Int("rows", cfg.Events*cfg.EntrantsPerEvent),
		logger.Any("seed", cfg.Seed),
		logger.String("output", *output),
	)
	return nil
}
