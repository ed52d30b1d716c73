// Command mealyscan runs one of the bundled automata over lines of text.
//
// Usage:
//
//	mealyscan [-automaton float|count|split] [line ...]
//
// Without line arguments, lines are read from stdin. Settings come from
// MEALYSCAN_* environment variables or a .env file; the flag overrides
// MEALYSCAN_AUTOMATON. The exit code is 1 if any line is rejected.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/librescoot/mealy"
	"github.com/librescoot/mealy/internal/config"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	automaton := flag.String("automaton", "", "automaton to run: float, count or split")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(2)
	}
	if *automaton != "" {
		cfg.Automaton = *automaton
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "invalid flag: %v\n", err)
			os.Exit(2)
		}
	}

	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)
	mealy.Logger = logger

	logger.Debug("starting mealyscan", "version", Version, "automaton", cfg.Automaton, "normalize", cfg.Normalize)

	rejected, err := scan(cfg, flag.Args(), os.Stdin, os.Stdout, logger)
	if err != nil {
		logger.Error("scan failed", "error", err)
		os.Exit(2)
	}
	if rejected > 0 {
		logger.Info("lines rejected", "count", rejected)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
