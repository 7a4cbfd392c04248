// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules/internal/config"
)

var (
	depth   = flag.Int("depth", 1, "Perft depth in plies")
	divide  = flag.Bool("divide", false, "Print per-move node counts at the root")
	workers = flag.Int("workers", 0, "Worker goroutines for -divide (default: number of CPUs)")
	hash    = flag.Int("hash", 0, "Transposition table capacity in entries (0 disables)")

	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=summary, 2=per-move progress")
	logFile   = flag.String("l", "", "Write log output to this file (default: stderr)")
	outFile   = flag.String("o", "", "Write results to this file (default: stdout)")
	jsonOut   = flag.Bool("json", false, "Write results as JSON")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flag values onto cfg.
func applyFlags(cfg *config.Config) {
	cfg.Depth = *depth
	cfg.Divide = *divide
	if *workers > 0 {
		cfg.Workers = *workers
	}
	cfg.HashEntries = *hash
	cfg.Verbosity = *verbosity
	if *jsonOut {
		cfg.Format = config.JSONFormat
	}
}
