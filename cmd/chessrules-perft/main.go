// chessrules-perft counts the nodes of the legal move tree from the standard
// starting position, optionally split by root move.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/hashing"
	"github.com/lgbarn/chessrules/internal/output"
	"github.com/lgbarn/chessrules/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules-perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	closeLog := setupLogFile(cfg)
	defer closeLog()
	closeOut := setupOutputFile(cfg)
	defer closeOut()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "chessrules-perft: %v\n", err)
		closeOut()
		closeLog()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules-perft [options]\n\nOptions:\n")
	flag.PrintDefaults()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) func() {
	if *logFile == "" {
		return func() {}
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file: %v\n", err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return func() { file.Close() }
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) func() {
	if *outFile == "" {
		return func() {}
	}
	file, err := os.Create(*outFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	return func() { file.Close() }
}

// run performs the perft described by cfg, writing results to cfg.OutputFile.
func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var table *hashing.ThreadSafePerftTable
	var cache engine.NodeCache
	if cfg.HashEntries > 0 {
		table = hashing.NewThreadSafePerftTable(cfg.HashEntries)
		cache = table
	}

	g := engine.New()
	start := time.Now()

	result := &output.Result{Depth: cfg.Depth}
	if cfg.Divide {
		cfg.Logf(2, "Dividing depth %d over %d workers\n", cfg.Depth, cfg.Workers)
		results := worker.Divide(g, cfg.Depth, cfg.Workers, cache)
		result.Divide = make([]output.MoveCount, len(results))
		for i, r := range results {
			result.Divide[i] = output.MoveCount{Move: r.Move, Nodes: r.Nodes}
		}
		result.Nodes = worker.Total(results)
	} else {
		result.Nodes = engine.PerftCached(g, cfg.Depth, cache)
	}

	if err := output.NewWriter(cfg).WriteResult(result); err != nil {
		return errors.Wrap(err, "writing result")
	}

	elapsed := time.Since(start)
	cfg.Logf(1, "depth %d: %d nodes in %s (%.0f nps)\n", cfg.Depth, result.Nodes, elapsed, nps(result.Nodes, elapsed))
	if table != nil {
		cfg.Logf(2, "hash table: %d entries, %d hits\n", table.Len(), table.Hits())
	}
	return nil
}

func nps(nodes uint64, elapsed time.Duration) float64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(nodes) / secs
}
