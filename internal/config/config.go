// Package config provides configuration for the chessrules tools.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessrules/internal/errors"
)

// MaxDepth bounds the perft depth accepted from the command line.
const MaxDepth = 8

// OutputFormat specifies how results are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota
	JSONFormat
)

// Config holds all program configuration.
type Config struct {
	// Perft
	Depth  int  // Plies to search below the root
	Divide bool // Report the node count below each root move

	// Processing
	Workers     int // Goroutines used for divide
	HashEntries int // Transposition table capacity; 0 disables the table
	Verbosity   int // 0=nothing, 1=summary, 2=running commentary

	// Output
	Format     OutputFormat
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Depth:      1,
		Workers:    runtime.NumCPU(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Depth < 1 || c.Depth > MaxDepth {
		return fmt.Errorf("depth %d outside 1..%d: %w", c.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.HashEntries < 0 {
		return fmt.Errorf("hash entries %d must not be negative: %w", c.HashEntries, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "output and log streams must be set")
	}
	return nil
}

// Logf writes a message to the log stream if Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity >= level && c.LogFile != nil {
		fmt.Fprintf(c.LogFile, format, args...)
	}
}
