// Package output formats perft results.
package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
)

// Result is the outcome of one perft run.
type Result struct {
	Depth  int
	Nodes  uint64
	Divide []MoveCount // Per root move counts; nil unless dividing
}

// MoveCount is the node count below one root move.
type MoveCount struct {
	Move  chess.Move
	Nodes uint64
}

// ResultWriter is the interface for writing perft results.
// Different implementations handle different output formats.
type ResultWriter interface {
	WriteResult(r *Result) error
}

// NewWriter returns the writer for cfg.Format, writing to cfg.OutputFile.
func NewWriter(cfg *config.Config) ResultWriter {
	if cfg.Format == config.JSONFormat {
		return NewJSONWriter(cfg.OutputFile)
	}
	return NewTextWriter(cfg.OutputFile)
}

// TextWriter writes results in the plain format used by most perft tools:
// a single node count, or one "move: nodes" line per root move followed by
// the total.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteResult writes r. Divide lines are sorted by move text.
func (tw *TextWriter) WriteResult(r *Result) error {
	if r.Divide == nil {
		_, err := fmt.Fprintf(tw.w, "%d\n", r.Nodes)
		return err
	}

	for _, mc := range sortedDivide(r.Divide) {
		if _, err := fmt.Fprintf(tw.w, "%s: %d\n", mc.Move, mc.Nodes); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(tw.w, "Total: %d\n", r.Nodes)
	return err
}

// sortedDivide returns a copy of counts ordered by move text.
func sortedDivide(counts []MoveCount) []MoveCount {
	sorted := make([]MoveCount, len(counts))
	copy(sorted, counts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Move.String() < sorted[j].Move.String()
	})
	return sorted
}
