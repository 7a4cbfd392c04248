package output

import (
	"encoding/json"
	"io"
)

// JSONResult represents a perft result in JSON format.
type JSONResult struct {
	Depth  int        `json:"depth"`
	Nodes  uint64     `json:"nodes"`
	Divide []JSONMove `json:"divide,omitempty"`
}

// JSONMove represents the node count below one root move.
type JSONMove struct {
	Move  string `json:"move"` // long algebraic, e.g. "e2e4"
	Nodes uint64 `json:"nodes"`
}

// ResultToJSON converts a result to JSON format.
func ResultToJSON(r *Result) *JSONResult {
	jr := &JSONResult{
		Depth: r.Depth,
		Nodes: r.Nodes,
	}
	for _, mc := range sortedDivide(r.Divide) {
		jr.Divide = append(jr.Divide, JSONMove{Move: mc.Move.String(), Nodes: mc.Nodes})
	}
	return jr
}

// JSONWriter writes each result as an indented JSON object.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteResult writes r as JSON.
func (jw *JSONWriter) WriteResult(r *Result) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(ResultToJSON(r))
}
