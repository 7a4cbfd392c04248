package main

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/output"
)

func newTestConfig(depth int, divide bool) (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	var out, log bytes.Buffer
	cfg := config.NewConfig()
	cfg.Depth = depth
	cfg.Divide = divide
	cfg.Workers = 2
	cfg.OutputFile = &out
	cfg.LogFile = &log
	return cfg, &out, &log
}

func TestRun_Perft(t *testing.T) {
	tests := []struct {
		depth int
		want  string
	}{
		{1, "20\n"},
		{2, "400\n"},
		{3, "8902\n"},
	}

	for _, tt := range tests {
		cfg, out, log := newTestConfig(tt.depth, false)
		if err := run(cfg); err != nil {
			t.Fatalf("run(depth %d) error: %v", tt.depth, err)
		}
		if got := out.String(); got != tt.want {
			t.Errorf("run(depth %d) output = %q, want %q", tt.depth, got, tt.want)
		}
		if !strings.Contains(log.String(), "nodes in") {
			t.Errorf("run(depth %d) log = %q, want summary line", tt.depth, log.String())
		}
	}
}

func TestRun_Divide(t *testing.T) {
	cfg, out, _ := newTestConfig(2, true)
	if err := run(cfg); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 21 {
		t.Fatalf("divide output has %d lines, want 21:\n%s", len(lines), out.String())
	}
	if lines[0] != "a2a3: 20" {
		t.Errorf("first line = %q, want %q", lines[0], "a2a3: 20")
	}
	if lines[len(lines)-1] != "Total: 400" {
		t.Errorf("last line = %q, want %q", lines[len(lines)-1], "Total: 400")
	}
	for _, want := range []string{"e2e4: 20", "g1f3: 20", "b1c3: 20"} {
		if !strings.Contains(out.String(), want+"\n") {
			t.Errorf("divide output missing %q", want)
		}
	}
}

func TestRun_Quiet(t *testing.T) {
	cfg, _, log := newTestConfig(1, false)
	cfg.Verbosity = 0
	if err := run(cfg); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if log.Len() != 0 {
		t.Errorf("log at verbosity 0 = %q, want empty", log.String())
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg, out, _ := newTestConfig(0, false)
	err := run(cfg)
	if !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Fatalf("run(depth 0) error = %v, want ErrInvalidConfig", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want empty", out.String())
	}
}

func TestRun_HashTable(t *testing.T) {
	for _, divide := range []bool{false, true} {
		cfg, out, log := newTestConfig(3, divide)
		cfg.HashEntries = 1000
		cfg.Verbosity = 2
		if err := run(cfg); err != nil {
			t.Fatalf("run(divide %v) error: %v", divide, err)
		}
		if !strings.HasSuffix(out.String(), "8902\n") {
			t.Errorf("run(divide %v) output ends %q, want total 8902", divide, out.String())
		}
		if !strings.Contains(log.String(), "hash table: ") {
			t.Errorf("run(divide %v) log = %q, want hash table line", divide, log.String())
		}
	}
}

func TestRun_JSON(t *testing.T) {
	cfg, out, _ := newTestConfig(2, true)
	cfg.Format = config.JSONFormat
	if err := run(cfg); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	var got output.JSONResult
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if got.Depth != 2 || got.Nodes != 400 || len(got.Divide) != 20 {
		t.Errorf("JSON result = depth %d, nodes %d, %d moves; want 2, 400, 20", got.Depth, got.Nodes, len(got.Divide))
	}
	if len(got.Divide) > 0 && got.Divide[0].Move != "a2a3" {
		t.Errorf("first move = %q, want a2a3", got.Divide[0].Move)
	}
}

func TestApplyFlags(t *testing.T) {
	*depth, *divide, *workers, *hash, *verbosity, *jsonOut = 4, true, 3, 512, 2, true
	defer func() { *depth, *divide, *workers, *hash, *verbosity, *jsonOut = 1, false, 0, 0, 1, false }()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Depth != 4 || !cfg.Divide || cfg.Workers != 3 || cfg.Verbosity != 2 {
		t.Errorf("applyFlags() = %+v, want depth 4, divide, 3 workers, verbosity 2", cfg)
	}
	if cfg.HashEntries != 512 || cfg.Format != config.JSONFormat {
		t.Errorf("applyFlags() = %+v, want 512 hash entries and JSON output", cfg)
	}
}
