// Package hashing provides Zobrist position keys and transposition tables
// for perft node counts.
package hashing

import "github.com/lgbarn/chessrules/internal/chess"

// PerftTable remembers the node count below positions already searched.
type PerftTable struct {
	// entries is keyed by Zobrist hash and remaining depth
	entries map[tableKey]Signature
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	// hits counts successful lookups
	hits int
}

type tableKey struct {
	Hash  uint64
	Depth int
}

// Signature is a stored node count with the weak hash of its position.
type Signature struct {
	Nodes    uint64
	WeakHash uint32
}

// NewPerftTable creates a table holding at most maxCapacity entries.
// maxCapacity of 0 means unlimited capacity.
func NewPerftTable(maxCapacity int) *PerftTable {
	return &PerftTable{
		entries:     make(map[tableKey]Signature),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the node count stored for board at depth.
func (t *PerftTable) Lookup(board *chess.Board, depth int) (uint64, bool) {
	sig, ok := t.entries[tableKey{GenerateZobristHash(board), depth}]
	if !ok || sig.WeakHash != WeakHash(board) {
		return 0, false
	}
	t.hits++
	return sig.Nodes, true
}

// Store records the node count for board at depth. Nothing is stored once
// the table is full.
func (t *PerftTable) Store(board *chess.Board, depth int, nodes uint64) {
	if t.IsFull() {
		return
	}
	t.entries[tableKey{GenerateZobristHash(board), depth}] = Signature{
		Nodes:    nodes,
		WeakHash: WeakHash(board),
	}
}

// Hits returns the number of successful lookups.
func (t *PerftTable) Hits() int {
	return t.hits
}

// Len returns the number of stored entries.
func (t *PerftTable) Len() int {
	return len(t.entries)
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PerftTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Reset clears the table.
func (t *PerftTable) Reset() {
	t.entries = make(map[tableKey]Signature)
	t.hits = 0
}
