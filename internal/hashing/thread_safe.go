package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules/internal/chess"
)

// ThreadSafePerftTable wraps PerftTable with mutex protection for concurrent access.
type ThreadSafePerftTable struct {
	table *PerftTable
	mu    sync.RWMutex
}

// NewThreadSafePerftTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftTable(maxCapacity int) *ThreadSafePerftTable {
	return &ThreadSafePerftTable{
		table: NewPerftTable(maxCapacity),
	}
}

// Lookup returns the node count stored for board at depth.
func (t *ThreadSafePerftTable) Lookup(board *chess.Board, depth int) (uint64, bool) {
	// Lookup counts hits, so it needs the write lock.
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(board, depth)
}

// Store records the node count for board at depth.
func (t *ThreadSafePerftTable) Store(board *chess.Board, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(board, depth, nodes)
}

// Hits returns the number of successful lookups.
func (t *ThreadSafePerftTable) Hits() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Hits()
}

// Len returns the number of stored entries.
func (t *ThreadSafePerftTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafePerftTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}
