package worker

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
)

// PerftFunc returns a ProcessFunc counting the leaf nodes depth plies below
// each item's position. cache may be nil; otherwise it is shared by every
// worker and must be safe for concurrent use.
func PerftFunc(depth int, cache engine.NodeCache) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: engine.PerftCached(item.Game, depth, cache),
		}
	}
}

// RootItems returns one work item per legal move of g, each carrying a
// clone of g with that move played.
func RootItems(g *engine.Game) []WorkItem {
	var items []WorkItem
	for i, m := range g.LegalMoves() {
		child := g.Clone()
		if err := child.TryMove(m); err != nil {
			continue
		}
		items = append(items, WorkItem{Game: child, Move: m, Index: i})
	}
	return items
}

// Divide counts the nodes below each legal root move of g on workers
// goroutines. The result has one entry per root move in LegalMoves order.
func Divide(g *engine.Game, depth, workers int, cache engine.NodeCache) []ProcessResult {
	if depth < 1 {
		return nil
	}
	items := RootItems(g)
	return Run(items, PerftFunc(depth-1, cache), WithWorkers(workers), WithBufferSize(len(items)+1))
}

// Total sums the node counts of results.
func Total(results []ProcessResult) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}

// Moves returns the moves of results in order.
func Moves(results []ProcessResult) []chess.Move {
	moves := make([]chess.Move, len(results))
	for i, r := range results {
		moves[i] = r.Move
	}
	return moves
}
