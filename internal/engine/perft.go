package engine

import "github.com/lgbarn/chessrules/internal/chess"

// NodeCache memoises perft node counts by position and remaining depth.
// Implementations used from several goroutines must be safe for
// concurrent use.
type NodeCache interface {
	Lookup(board *chess.Board, depth int) (uint64, bool)
	Store(board *chess.Board, depth int, nodes uint64)
}

// Perft counts the leaf nodes of the legal move tree of the given depth
// below the game's current position.
func Perft(g *Game, depth int) uint64 {
	return perft(&g.board, depth, nil)
}

// PerftCached is Perft with subtree counts shared through cache. A nil
// cache behaves like Perft.
func PerftCached(g *Game, depth int, cache NodeCache) uint64 {
	return perft(&g.board, depth, cache)
}

// PerftDivide returns the Perft count below each legal root move.
func PerftDivide(g *Game, depth int) map[chess.Move]uint64 {
	result := make(map[chess.Move]uint64)
	if depth < 1 {
		return result
	}
	forEachLegalMove(&g.board, g.board.ToMove, func(m chess.Move, next *chess.Board) bool {
		result[m] = perft(next, depth-1, nil)
		return true
	})
	return result
}

func perft(board *chess.Board, depth int, cache NodeCache) uint64 {
	if depth <= 0 {
		return 1
	}

	// Leaf counts are cheaper to recount than to look up.
	useCache := cache != nil && depth > 1
	if useCache {
		if nodes, ok := cache.Lookup(board, depth); ok {
			return nodes
		}
	}

	var nodes uint64
	forEachLegalMove(board, board.ToMove, func(_ chess.Move, next *chess.Board) bool {
		if depth == 1 {
			nodes++
		} else {
			nodes += perft(next, depth-1, cache)
		}
		return true
	})

	if useCache {
		cache.Store(board, depth, nodes)
	}
	return nodes
}
