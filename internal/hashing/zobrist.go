package hashing

import "github.com/lgbarn/chessrules/internal/chess"

// Random keys for every (square, piece) pair and for the rest of the
// position state. They are generated from a fixed seed so hashes are
// stable between runs.
var (
	pieceKeys    [chess.BoardSize][chess.BoardSize][chess.BlackKing + 1]uint64
	whiteKey     uint64
	castlingKeys [6]uint64
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	state := uint64(0x9E3779B97F4A7C15)
	for row := range pieceKeys {
		for col := range pieceKeys[row] {
			for p := chess.WhitePawn; p <= chess.BlackKing; p++ {
				pieceKeys[row][col][p] = splitmix64(&state)
			}
		}
	}
	whiteKey = splitmix64(&state)
	for i := range castlingKeys {
		castlingKeys[i] = splitmix64(&state)
	}
	for i := range epFileKeys {
		epFileKeys[i] = splitmix64(&state)
	}
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// GenerateZobristHash returns the Zobrist key of the position: pieces, side
// to move, castling flags and en passant file. The half-move clock is not
// included.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := board.Squares[row][col]; p != chess.Empty {
				hash ^= pieceKeys[row][col][p]
			}
		}
	}

	if board.ToMove == chess.White {
		hash ^= whiteKey
	}

	c := board.Castling
	for i, moved := range []bool{
		c.WKingMoved, c.WQueensideRookMoved, c.WKingsideRookMoved,
		c.BKingMoved, c.BQueensideRookMoved, c.BKingsideRookMoved,
	} {
		if moved {
			hash ^= castlingKeys[i]
		}
	}

	if board.EnPassant {
		hash ^= epFileKeys[board.EPSquare.Col]
	}
	return hash
}

// WeakHash is a cheap second hash of the piece placement, used to catch
// Zobrist collisions.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			hash = hash*31 + uint32(p)
		}
	}
	return hash
}
