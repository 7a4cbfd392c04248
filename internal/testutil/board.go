package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
)

// ParseDiagram builds a board from eight rows of piece letters, row 0 (Black's
// back rank) first. Letters follow FEN: uppercase White, lowercase Black, '.'
// for an empty square. Spaces inside a row are ignored so diagrams can be
// written as "r . . . k . . r".
//
// Castling flags are derived from the position: a king or rook not standing
// on its original square is marked as moved.
func ParseDiagram(rows []string, toMove chess.Colour) (*chess.Board, bool) {
	if len(rows) != chess.BoardSize {
		return nil, false
	}

	b := chess.NewBoard()
	b.ToMove = toMove
	for row, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != chess.BoardSize {
			return nil, false
		}
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := chess.PieceFromLetter(line[col])
			if !ok {
				return nil, false
			}
			b.Squares[row][col] = piece
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		back := chess.BackRow(colour)
		if !b.Get(chess.Sq(back, chess.KingCol)).Is(colour, chess.King) {
			b.Castling.SetKingMoved(colour)
		}
		if !b.Get(chess.Sq(back, chess.QueensideRookCol)).Is(colour, chess.Rook) {
			b.Castling.SetRookMoved(colour, false)
		}
		if !b.Get(chess.Sq(back, chess.KingsideRookCol)).Is(colour, chess.Rook) {
			b.Castling.SetRookMoved(colour, true)
		}
	}

	return b, true
}

// MustParseDiagram is ParseDiagram that fails the test on a malformed diagram.
func MustParseDiagram(t *testing.T, toMove chess.Colour, rows ...string) *chess.Board {
	t.Helper()
	b, ok := ParseDiagram(rows, toMove)
	if !ok {
		t.Fatalf("malformed board diagram:\n%s", strings.Join(rows, "\n"))
	}
	return b
}
