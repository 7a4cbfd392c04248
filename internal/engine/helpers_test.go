package engine

import (
	"io"
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/testutil"
)

// newGameFromDiagram builds a game positioned on the given diagram. The
// status starts as Ongoing whatever the position.
func newGameFromDiagram(t *testing.T, toMove chess.Colour, rows ...string) *Game {
	t.Helper()
	return &Game{
		board:  *testutil.MustParseDiagram(t, toMove, rows...),
		status: chess.Ongoing,
		trace:  io.Discard,
	}
}

// snapshot captures every observable field of g.
type snapshot struct {
	Board  chess.Board
	Status chess.Status
}

func takeSnapshot(g *Game) snapshot {
	return snapshot{Board: g.Board(), Status: g.GameStatus()}
}

// mustMove plays the moves on g and fails the test if any is refused.
func mustMove(t *testing.T, g *Game, moves ...chess.Move) {
	t.Helper()
	for _, m := range moves {
		if err := g.TryMove(m); err != nil {
			t.Fatalf("TryMove(%s) error: %v\nboard:\n%s", m, err, g.board.String())
		}
	}
}

// mv parses a move in long algebraic form such as "e2e4".
func mv(s string) chess.Move {
	return chess.Move{From: sq(s[0:2]), To: sq(s[2:4])}
}

// sq parses an algebraic square such as "e4".
func sq(s string) chess.Square {
	return chess.Sq(chess.BoardSize-int(s[1]-'0'), int(s[0]-'a'))
}

// moves parses a list of long algebraic moves.
func moves(list ...string) []chess.Move {
	out := make([]chess.Move, len(list))
	for i, s := range list {
		out[i] = mv(s)
	}
	return out
}
