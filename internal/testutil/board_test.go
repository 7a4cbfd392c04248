package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
)

func TestParseDiagram_InitialPosition(t *testing.T) {
	b := MustParseDiagram(t, chess.White,
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"RNBQKBNR",
	)

	AssertEqual(t, *b, *chess.NewInitialBoard(), "initial diagram")
}

func TestParseDiagram_DerivesCastlingFlags(t *testing.T) {
	b := MustParseDiagram(t, chess.Black,
		"r . . . k . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . K . . . R",
	)

	want := chess.CastlingRights{
		WKingMoved:          true,
		WQueensideRookMoved: true,
		BKingsideRookMoved:  true,
	}
	AssertEqual(t, b.Castling, want, "castling flags")
	AssertEqual(t, b.ToMove, chess.Black, "side to move")
}

func TestParseDiagram_Malformed(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"too few rows", []string{"........"}},
		{"short row", []string{"k.......", "........", "........", "........", "........", "........", "........", "K......"}},
		{"bad letter", []string{"k.......", "........", "........", "...x....", "........", "........", "........", "K......."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ParseDiagram(tt.rows, chess.White); ok {
				t.Error("ParseDiagram() ok = true, want false")
			}
		})
	}
}
