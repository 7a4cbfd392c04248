package engine

import "github.com/lgbarn/chessrules/internal/chess"

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if a piece of byColour could capture on sq in
// one step. Whose turn it is and the safety of byColour's own king are not
// considered.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks. A pawn attacks from one row behind the square as
	// seen from its own direction of travel.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	pawnRow := sq.Row - chess.Forward(byColour)
	for _, dc := range []int{-1, 1} {
		from := chess.Sq(pawnRow, sq.Col+dc)
		if from.InBounds() && board.Get(from) == pawn {
			return true
		}
	}

	// Check knight attacks
	knight := chess.MakePiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		from := sq.Offset(off[0], off[1])
		if from.InBounds() && board.Get(from) == knight {
			return true
		}
	}

	// Check king attacks
	king := chess.MakePiece(byColour, chess.King)
	for _, off := range kingOffsets {
		from := sq.Offset(off[0], off[1])
		if from.InBounds() && board.Get(from) == king {
			return true
		}
	}

	// Check sliding pieces (bishop, rook, queen) along diagonals
	bishop := chess.MakePiece(byColour, chess.Bishop)
	queen := chess.MakePiece(byColour, chess.Queen)
	for _, dir := range diagonalDirs {
		piece := firstPieceOnRay(board, sq, dir)
		if piece == bishop || piece == queen {
			return true
		}
	}

	// Check sliding pieces along straight lines
	rook := chess.MakePiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		piece := firstPieceOnRay(board, sq, dir)
		if piece == rook || piece == queen {
			return true
		}
	}

	return false
}

// firstPieceOnRay walks from sq (exclusive) in direction dir and returns the
// first piece met, or Empty if the ray leaves the board first.
func firstPieceOnRay(board *chess.Board, sq chess.Square, dir [2]int) chess.Piece {
	for cur := sq.Offset(dir[0], dir[1]); cur.InBounds(); cur = cur.Offset(dir[0], dir[1]) {
		if piece := board.Get(cur); piece != chess.Empty {
			return piece
		}
	}
	return chess.Empty
}
