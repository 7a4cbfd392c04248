package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// canPieceMove checks if a knight, bishop, rook, queen or king can move from
// one square to another. Occupancy of the destination is checked by the caller.
func canPieceMove(board *chess.Board, kind chess.Kind, from, to chess.Square) error {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	switch kind {
	case chess.Knight:
		if (rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1) {
			return nil
		}

	case chess.Bishop:
		if rowDiff == colDiff {
			return checkPathClear(board, from, to)
		}

	case chess.Rook:
		if rowDiff == 0 || colDiff == 0 {
			return checkPathClear(board, from, to)
		}

	case chess.Queen:
		if rowDiff == colDiff || rowDiff == 0 || colDiff == 0 {
			return checkPathClear(board, from, to)
		}

	case chess.King:
		if rowDiff <= 1 && colDiff <= 1 {
			return nil
		}
	}

	return errors.ErrIllegalGeometry
}

// checkPathClear checks that every square strictly between from and to is
// empty. from and to must share a row, a column or a diagonal.
func checkPathClear(board *chess.Board, from, to chess.Square) error {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	for sq := from.Offset(rowDir, colDir); sq != to; sq = sq.Offset(rowDir, colDir) {
		if !board.IsEmpty(sq) {
			return errors.ErrPathBlocked
		}
	}
	return nil
}
