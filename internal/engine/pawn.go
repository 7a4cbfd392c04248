package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// checkPawnMove validates pawn geometry for the side to move. It reports
// whether the move is an en passant capture.
func checkPawnMove(board *chess.Board, from, to chess.Square, colour chess.Colour) (enPassant bool, err error) {
	forward := chess.Forward(colour)
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col
	target := board.Get(to)

	switch {
	case colDiff == 0 && rowDiff == forward:
		// Pawns never capture straight ahead
		if target != chess.Empty {
			return false, errors.ErrPathBlocked
		}
		return false, nil

	case colDiff == 0 && rowDiff == 2*forward:
		if from.Row != chess.PawnRow(colour) {
			return false, errors.ErrIllegalGeometry
		}
		if !board.IsEmpty(from.Offset(forward, 0)) || target != chess.Empty {
			return false, errors.ErrPathBlocked
		}
		return false, nil

	case abs(colDiff) == 1 && rowDiff == forward:
		if target != chess.Empty {
			return false, nil // Own pieces were rejected by the caller
		}
		if isEnPassantCapture(board, from, to, colour) {
			return true, nil
		}
		return false, errors.ErrIllegalGeometry
	}

	return false, errors.ErrIllegalGeometry
}

// isEnPassantCapture reports whether a diagonal pawn step onto the empty
// square to captures en passant.
func isEnPassantCapture(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	if !board.EnPassant || to != board.EPSquare {
		return false
	}
	return board.Get(enPassantVictim(from, to)).Is(colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture: beside the capturing pawn, on the destination file.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.Sq(from.Row, to.Col)
}

// isDoublePush reports whether the pawn move from..to is a two-square advance.
func isDoublePush(from, to chess.Square) bool {
	return from.Col == to.Col && abs(to.Row-from.Row) == 2
}

// promotionPiece returns the piece that lands on to: a queen when a pawn
// reaches the far row, otherwise the piece itself.
func promotionPiece(piece chess.Piece, to chess.Square) chess.Piece {
	if piece.Kind() != chess.Pawn {
		return piece
	}
	colour := piece.Colour()
	if to.Row == chess.PromotionRow(colour) {
		return chess.MakePiece(colour, chess.Queen)
	}
	return piece
}
