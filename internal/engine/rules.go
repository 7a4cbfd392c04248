package engine

import "github.com/lgbarn/chessrules/internal/chess"

// FiftyMoveLimit is the half-move clock value at which the game is drawn.
const FiftyMoveLimit = 100

// EvaluateStatus classifies the position for the side to move.
//
// Checkmate and stalemate are decided first. The fifty-move rule and
// insufficient material are applied afterwards and override that result.
func EvaluateStatus(board *chess.Board) chess.Status {
	colour := board.ToMove

	status := chess.Ongoing
	if !HasLegalMoves(board, colour) {
		if IsInCheck(board, colour) {
			status = chess.WinFor(colour.Opposite())
		} else {
			status = chess.Draw
		}
	}

	if board.HalfmoveClock >= FiftyMoveLimit {
		status = chess.Draw
	}
	if HasInsufficientMaterial(board) {
		status = chess.Draw
	}

	return status
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// HasInsufficientMaterial returns true if neither side can possibly mate.
// Insufficient material is:
// - K vs K
// - K+B vs K
// - K+N vs K
func HasInsufficientMaterial(board *chess.Board) bool {
	var whiteMinors, blackMinors int

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			kind := piece.Kind()
			if piece == chess.Empty || kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if !kind.IsMinor() {
				return false
			}

			if piece.Colour() == chess.White {
				whiteMinors++
			} else {
				blackMinors++
			}
		}
	}

	return whiteMinors+blackMinors <= 1
}
