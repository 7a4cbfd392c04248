package engine

import "github.com/lgbarn/chessrules/internal/chess"

// HasLegalMoves returns true if the given colour has at least one legal move.
// Every source and destination pair is tried through the full validator, so
// en passant, castling and the self-check rule are all taken into account.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	found := false
	forEachLegalMove(board, colour, func(chess.Move, *chess.Board) bool {
		found = true
		return false
	})
	return found
}

// LegalMoves returns every legal move for the side to move, ordered by
// source square then destination square (row-major).
func LegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	forEachLegalMove(board, board.ToMove, func(m chess.Move, _ *chess.Board) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// forEachLegalMove calls fn with every legal move of colour and the position
// it leads to, until fn returns false.
func forEachLegalMove(board *chess.Board, colour chess.Colour, fn func(chess.Move, *chess.Board) bool) {
	probe := *board
	probe.ToMove = colour

	for fromRow := 0; fromRow < chess.BoardSize; fromRow++ {
		for fromCol := 0; fromCol < chess.BoardSize; fromCol++ {
			piece := probe.Squares[fromRow][fromCol]
			if piece == chess.Empty || piece.Colour() != colour {
				continue
			}

			for toRow := 0; toRow < chess.BoardSize; toRow++ {
				for toCol := 0; toCol < chess.BoardSize; toCol++ {
					m := chess.NewMove(fromRow, fromCol, toRow, toCol)
					next, err := play(&probe, m)
					if err != nil {
						continue
					}
					if !fn(m, next) {
						return
					}
				}
			}
		}
	}
}
