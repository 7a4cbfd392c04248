package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// isCastlingAttempt reports whether the move is a king stepping two columns
// along its row, which is only ever legal as castling.
func isCastlingAttempt(piece chess.Piece, m chess.Move) bool {
	return piece.Kind() == chess.King &&
		m.From.Row == m.To.Row &&
		abs(m.To.Col-m.From.Col) == 2
}

// playCastle validates a castling move and returns the position after it.
// board is not modified.
func playCastle(board *chess.Board, m chess.Move) (*chess.Board, error) {
	colour := board.ToMove
	king := board.Get(m.From)
	row := chess.BackRow(colour)
	kingside := m.To.Col > m.From.Col

	refuse := func(format string, args ...interface{}) (*chess.Board, error) {
		return nil, reject(m, king, errors.ErrCastlingNotAllowed, fmt.Sprintf(format, args...))
	}

	if m.From != chess.Sq(row, chess.KingCol) {
		return refuse("king not on its original square")
	}
	if board.Castling.KingMoved(colour) {
		return refuse("king has moved")
	}
	if board.Castling.RookMoved(colour, kingside) {
		return refuse("rook has moved")
	}

	rookCol := chess.QueensideRookCol
	if kingside {
		rookCol = chess.KingsideRookCol
	}
	rookSq := chess.Sq(row, rookCol)
	rook := board.Get(rookSq)
	if !rook.Is(colour, chess.Rook) {
		return refuse("no rook on %s", rookSq)
	}

	step := sign(rookCol - m.From.Col)
	for col := m.From.Col + step; col != rookCol; col += step {
		if sq := chess.Sq(row, col); !board.IsEmpty(sq) {
			return refuse("%s is occupied", sq)
		}
	}

	// The king may not start on, pass through or land on an attacked square.
	probe := *board
	probe.Set(m.From, chess.Empty)
	for col := m.From.Col; col != m.To.Col+step; col += step {
		if sq := chess.Sq(row, col); IsSquareAttacked(&probe, sq, colour.Opposite()) {
			return refuse("%s is attacked", sq)
		}
	}

	next := board.Copy()
	next.Set(m.From, chess.Empty)
	next.Set(rookSq, chess.Empty)
	next.Set(m.To, king)
	next.Set(chess.Sq(row, m.To.Col-step), rook)

	next.Castling.SetKingMoved(colour)
	next.Castling.SetRookMoved(colour, kingside)
	next.EnPassant = false
	next.HalfmoveClock++
	next.ToMove = colour.Opposite()

	return next, nil
}

// updateCastlingRights sets the moved-flags after a non-castling move of
// piece from m.From that captured captured on m.To.
func updateCastlingRights(rights *chess.CastlingRights, m chess.Move, piece, captured chess.Piece) {
	colour := piece.Colour()

	switch piece.Kind() {
	case chess.King:
		rights.SetKingMoved(colour)
	case chess.Rook:
		markCornerRook(rights, colour, m.From)
	}

	// A rook taken on its corner has left it too.
	if captured.Kind() == chess.Rook {
		markCornerRook(rights, captured.Colour(), m.To)
	}
}

// markCornerRook flags colour's rook as moved if sq is one of its corners.
func markCornerRook(rights *chess.CastlingRights, colour chess.Colour, sq chess.Square) {
	if sq.Row != chess.BackRow(colour) {
		return
	}
	switch sq.Col {
	case chess.QueensideRookCol:
		rights.SetRookMoved(colour, false)
	case chess.KingsideRookCol:
		rights.SetRookMoved(colour, true)
	}
}
