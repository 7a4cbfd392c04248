// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// play validates m for the side to move on board and returns the position
// after it. board itself is never modified, so a rejected move leaves no
// trace. The status of the resulting position is not evaluated.
func play(board *chess.Board, m chess.Move) (*chess.Board, error) {
	if !m.From.InBounds() || !m.To.InBounds() {
		return nil, reject(m, chess.Empty, errors.ErrOutOfBounds, "")
	}

	piece := board.Get(m.From)
	if piece == chess.Empty {
		return nil, reject(m, piece, errors.ErrEmptySquare, "")
	}

	colour := piece.Colour()
	if colour != board.ToMove {
		return nil, reject(m, piece, errors.ErrWrongTurn, "")
	}

	if isCastlingAttempt(piece, m) {
		return playCastle(board, m)
	}

	enPassant, err := checkPseudoLegal(board, m, piece)
	if err != nil {
		return nil, reject(m, piece, err, "")
	}

	next := board.Copy()
	captured := execute(next, m, enPassant)

	if IsInCheck(next, colour) {
		return nil, reject(m, piece, errors.ErrKingInCheck, "")
	}

	updateState(next, m, piece, captured)
	return next, nil
}

// checkPseudoLegal checks geometry, path clearance and the same-colour
// capture rule. It reports whether the move is an en passant capture.
func checkPseudoLegal(board *chess.Board, m chess.Move, piece chess.Piece) (enPassant bool, err error) {
	if m.From == m.To {
		return false, errors.ErrIllegalGeometry
	}

	target := board.Get(m.To)
	if target != chess.Empty && target.Colour() == piece.Colour() {
		return false, errors.ErrOwnPiece
	}

	if piece.Kind() == chess.Pawn {
		return checkPawnMove(board, m.From, m.To, piece.Colour())
	}
	return false, canPieceMove(board, piece.Kind(), m.From, m.To)
}

// execute moves the piece on board, removing any captured piece, and
// returns what was captured.
func execute(board *chess.Board, m chess.Move, enPassant bool) chess.Piece {
	piece := board.Get(m.From)
	captured := board.Get(m.To)

	if enPassant {
		victim := enPassantVictim(m.From, m.To)
		captured = board.Get(victim)
		board.Set(victim, chess.Empty)
	}

	board.Set(m.From, chess.Empty)
	board.Set(m.To, promotionPiece(piece, m.To))

	return captured
}

// updateState does the bookkeeping of a committed non-castling move:
// half-move clock, castling rights, en passant target and turn.
func updateState(board *chess.Board, m chess.Move, piece, captured chess.Piece) {
	colour := piece.Colour()
	isPawn := piece.Kind() == chess.Pawn

	if isPawn || captured != chess.Empty {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	updateCastlingRights(&board.Castling, m, piece, captured)

	board.EnPassant = false
	if isPawn && isDoublePush(m.From, m.To) {
		board.EnPassant = true
		board.EPSquare = m.From.Offset(chess.Forward(colour), 0)
	}

	board.ToMove = colour.Opposite()
}

// reject builds the error returned for an illegal move.
func reject(m chess.Move, piece chess.Piece, reason error, detail string) error {
	e := &errors.MoveError{
		Err:    reason,
		From:   m.From,
		To:     m.To,
		Detail: detail,
	}
	if piece != chess.Empty {
		e.Piece = piece.String()
	}
	return e
}
