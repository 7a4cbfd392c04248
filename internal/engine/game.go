package engine

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules/internal/chess"
)

// Game is a single chess game: the current board and its status. It keeps
// no move history.
//
// A Game is not safe for concurrent use; callers must serialise calls to
// ApplyMove and TryMove. Use Clone to hand a position to another goroutine.
type Game struct {
	board  chess.Board
	status chess.Status
	trace  io.Writer
}

// Option configures a Game.
type Option func(*Game)

// WithTrace writes one line per attempted move to w: the move and either
// the resulting status or the reason it was rejected.
func WithTrace(w io.Writer) Option {
	return func(g *Game) {
		if w != nil {
			g.trace = w
		}
	}
}

// New creates a game in the standard starting position with White to move.
func New(opts ...Option) *Game {
	g := &Game{
		status: chess.Ongoing,
		trace:  io.Discard,
	}
	g.board.SetupInitialPosition()
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PieceAt returns the occupant of (row, col). Both must be in 0-7.
func (g *Game) PieceAt(row, col int) chess.Piece {
	return g.board.Squares[row][col]
}

// IsWhiteTurn reports whether White is to move.
func (g *Game) IsWhiteTurn() bool {
	return g.board.ToMove == chess.White
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	return g.board.ToMove
}

// GameStatus returns the status computed after the last accepted move.
func (g *Game) GameStatus() chess.Status {
	return g.status
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return IsInCheck(&g.board, g.board.ToMove)
}

// EnPassantTarget returns the square a pawn may capture onto en passant on
// this move, if any.
func (g *Game) EnPassantTarget() (chess.Square, bool) {
	return g.board.EPSquare, g.board.EnPassant
}

// HalfmoveClock returns the number of half-moves since the last pawn move or
// capture.
func (g *Game) HalfmoveClock() int {
	return g.board.HalfmoveClock
}

// CastlingRights returns the castling moved-flags.
func (g *Game) CastlingRights() chess.CastlingRights {
	return g.board.Castling
}

// Board returns a copy of the current board.
func (g *Game) Board() chess.Board {
	return g.board
}

// LegalMoves returns every legal move for the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return LegalMoves(&g.board)
}

// IsLegal reports whether m would be accepted, without playing it.
func (g *Game) IsLegal(m chess.Move) bool {
	_, err := play(&g.board, m)
	return err == nil
}

// Clone returns an independent copy of the game. The clone does not trace.
func (g *Game) Clone() *Game {
	c := *g
	c.trace = io.Discard
	return &c
}

// ApplyMove attempts to move the piece on (srcRow, srcCol) to (dstRow,
// dstCol). It returns true if the move was legal and has been committed, in
// which case turn, castling rights, en passant target, half-move clock and
// status are all updated. On false nothing has changed.
func (g *Game) ApplyMove(srcRow, srcCol, dstRow, dstCol int) bool {
	return g.TryMove(chess.NewMove(srcRow, srcCol, dstRow, dstCol)) == nil
}

// TryMove is ApplyMove with the rejection reason. The returned error is an
// *errors.MoveError matching errors.ErrIllegalMove and one specific reason.
func (g *Game) TryMove(m chess.Move) error {
	next, err := play(&g.board, m)
	if err != nil {
		fmt.Fprintf(g.trace, "%s rejected: %v\n", m, err)
		return err
	}

	g.board = *next
	g.status = EvaluateStatus(&g.board)
	fmt.Fprintf(g.trace, "%s accepted: %s to move, %s\n", m, g.board.ToMove, g.status)
	return nil
}
