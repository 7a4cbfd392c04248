package chessrules

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
)

type (
	// Game is a chess game in progress. See engine.Game.
	Game = engine.Game

	// Option configures a Game.
	Option = engine.Option

	Colour         = chess.Colour
	Kind           = chess.Kind
	Piece          = chess.Piece
	Square         = chess.Square
	Move           = chess.Move
	GameStatus     = chess.Status
	CastlingRights = chess.CastlingRights

	// MoveError is the error returned by Game.TryMove.
	MoveError = errors.MoveError
)

const (
	White = chess.White
	Black = chess.Black
)

const (
	Pawn   = chess.Pawn
	Knight = chess.Knight
	Bishop = chess.Bishop
	Rook   = chess.Rook
	Queen  = chess.Queen
	King   = chess.King
)

const (
	Empty       = chess.Empty
	WhitePawn   = chess.WhitePawn
	WhiteKnight = chess.WhiteKnight
	WhiteBishop = chess.WhiteBishop
	WhiteRook   = chess.WhiteRook
	WhiteQueen  = chess.WhiteQueen
	WhiteKing   = chess.WhiteKing
	BlackPawn   = chess.BlackPawn
	BlackKnight = chess.BlackKnight
	BlackBishop = chess.BlackBishop
	BlackRook   = chess.BlackRook
	BlackQueen  = chess.BlackQueen
	BlackKing   = chess.BlackKing
)

const (
	Ongoing  = chess.Ongoing
	WhiteWin = chess.WhiteWin
	BlackWin = chess.BlackWin
	Draw     = chess.Draw
)

// Reasons a move is refused. Every error from Game.TryMove matches
// ErrIllegalMove and exactly one of the others under errors.Is.
var (
	ErrIllegalMove        = errors.ErrIllegalMove
	ErrOutOfBounds        = errors.ErrOutOfBounds
	ErrEmptySquare        = errors.ErrEmptySquare
	ErrWrongTurn          = errors.ErrWrongTurn
	ErrOwnPiece           = errors.ErrOwnPiece
	ErrIllegalGeometry    = errors.ErrIllegalGeometry
	ErrPathBlocked        = errors.ErrPathBlocked
	ErrKingInCheck        = errors.ErrKingInCheck
	ErrCastlingNotAllowed = errors.ErrCastlingNotAllowed
)

// New returns a game in the standard starting position, White to move.
func New(opts ...Option) *Game {
	return engine.New(opts...)
}

// WithTrace logs every attempted move to the writer.
var WithTrace = engine.WithTrace

// Sq builds a Square from a row and column.
func Sq(row, col int) Square {
	return chess.Sq(row, col)
}

// NewMove builds a Move from raw coordinates.
func NewMove(srcRow, srcCol, dstRow, dstCol int) Move {
	return chess.NewMove(srcRow, srcCol, dstRow, dstCol)
}

// Perft counts the leaf nodes of the legal move tree below g's position.
func Perft(g *Game, depth int) uint64 {
	return engine.Perft(g, depth)
}
