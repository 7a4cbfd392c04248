// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents an uncoloured chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// IsMinor reports whether the kind is a knight or a bishop.
func (k Kind) IsMinor() bool {
	return k == Knight || k == Bishop
}

// Piece is the content of a single square: Empty or one of the twelve
// coloured pieces.
type Piece int

const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// numKinds is the number of piece kinds per colour.
const numKinds = 6

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind <= NoKind || kind > King {
		return Empty
	}
	if colour == White {
		return Piece(kind)
	}
	return Piece(kind) + numKinds
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether the square content is Empty.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Kind extracts the piece kind. Empty yields NoKind.
func (p Piece) Kind() Kind {
	if p <= Empty || p > BlackKing {
		return NoKind
	}
	return Kind((int(p)-1)%numKinds + 1)
}

// Colour extracts the colour of a piece. The result is meaningless for Empty.
func (p Piece) Colour() Colour {
	if p >= BlackPawn {
		return Black
	}
	return White
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p != Empty && p == MakePiece(colour, kind)
}

// Letter returns the FEN-style letter of the piece: uppercase for White,
// lowercase for Black and '.' for Empty.
func (p Piece) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// String returns the string representation of a piece.
func (p Piece) String() string {
	if p == Empty {
		return "Empty"
	}
	if p.Kind() == NoKind {
		return "Unknown"
	}
	return p.Colour().String() + p.Kind().String()
}

// PieceFromLetter is the inverse of Letter.
func PieceFromLetter(c byte) (Piece, bool) {
	for p := Empty; p <= BlackKing; p++ {
		if p.Letter() == c {
			return p, true
		}
	}
	return Empty, false
}

// Board dimensions and home rows.
const (
	BoardSize = 8

	// BlackBackRow and WhiteBackRow are the rows holding the pieces at the
	// start of the game. Row 0 is the top of the board.
	BlackBackRow = 0
	WhiteBackRow = BoardSize - 1

	BlackPawnRow = 1
	WhitePawnRow = BoardSize - 2

	// Columns of the castling rooks and the king.
	QueensideRookCol = 0
	KingsideRookCol  = BoardSize - 1
	KingCol          = 4
)

// BackRow returns the row the given colour's pieces start on.
func BackRow(colour Colour) int {
	if colour == White {
		return WhiteBackRow
	}
	return BlackBackRow
}

// PawnRow returns the row the given colour's pawns start on.
func PawnRow(colour Colour) int {
	if colour == White {
		return WhitePawnRow
	}
	return BlackPawnRow
}

// PromotionRow returns the row on which the given colour's pawns promote.
func PromotionRow(colour Colour) int {
	return BackRow(colour.Opposite())
}

// Forward returns the row delta of a pawn advance: -1 for White, +1 for Black.
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// Square is a (row, col) board coordinate.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by dr rows and dc columns.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, BoardSize-s.Row)
}

// Move is a source-destination square pair.
type Move struct {
	From Square
	To   Square
}

// NewMove builds a move from raw coordinates.
func NewMove(srcRow, srcCol, dstRow, dstCol int) Move {
	return Move{From: Sq(srcRow, srcCol), To: Sq(dstRow, dstCol)}
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Status is the terminal classification of a game.
type Status int

const (
	Ongoing Status = iota
	WhiteWin
	BlackWin
	Draw
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "Ongoing"
	case WhiteWin:
		return "WhiteWin"
	case BlackWin:
		return "BlackWin"
	case Draw:
		return "Draw"
	}
	return "Unknown"
}

// Result returns the PGN result token for the status.
func (s Status) Result() string {
	switch s {
	case WhiteWin:
		return "1-0"
	case BlackWin:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// WinFor returns the status in which the given colour has won.
func WinFor(colour Colour) Status {
	if colour == White {
		return WhiteWin
	}
	return BlackWin
}
