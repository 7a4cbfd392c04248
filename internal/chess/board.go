package chess

import "strings"

// CastlingRights records which pieces involved in castling have left their
// original squares. Flags only ever go from false to true.
type CastlingRights struct {
	WKingMoved          bool
	WQueensideRookMoved bool
	WKingsideRookMoved  bool
	BKingMoved          bool
	BQueensideRookMoved bool
	BKingsideRookMoved  bool
}

// KingMoved reports whether the given colour's king has moved.
func (r CastlingRights) KingMoved(colour Colour) bool {
	if colour == White {
		return r.WKingMoved
	}
	return r.BKingMoved
}

// RookMoved reports whether the given colour's rook on the king or queen
// side has left its corner.
func (r CastlingRights) RookMoved(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return r.WKingsideRookMoved
	case colour == White:
		return r.WQueensideRookMoved
	case kingside:
		return r.BKingsideRookMoved
	default:
		return r.BQueensideRookMoved
	}
}

// CanCastle reports whether neither the king nor the relevant rook has moved.
func (r CastlingRights) CanCastle(colour Colour, kingside bool) bool {
	return !r.KingMoved(colour) && !r.RookMoved(colour, kingside)
}

// SetKingMoved marks the given colour's king as moved.
func (r *CastlingRights) SetKingMoved(colour Colour) {
	if colour == White {
		r.WKingMoved = true
	} else {
		r.BKingMoved = true
	}
}

// SetRookMoved marks the given colour's king or queen side rook as moved.
func (r *CastlingRights) SetRookMoved(colour Colour, kingside bool) {
	switch {
	case colour == White && kingside:
		r.WKingsideRookMoved = true
	case colour == White:
		r.WQueensideRookMoved = true
	case kingside:
		r.BKingsideRookMoved = true
	default:
		r.BQueensideRookMoved = true
	}
}

// Board represents a chess board with all state needed for the game.
// It is a plain value: assigning a Board copies every square and flag.
type Board struct {
	// Squares is indexed [row][col]; row 0 is Black's back rank.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// Is en passant capture possible? If so then EPSquare is the square
	// the capturing pawn lands on.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{ToMove: White}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{ToMove: White}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[BlackBackRow][col] = B(backRank[col])
		b.Squares[BlackPawnRow][col] = B(Pawn)
		b.Squares[WhitePawnRow][col] = W(Pawn)
		b.Squares[WhiteBackRow][col] = W(backRank[col])
	}
}

// Get returns the piece at the given square. The square must be in bounds.
func (b *Board) Get(sq Square) Piece {
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece at the given square. The square must be in bounds.
func (b *Board) Set(sq Square, piece Piece) {
	b.Squares[sq.Row][sq.Col] = piece
}

// IsEmpty reports whether the in-bounds square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == Empty
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing returns the square of the given colour's king. ok is false if
// there is no such king on the board.
func (b *Board) FindKing(colour Colour) (sq Square, ok bool) {
	king := MakePiece(colour, King)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Sq(row, col), true
			}
		}
	}
	return Square{}, false
}

// String renders the squares as eight lines of piece letters, row 0 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.Squares[row][col].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
