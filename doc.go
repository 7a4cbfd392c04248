// Package chessrules is a chess rules engine.
//
// A Game holds one position and changes only through ApplyMove (or TryMove,
// which also reports why a move was refused). Every accepted move updates the
// turn, castling rights, en passant target, half-move clock and the game
// status; a refused move changes nothing.
//
// Coordinates are (row, col) with row 0 being Black's back rank and row 7
// White's, columns 0-7 running from the a-file to the h-file:
//
//	g := chessrules.New()
//	g.ApplyMove(6, 4, 4, 4) // e2-e4
//	g.ApplyMove(1, 5, 2, 5) // f7-f6
//	g.ApplyMove(7, 3, 3, 7) // Qd1-h5+
//
// Castling is a king move of two columns. Pawns reaching the last row always
// become queens. Draws are recognised for stalemate, the fifty-move rule and
// bare kings or a single minor piece; repetition is not tracked.
package chessrules
