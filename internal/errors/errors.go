// Package errors provides sentinel errors and error types for the chess
// rules engine. It defines the reasons a move can be rejected and a
// structured error type that preserves the move context while allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove is matched by every move rejection.
	ErrIllegalMove = errors.New("illegal move")

	// ErrOutOfBounds indicates a source or destination outside the board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrEmptySquare indicates there is no piece on the source square.
	ErrEmptySquare = errors.New("no piece on source square")

	// ErrWrongTurn indicates the piece belongs to the side not on move.
	ErrWrongTurn = errors.New("piece belongs to the side not on move")

	// ErrOwnPiece indicates the destination holds a piece of the mover's colour.
	ErrOwnPiece = errors.New("destination occupied by own piece")

	// ErrIllegalGeometry indicates the piece cannot move that way.
	ErrIllegalGeometry = errors.New("piece cannot move that way")

	// ErrPathBlocked indicates a piece stands between source and destination.
	ErrPathBlocked = errors.New("path is blocked")

	// ErrKingInCheck indicates the move would leave the mover's king attacked.
	ErrKingInCheck = errors.New("move leaves king in check")

	// ErrCastlingNotAllowed indicates a castling precondition is not met.
	ErrCastlingNotAllowed = errors.New("castling not allowed")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection reason with the move context. It implements
// the error interface and matches both its reason and ErrIllegalMove under
// errors.Is().
type MoveError struct {
	Err    error        // The rejection reason (one of the sentinels above)
	From   fmt.Stringer // Source square
	To     fmt.Stringer // Destination square
	Piece  string       // The moving piece (if any)
	Detail string       // Extra context, e.g. which castling condition failed
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.From != nil && e.To != nil {
		parts = append(parts, e.From.String()+"-"+e.To.String())
	}

	msg := ErrIllegalMove.Error()
	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " ")
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap returns the underlying reason, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIllegalMove; the reason itself is matched
// through Unwrap.
func (e *MoveError) Is(target error) bool {
	return target == ErrIllegalMove
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
