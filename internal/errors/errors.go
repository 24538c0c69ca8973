// Package errors provides sentinel errors and error types for the engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates malformed square text.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMove indicates malformed coordinate-move text.
	ErrInvalidMove = errors.New("invalid move text")

	// ErrNoPiece indicates an application request for an empty source
	// square. This is a caller bug, not a game-rule violation.
	ErrNoPiece = errors.New("no piece on source square")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move submitted to a finished game.
	ErrGameOver = errors.New("game is over")

	// ErrGameNotFound indicates an unknown game identifier.
	ErrGameNotFound = errors.New("game not found")
)

// MoveError wraps errors with position context: the FEN of the position the
// failure occurred in and the move text that caused it. It implements the
// error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	FEN      string // Position the error occurred in (if known)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
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
