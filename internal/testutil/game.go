package testutil

import (
	"testing"

	"github.com/BezouiStudio/chessmastery/internal/chess"
	"github.com/BezouiStudio/chessmastery/internal/engine"
)

// BoardFromFEN builds a board from FEN, failing the test on error.
func BoardFromFEN(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// BoardAfterMoves plays a sequence of coordinate moves ("e2e4", "e7e8q")
// from the initial position and returns the resulting board.
func BoardAfterMoves(t *testing.T, moves ...string) *chess.Board {
	t.Helper()
	board := engine.NewInitialBoard()
	for _, text := range moves {
		from, to, promo, err := engine.ParseCoordinateMove(text)
		if err != nil {
			t.Fatalf("ParseCoordinateMove(%q) error: %v", text, err)
		}
		board, _, err = engine.Apply(board, from, to, promo)
		if err != nil {
			t.Fatalf("Apply(%q) error: %v", text, err)
		}
	}
	return board
}

// MustSquare parses algebraic square text, failing the test on error.
func MustSquare(t *testing.T, text string) chess.Square {
	t.Helper()
	sq, err := engine.ParseSquare(text)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", text, err)
	}
	return sq
}
