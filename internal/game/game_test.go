package game

import (
	stderrors "errors"
	"testing"

	"github.com/BezouiStudio/chessmastery/internal/chess"
	"github.com/BezouiStudio/chessmastery/internal/engine"
	"github.com/BezouiStudio/chessmastery/internal/errors"
	"github.com/BezouiStudio/chessmastery/internal/testutil"
)

func TestNewGame(t *testing.T) {
	g := New()
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
	testutil.AssertEqual(t, g.Status(), chess.Ongoing)
	testutil.AssertEqual(t, g.ToMove(), chess.White)
	testutil.AssertEqual(t, g.Ply(), 0)
}

func TestNewFromFEN(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/4K2R w K - 0 1"
	g, err := NewFromFEN(fen)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.FEN(), fen)

	_, err = NewFromFEN("not a position")
	testutil.AssertError(t, err)
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrInvalidFEN))
}

func TestPlaySequence(t *testing.T) {
	g := New()

	for _, text := range []string{"e2e4", "e7e5", "g1f3"} {
		_, _, err := g.PlayCoordinate(text)
		testutil.AssertNoError(t, err, "move %s", text)
	}

	testutil.AssertEqual(t, g.Ply(), 3)
	testutil.AssertEqual(t, g.Log(), []string{"e4", "e5", "Nf3"})
	testutil.AssertEqual(t, g.ToMove(), chess.Black)
}

func TestPlayRejectsIllegalMove(t *testing.T) {
	g := New()

	_, _, err := g.PlayCoordinate("e2e5")
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrIllegalMove), "pawn cannot triple-push")

	_, _, err = g.PlayCoordinate("e4e5")
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrIllegalMove), "no piece on source square")

	_, _, err = g.PlayCoordinate("e7e5")
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrIllegalMove), "opponent piece is not playable")

	_, _, err = g.PlayCoordinate("zz")
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrInvalidMove), "malformed text")

	// The failed attempts must not advance the game.
	testutil.AssertEqual(t, g.Ply(), 0)
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
}

func TestPlayRejectsMovesAfterGameOver(t *testing.T) {
	g := New()
	for _, text := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		_, _, err := g.PlayCoordinate(text)
		testutil.AssertNoError(t, err, "move %s", text)
	}
	testutil.AssertEqual(t, g.Status(), chess.Checkmate)

	_, _, err := g.PlayCoordinate("a2a3")
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrGameOver))
}

func TestLegalTargets(t *testing.T) {
	g := New()
	targets := g.LegalTargets(testutil.MustSquare(t, "e2"))
	testutil.AssertEqual(t, len(targets), 2, "e2 pawn has push and double push")
}

func TestLogIsACopy(t *testing.T) {
	g := New()
	_, _, err := g.PlayCoordinate("e2e4")
	testutil.AssertNoError(t, err)

	log := g.Log()
	log[0] = "mangled"
	testutil.AssertEqual(t, g.Log(), []string{"e4"})
}
