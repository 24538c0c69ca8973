// Package game provides the caller-owned session layer around the engine:
// one Game owns one position lineage and its move log. The engine itself
// keeps no memory of past positions.
package game

import (
	"github.com/BezouiStudio/chessmastery/internal/chess"
	"github.com/BezouiStudio/chessmastery/internal/engine"
	"github.com/BezouiStudio/chessmastery/internal/errors"
)

// Game tracks the current position and the formatted log of moves that
// produced it. Game methods are not safe for concurrent use; callers drive
// one goroutine per game. Distinct games share no state.
type Game struct {
	board *chess.Board
	log   []string
}

// New starts a game from the standard initial position.
func New() *Game {
	return &Game{board: engine.NewInitialBoard()}
}

// NewFromFEN starts a game from an arbitrary position.
func NewFromFEN(fen string) (*Game, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{board: board}, nil
}

// Board returns the current position. The returned board is shared; callers
// must not mutate it (engine operations never do).
func (g *Game) Board() *chess.Board {
	return g.board
}

// FEN returns the current position in FEN form.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

// Status classifies the current position for the side to move.
func (g *Game) Status() chess.GameStatus {
	return engine.Status(g.board)
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.board.ToMove
}

// Log returns the formatted notation of every move played so far.
func (g *Game) Log() []string {
	out := make([]string, len(g.log))
	copy(out, g.log)
	return out
}

// LegalTargets returns the legal destinations for the piece on sq.
func (g *Game) LegalTargets(sq chess.Square) []chess.Square {
	return engine.LegalTargets(g.board, sq)
}

// Play validates a move against the legal-move set, applies it, advances
// the position and returns the completed move with its notation. A move
// absent from the legal set fails with errors.ErrIllegalMove; a move on a
// finished game fails with errors.ErrGameOver.
func (g *Game) Play(from, to chess.Square, promotion chess.Piece) (chess.Move, string, error) {
	if engine.Status(g.board) != chess.Ongoing {
		return chess.Move{}, "", &errors.MoveError{
			Err:      errors.ErrGameOver,
			FEN:      g.FEN(),
			MoveText: from.String() + to.String(),
		}
	}

	legal := false
	for _, sq := range engine.LegalTargets(g.board, from) {
		if sq == to {
			legal = true
			break
		}
	}
	if !legal {
		return chess.Move{}, "", &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			FEN:      g.FEN(),
			MoveText: from.String() + to.String(),
		}
	}

	next, move, err := engine.Apply(g.board, from, to, promotion)
	if err != nil {
		return chess.Move{}, "", err
	}

	notation := engine.FormatMove(move, next)
	g.board = next
	g.log = append(g.log, notation)
	return move, notation, nil
}

// PlayCoordinate parses coordinate move text ("e2e4", "e7e8q") and plays it.
func (g *Game) PlayCoordinate(text string) (chess.Move, string, error) {
	from, to, promotion, err := engine.ParseCoordinateMove(text)
	if err != nil {
		return chess.Move{}, "", err
	}
	return g.Play(from, to, promotion)
}

// Ply returns the number of half-moves played in this session.
func (g *Game) Ply() int {
	return len(g.log)
}
