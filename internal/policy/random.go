// Package policy provides move-selection policies decoupled from move
// generation. The engine only reports the legal-move set; picking one is a
// caller concern.
package policy

import (
	"github.com/BezouiStudio/chessmastery/internal/chess"
	"github.com/BezouiStudio/chessmastery/internal/engine"
)

// Source supplies the randomness for a policy. *math/rand.Rand satisfies
// it; tests substitute a fixed source for determinism.
type Source interface {
	Intn(n int) int
}

// Random picks uniformly among the legal moves of the side to move.
type Random struct {
	Src Source
}

// NewRandom builds a uniform-random policy over the given source.
func NewRandom(src Source) *Random {
	return &Random{Src: src}
}

// Pick returns a uniformly chosen legal move for the side to move and true,
// or a zero move and false when no legal move exists.
func (p *Random) Pick(board *chess.Board) (chess.Move, bool) {
	moves := engine.AllLegalMoves(board)
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	return moves[p.Src.Intn(len(moves))], true
}
