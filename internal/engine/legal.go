package engine

import "github.com/BezouiStudio/chessmastery/internal/chess"

// LegalTargets returns the legal destination squares for the piece on sq.
// The square must hold a piece of the side to move; an empty square or an
// opponent's piece yields an empty result, not an error. Each pseudo-legal
// candidate is simulated on an independent board copy and kept only if the
// mover's own king is not attacked afterwards. The input board is never
// mutated.
func LegalTargets(board *chess.Board, sq chess.Square) []chess.Square {
	piece := board.At(sq)
	if piece == chess.Empty || piece == chess.Off {
		return nil
	}
	colour := chess.ExtractColour(piece)
	if colour != board.ToMove {
		return nil
	}

	var legal []chess.Square
	for _, to := range PseudoLegalTargets(board, sq) {
		// Promotion choice cannot affect king safety; simulate with the
		// default queen.
		after, _, err := Apply(board, sq, to, chess.Empty)
		if err != nil {
			continue
		}
		if !IsInCheck(after, colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// AllLegalMoves enumerates every legal (from, to) pair for the side to move.
func AllLegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			from := chess.Sq(col, rank)
			for _, to := range LegalTargets(board, from) {
				moves = append(moves, chess.Move{From: from, To: to, Piece: board.At(from)})
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal
// move, short-circuiting on the first piece that has one.
func HasLegalMoves(board *chess.Board) bool {
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			if len(LegalTargets(board, chess.Sq(col, rank))) > 0 {
				return true
			}
		}
	}
	return false
}
