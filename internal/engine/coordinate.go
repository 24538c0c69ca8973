package engine

import (
	"fmt"

	"github.com/BezouiStudio/chessmastery/internal/chess"
	"github.com/BezouiStudio/chessmastery/internal/errors"
)

// ParseSquare parses two-character algebraic square text such as "e4".
func ParseSquare(text string) (chess.Square, error) {
	if len(text) != 2 {
		return chess.Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	sq := chess.Sq(chess.Col(text[0]), chess.Rank(text[1]))
	if !sq.Valid() {
		return chess.Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// ParseCoordinateMove parses long/coordinate move text: a from square, a to
// square, and an optional promotion letter, e.g. "e2e4" or "e7e8q". This is
// the only move-input format the engine consumes.
func ParseCoordinateMove(text string) (from, to chess.Square, promotion chess.Piece, err error) {
	promotion = chess.Empty
	if len(text) != 4 && len(text) != 5 {
		return chess.Square{}, chess.Square{}, chess.Empty,
			fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	from, err = ParseSquare(text[0:2])
	if err != nil {
		return chess.Square{}, chess.Square{}, chess.Empty,
			fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	to, err = ParseSquare(text[2:4])
	if err != nil {
		return chess.Square{}, chess.Square{}, chess.Empty,
			fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	if len(text) == 5 {
		promotion = promotionPiece(text[4])
		if promotion == chess.Empty {
			return chess.Square{}, chess.Square{}, chess.Empty,
				fmt.Errorf("%q: invalid promotion letter: %w", text, errors.ErrInvalidMove)
		}
	}
	return from, to, promotion, nil
}

// promotionPiece maps a lowercase or uppercase promotion letter to a piece
// type. The king and pawn are not valid promotion choices.
func promotionPiece(c byte) chess.Piece {
	switch c {
	case 'q', 'Q':
		return chess.Queen
	case 'r', 'R':
		return chess.Rook
	case 'b', 'B':
		return chess.Bishop
	case 'n', 'N':
		return chess.Knight
	default:
		return chess.Empty
	}
}
