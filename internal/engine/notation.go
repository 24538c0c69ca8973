package engine

import (
	"strings"

	"github.com/BezouiStudio/chessmastery/internal/chess"
)

// FormatMove renders a completed move against the position it produced:
// piece letter (omitted for pawns), origin-file prefix for pawn captures,
// 'x' on capture, destination square, '=Q'-style promotion suffix, then
// '+' or '#' from re-evaluating the resulting position. Castling renders
// as O-O / O-O-O.
//
// Two same-type pieces able to reach the same destination are not
// disambiguated; callers needing strict SAN must post-process.
func FormatMove(move chess.Move, after *chess.Board) string {
	var sb strings.Builder

	switch move.Castle {
	case chess.CastleKingside:
		sb.WriteString("O-O")
	case chess.CastleQueenside:
		sb.WriteString("O-O-O")
	default:
		kind := chess.ExtractPiece(move.Piece)
		if kind == chess.Pawn {
			if move.IsCapture() {
				sb.WriteByte(byte(move.From.Col))
			}
		} else {
			sb.WriteByte(SANPieceLetter(kind))
		}
		if move.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
		if move.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(SANPieceLetter(move.Promotion))
		}
	}

	sb.WriteString(checkSuffix(after))
	return sb.String()
}

// checkSuffix returns "#" if the side to move is checkmated, "+" if merely
// in check, and "" otherwise.
func checkSuffix(after *chess.Board) string {
	if !IsInCheck(after, after.ToMove) {
		return ""
	}
	if Status(after) == chess.Checkmate {
		return "#"
	}
	return "+"
}
