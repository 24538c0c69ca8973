// Package engine implements the chess rules: attack computation, move
// generation, legality filtering, move application and position codecs.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/BezouiStudio/chessmastery/internal/chess"
	"github.com/BezouiStudio/chessmastery/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SAN piece characters for FEN strings (always English).
var sanPieceChars = map[chess.Piece]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// SANPieceLetter returns the SAN letter for a piece.
func SANPieceLetter(piece chess.Piece) byte {
	if c, ok := sanPieceChars[piece]; ok {
		return c
	}
	return '?'
}

// ColouredPieceToSANLetter returns the SAN letter for a coloured piece.
func ColouredPieceToSANLetter(colouredPiece chess.Piece) byte {
	piece := chess.ExtractPiece(colouredPiece)
	letter := SANPieceLetter(piece)
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string. All six fields must be
// present and well formed; anything else fails with errors.ErrInvalidFEN.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, fmt.Errorf("expected 6 fields, got %d: %w", len(parts), errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// The field must decode to exactly 8 ranks of 8 files each.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected 8 ranks, got %d: %w", len(ranks), errors.ErrInvalidFEN)
	}

	rank := chess.Rank('8')
	for _, rankStr := range ranks {
		col := chess.Col('a')
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				col += chess.Col(c - '0')
			default:
				piece := ConvertFENCharToPiece(byte(c))
				if piece == chess.Empty {
					return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
				}
				if col > 'h' {
					return fmt.Errorf("rank %c overfull: %w", rank, errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}

				board.Set(col, rank, chess.MakeColouredPiece(colour, piece))

				if piece == chess.King {
					board.SetKingSquare(colour, chess.Sq(col, rank))
				}
				col++
			}
		}
		if col != 'h'+1 {
			return fmt.Errorf("rank %c has %d files: %w", rank, int(col-'a'), errors.ErrInvalidFEN)
		}
		rank--
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move %q: %w", field, errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, field string) error {
	board.WKingCastle = 0
	board.WQueenCastle = 0
	board.BKingCastle = 0
	board.BQueenCastle = 0

	if field == "-" {
		return nil
	}

	for _, c := range field {
		switch c {
		case 'K':
			board.WKingCastle = 'h'
		case 'Q':
			board.WQueenCastle = 'a'
		case 'k':
			board.BKingCastle = 'h'
		case 'q':
			board.BQueenCastle = 'a'
		default:
			return fmt.Errorf("invalid castling flag %q: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	board.EnPassant = false
	if field == "-" {
		return nil
	}
	if len(field) != 2 {
		return fmt.Errorf("invalid en passant square %q: %w", field, errors.ErrInvalidFEN)
	}
	sq := chess.Sq(chess.Col(field[0]), chess.Rank(field[1]))
	if !sq.Valid() {
		return fmt.Errorf("invalid en passant square %q: %w", field, errors.ErrInvalidFEN)
	}
	board.EnPassant = true
	board.EPCol = sq.Col
	board.EPRank = sq.Rank
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfmove, fullmove string) error {
	hm, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid halfmove clock %q: %w", halfmove, errors.ErrInvalidFEN)
	}
	fm, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid fullmove number %q: %w", fullmove, errors.ErrInvalidFEN)
	}
	board.HalfmoveClock = uint(hm)
	board.MoveNumber = uint(fm)
	return nil
}

// BoardToFEN converts a board to a FEN string. It is the exact left inverse
// of NewBoardFromFEN for any board that codec produces.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		emptyCount := 0
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToSANLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > '1' {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	if board.WKingCastle != 0 {
		sb.WriteByte('K')
		hasCastling = true
	}
	if board.WQueenCastle != 0 {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if board.BKingCastle != 0 {
		sb.WriteByte('k')
		hasCastling = true
	}
	if board.BQueenCastle != 0 {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteByte(byte(board.EPCol))
		sb.WriteByte(byte(board.EPRank))
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
