package engine

import (
	"github.com/BezouiStudio/chessmastery/internal/chess"
	"github.com/BezouiStudio/chessmastery/internal/errors"
)

// Apply carries out a move and returns the resulting position together with
// the completed move record. The input board is never mutated; the returned
// board is an independent copy with side to move, castling rights, en
// passant target and clocks all recomputed.
//
// Apply does not verify legality; callers obtain candidate moves from
// LegalTargets. An empty from square fails with errors.ErrNoPiece. An
// omitted promotion piece for a pawn reaching its last rank defaults to a
// queen.
func Apply(board *chess.Board, from, to chess.Square, promotion chess.Piece) (*chess.Board, chess.Move, error) {
	piece := board.At(from)
	if piece == chess.Empty || piece == chess.Off {
		return nil, chess.Move{}, &errors.MoveError{
			Err:      errors.ErrNoPiece,
			FEN:      BoardToFEN(board),
			MoveText: from.String() + to.String(),
		}
	}

	next := board.Copy()
	colour := chess.ExtractColour(piece)
	kind := chess.ExtractPiece(piece)

	move := chess.Move{
		From:      from,
		To:        to,
		Piece:     piece,
		Captured:  next.At(to),
		Promotion: chess.Empty,
	}

	// En passant: the captured pawn sits one rank behind the destination,
	// not on it.
	if kind == chess.Pawn && next.EnPassant && to.Col == next.EPCol && to.Rank == next.EPRank && from.Col != to.Col {
		behind := to.Offset(0, -chess.ColourOffset(colour))
		move.Captured = next.At(behind)
		move.EnPassant = true
		next.Put(behind, chess.Empty)
	}

	next.Put(from, chess.Empty)

	// Promotion applies to a pawn reaching its last rank.
	lastRank := chess.Rank('8')
	if colour == chess.Black {
		lastRank = '1'
	}
	if kind == chess.Pawn && to.Rank == lastRank {
		if promotion == chess.Empty {
			promotion = chess.Queen
		}
		move.Promotion = promotion
		next.Put(to, chess.MakeColouredPiece(colour, promotion))
	} else {
		next.Put(to, piece)
	}

	// A king moving two files is castling: relocate the rook to the square
	// adjacent to the king's destination.
	if kind == chess.King && (int(to.Col)-int(from.Col) == 2 || int(from.Col)-int(to.Col) == 2) {
		applyCastleRook(next, &move, colour)
	}

	if kind == chess.King {
		next.SetKingSquare(colour, to)
		if colour == chess.White {
			next.WKingCastle = 0
			next.WQueenCastle = 0
		} else {
			next.BKingCastle = 0
			next.BQueenCastle = 0
		}
	}

	// Moving a rook off its home square, or capturing one there, clears
	// that single flag.
	if kind == chess.Rook {
		clearCastlingRightForRook(next, colour, from)
	}
	if move.Captured != chess.Empty && chess.ExtractPiece(move.Captured) == chess.Rook && !move.EnPassant {
		clearCastlingRightForRook(next, chess.ExtractColour(move.Captured), to)
	}

	// The en passant target exists for exactly the one reply after a
	// double push.
	next.EnPassant = false
	next.EPCol = 0
	next.EPRank = 0
	if kind == chess.Pawn {
		if colour == chess.White && from.Rank == '2' && to.Rank == '4' {
			next.EnPassant = true
			next.EPCol = to.Col
			next.EPRank = '3'
		} else if colour == chess.Black && from.Rank == '7' && to.Rank == '5' {
			next.EnPassant = true
			next.EPCol = to.Col
			next.EPRank = '6'
		}
	}

	if kind == chess.Pawn || move.Captured != chess.Empty {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if colour == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = colour.Opposite()

	return next, move, nil
}

// applyCastleRook relocates the rook for a castling king move and records
// which side was castled.
func applyCastleRook(board *chess.Board, move *chess.Move, colour chess.Colour) {
	rank := move.From.Rank
	kingside := move.To.Col > move.From.Col

	var rookFromCol, rookToCol chess.Col
	if kingside {
		move.Castle = chess.CastleKingside
		rookFromCol = 'h'
		rookToCol = move.To.Col - 1
		if colour == chess.White && board.WKingCastle != 0 {
			rookFromCol = board.WKingCastle
		} else if colour == chess.Black && board.BKingCastle != 0 {
			rookFromCol = board.BKingCastle
		}
	} else {
		move.Castle = chess.CastleQueenside
		rookFromCol = 'a'
		rookToCol = move.To.Col + 1
		if colour == chess.White && board.WQueenCastle != 0 {
			rookFromCol = board.WQueenCastle
		} else if colour == chess.Black && board.BQueenCastle != 0 {
			rookFromCol = board.BQueenCastle
		}
	}

	rook := board.Get(rookFromCol, rank)
	board.Set(rookFromCol, rank, chess.Empty)
	board.Set(rookToCol, rank, rook)
}

// clearCastlingRightForRook removes the single castling right tied to a
// rook's home square when that rook moves or is captured there.
func clearCastlingRightForRook(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if colour == chess.White && sq.Rank == '1' {
		if sq.Col == board.WKingCastle {
			board.WKingCastle = 0
		}
		if sq.Col == board.WQueenCastle {
			board.WQueenCastle = 0
		}
	} else if colour == chess.Black && sq.Rank == '8' {
		if sq.Col == board.BKingCastle {
			board.BKingCastle = 0
		}
		if sq.Col == board.BQueenCastle {
			board.BQueenCastle = 0
		}
	}
}
