package engine

import "github.com/BezouiStudio/chessmastery/internal/chess"

// PseudoLegalTargets enumerates the candidate destination squares for the
// piece on sq, obeying movement patterns and occupancy but not king safety.
// An empty or off-board square yields no candidates.
func PseudoLegalTargets(board *chess.Board, sq chess.Square) []chess.Square {
	piece := board.At(sq)
	if piece == chess.Empty || piece == chess.Off {
		return nil
	}
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnTargets(board, sq, colour)
	case chess.Knight:
		return offsetTargets(board, sq, colour, knightOffsets)
	case chess.Bishop:
		return slidingTargets(board, sq, colour, diagonalDirs)
	case chess.Rook:
		return slidingTargets(board, sq, colour, straightDirs)
	case chess.Queen:
		targets := slidingTargets(board, sq, colour, diagonalDirs)
		return append(targets, slidingTargets(board, sq, colour, straightDirs)...)
	case chess.King:
		targets := offsetTargets(board, sq, colour, kingOffsets)
		return append(targets, castlingTargets(board, sq, colour)...)
	default:
		return nil
	}
}

// pawnTargets generates pawn pushes, captures and en passant candidates.
func pawnTargets(board *chess.Board, sq chess.Square, colour chess.Colour) []chess.Square {
	var targets []chess.Square
	dir := chess.ColourOffset(colour)

	// Single push onto an empty square.
	one := sq.Offset(0, dir)
	if one.Valid() && board.At(one) == chess.Empty {
		targets = append(targets, one)

		// Double push from the home rank when both squares are empty.
		homeRank := chess.Rank('2')
		if colour == chess.Black {
			homeRank = '7'
		}
		if sq.Rank == homeRank {
			two := sq.Offset(0, 2*dir)
			if board.At(two) == chess.Empty {
				targets = append(targets, two)
			}
		}
	}

	// Diagonal captures, including the en passant target square which is
	// empty but captured onto all the same.
	for _, dc := range []int{-1, 1} {
		diag := sq.Offset(dc, dir)
		if !diag.Valid() {
			continue
		}
		occupant := board.At(diag)
		if occupant != chess.Empty && chess.ExtractColour(occupant) != colour {
			targets = append(targets, diag)
			continue
		}
		if ep, ok := board.EPSquare(); ok && diag == ep {
			targets = append(targets, diag)
		}
	}

	return targets
}

// offsetTargets filters a fixed offset set to in-board squares not occupied
// by a same-colour piece.
func offsetTargets(board *chess.Board, sq chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var targets []chess.Square
	for _, off := range offsets {
		to := sq.Offset(off[0], off[1])
		if !to.Valid() {
			continue
		}
		occupant := board.At(to)
		if occupant == chess.Empty || chess.ExtractColour(occupant) != colour {
			targets = append(targets, to)
		}
	}
	return targets
}

// slidingTargets ray-casts per direction: empty squares are included and the
// ray continues; the first occupied square is included only as a capture.
func slidingTargets(board *chess.Board, sq chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var targets []chess.Square
	for _, dir := range dirs {
		to := sq.Offset(dir[0], dir[1])
		for to.Valid() {
			occupant := board.At(to)
			if occupant != chess.Empty {
				if chess.ExtractColour(occupant) != colour {
					targets = append(targets, to)
				}
				break
			}
			targets = append(targets, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return targets
}

// castlingTargets offers the two-square king moves when the corresponding
// rights flag is set, the squares between king and rook are empty, the king
// is not in check, and none of the start, transit and destination squares
// is attacked by the opponent.
func castlingTargets(board *chess.Board, sq chess.Square, colour chess.Colour) []chess.Square {
	var kingsideRook, queensideRook chess.Col
	homeRank := chess.Rank('1')
	if colour == chess.White {
		kingsideRook = board.WKingCastle
		queensideRook = board.WQueenCastle
	} else {
		homeRank = '8'
		kingsideRook = board.BKingCastle
		queensideRook = board.BQueenCastle
	}
	if sq.Rank != homeRank {
		return nil
	}

	var targets []chess.Square
	if kingsideRook != 0 && canCastle(board, sq, chess.Sq(kingsideRook, homeRank), 1, colour) {
		targets = append(targets, sq.Offset(2, 0))
	}
	if queensideRook != 0 && canCastle(board, sq, chess.Sq(queensideRook, homeRank), -1, colour) {
		targets = append(targets, sq.Offset(-2, 0))
	}
	return targets
}

// canCastle checks path emptiness and king-path safety for one castling side.
func canCastle(board *chess.Board, kingSq, rookSq chess.Square, dir int, colour chess.Colour) bool {
	if chess.ExtractPiece(board.At(rookSq)) != chess.Rook {
		return false
	}

	// All squares strictly between king and rook must be empty.
	for sq := kingSq.Offset(dir, 0); sq != rookSq; sq = sq.Offset(dir, 0) {
		if !sq.Valid() || board.At(sq) != chess.Empty {
			return false
		}
	}

	// Start, transit and destination squares must all be unattacked.
	opponent := colour.Opposite()
	for step := 0; step <= 2; step++ {
		if IsSquareAttacked(board, kingSq.Offset(step*dir, 0), opponent) {
			return false
		}
	}
	return true
}
