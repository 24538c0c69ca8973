package engine

import "github.com/BezouiStudio/chessmastery/internal/chess"

// Status classifies the position for the side to move. It is total over all
// valid positions and never errors: a side with at least one legal move is
// ongoing; with none it is checkmated if its king is attacked, stalemated
// otherwise.
func Status(board *chess.Board) chess.GameStatus {
	if HasLegalMoves(board) {
		return chess.Ongoing
	}
	if IsInCheck(board, board.ToMove) {
		return chess.Checkmate
	}
	return chess.Stalemate
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return Status(board) == chess.Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return Status(board) == chess.Stalemate
}
