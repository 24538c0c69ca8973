package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/BezouiStudio/chessmastery/internal/chess"
	"github.com/BezouiStudio/chessmastery/internal/engine"
)

var (
	lightSquare = color.New(color.BgWhite, color.FgBlack)
	darkSquare  = color.New(color.BgCyan, color.FgBlack)
)

// drawBoard renders the position rank 8 down to rank 1 with checkered
// square backgrounds and coordinate labels.
func drawBoard(w io.Writer, board *chess.Board) {
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		fmt.Fprintf(w, "%c ", rank)
		for col := chess.Col('a'); col <= 'h'; col++ {
			cell := "   "
			if piece := board.Get(col, rank); piece != chess.Empty {
				cell = fmt.Sprintf(" %c ", engine.ColouredPieceToSANLetter(piece))
			}
			if (int(col-'a')+int(rank-'1'))%2 == 1 {
				lightSquare.Fprint(w, cell)
			} else {
				darkSquare.Fprint(w, cell)
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
}
