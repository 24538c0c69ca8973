package engine

import (
	"testing"

	"github.com/BezouiStudio/chessmastery/internal/chess"
)

func squareSet(squares []chess.Square) map[string]bool {
	set := make(map[string]bool, len(squares))
	for _, sq := range squares {
		set[sq.String()] = true
	}
	return set
}

func TestInitialPositionHasTwentyLegalMoves(t *testing.T) {
	moves := AllLegalMoves(NewInitialBoard())
	if len(moves) != 20 {
		t.Errorf("AllLegalMoves(initial) = %d moves, want 20", len(moves))
	}
}

func TestLegalTargetsEmptyAndOpponentSquares(t *testing.T) {
	board := NewInitialBoard()

	if targets := LegalTargets(board, chess.Sq('e', '4')); targets != nil {
		t.Errorf("LegalTargets(empty square) = %v, want nil", targets)
	}
	// Black piece while White is to move.
	if targets := LegalTargets(board, chess.Sq('e', '7')); targets != nil {
		t.Errorf("LegalTargets(opponent square) = %v, want nil", targets)
	}
}

func TestLegalTargetsKnight(t *testing.T) {
	board := NewInitialBoard()
	got := squareSet(LegalTargets(board, chess.Sq('g', '1')))
	want := map[string]bool{"f3": true, "h3": true}
	if len(got) != len(want) {
		t.Fatalf("LegalTargets(g1) = %v, want f3 h3", got)
	}
	for sq := range want {
		if !got[sq] {
			t.Errorf("LegalTargets(g1) missing %s", sq)
		}
	}
}

func TestPinnedPieceHasNoLegalMoves(t *testing.T) {
	// Black bishop on b4 pins the knight on d2 against the king on e1.
	board, err := NewBoardFromFEN("4k3/8/8/8/1b6/8/3N4/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if len(PseudoLegalTargets(board, chess.Sq('d', '2'))) == 0 {
		t.Fatal("pinned knight should still have pseudo-legal targets")
	}
	if targets := LegalTargets(board, chess.Sq('d', '2')); len(targets) != 0 {
		t.Errorf("LegalTargets(pinned knight) = %v, want none", targets)
	}
}

func TestCheckMustBeAddressed(t *testing.T) {
	// White king on e1 checked by the rook on e8; the a2 pawn cannot move.
	board, err := NewBoardFromFEN("4r1k1/8/8/8/8/8/P7/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if targets := LegalTargets(board, chess.Sq('a', '2')); len(targets) != 0 {
		t.Errorf("LegalTargets(a2 pawn while in check) = %v, want none", targets)
	}
	if targets := LegalTargets(board, chess.Sq('e', '1')); len(targets) == 0 {
		t.Error("checked king should have escape squares")
	}
}

func TestLegalMovesNeverLeaveOwnKingAttacked(t *testing.T) {
	fens := []string{
		InitialFEN,
		"4r1k1/8/8/8/8/8/P7/4K3 w - - 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
	}

	for _, fen := range fens {
		board, err := NewBoardFromFEN(fen)
		if err != nil {
			t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
		}
		mover := board.ToMove
		for _, move := range AllLegalMoves(board) {
			after, _, err := Apply(board, move.From, move.To, chess.Empty)
			if err != nil {
				t.Fatalf("Apply(%s%s) error: %v", move.From, move.To, err)
			}
			if IsInCheck(after, mover) {
				t.Errorf("legal move %s%s leaves own king attacked in %q", move.From, move.To, fen)
			}
		}
	}
}

func TestEnPassantCaptureIsLegal(t *testing.T) {
	// Black just played d7d5; the white e5 pawn may capture en passant.
	board, err := NewBoardFromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatal(err)
	}
	got := squareSet(LegalTargets(board, chess.Sq('e', '5')))
	if !got["d6"] {
		t.Errorf("LegalTargets(e5) = %v, want en passant capture d6 included", got)
	}
	if !got["e6"] {
		t.Errorf("LegalTargets(e5) = %v, want push e6 included", got)
	}
}

func TestCastlingLegality(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		king      string
		target    string
		wantOffer bool
	}{
		{
			name:      "kingside castle offered",
			fen:       "4k3/8/8/8/8/8/8/4K2R w K - 0 1",
			king:      "e1",
			target:    "g1",
			wantOffer: true,
		},
		{
			name:      "queenside castle offered",
			fen:       "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1",
			king:      "e1",
			target:    "c1",
			wantOffer: true,
		},
		{
			name:      "excluded without rights",
			fen:       "4k3/8/8/8/8/8/8/4K2R w - - 0 1",
			king:      "e1",
			target:    "g1",
			wantOffer: false,
		},
		{
			name:      "excluded when path occupied",
			fen:       "4k3/8/8/8/8/8/8/4KB1R w K - 0 1",
			king:      "e1",
			target:    "g1",
			wantOffer: false,
		},
		{
			name:      "excluded when king in check",
			fen:       "4r1k1/8/8/8/8/8/8/4K2R w K - 0 1",
			king:      "e1",
			target:    "g1",
			wantOffer: false,
		},
		{
			name:      "excluded when transit square attacked",
			fen:       "5r1k/8/8/8/8/8/8/4K2R w K - 0 1",
			king:      "e1",
			target:    "g1",
			wantOffer: false,
		},
		{
			name:      "excluded when destination attacked",
			fen:       "6rk/8/8/8/8/8/8/4K2R w K - 0 1",
			king:      "e1",
			target:    "g1",
			wantOffer: false,
		},
		{
			name:      "queenside unaffected by attack on b1",
			fen:       "1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 1",
			king:      "e1",
			target:    "c1",
			wantOffer: true,
		},
		{
			name:      "black kingside castle offered",
			fen:       "4k2r/8/8/8/8/8/8/4K3 b k - 0 1",
			king:      "e8",
			target:    "g8",
			wantOffer: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			king, err := ParseSquare(tt.king)
			if err != nil {
				t.Fatal(err)
			}
			got := squareSet(LegalTargets(board, king))
			if got[tt.target] != tt.wantOffer {
				t.Errorf("castle target %s offered = %v, want %v (targets %v)",
					tt.target, got[tt.target], tt.wantOffer, got)
			}
		})
	}
}
