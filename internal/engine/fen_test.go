package engine

import (
	stderrors "errors"
	"testing"

	"github.com/BezouiStudio/chessmastery/internal/chess"
	"github.com/BezouiStudio/chessmastery/internal/errors"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr bool
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.Get('e', '1') == chess.W(chess.King) &&
					b.Get('e', '8') == chess.B(chess.King) &&
					b.Get('e', '2') == chess.W(chess.Pawn) &&
					b.Get('e', '7') == chess.B(chess.Pawn) &&
					b.ToMove == chess.White &&
					b.WKingCastle == 'h' &&
					b.WQueenCastle == 'a'
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Get('e', '4') == chess.W(chess.Pawn) &&
					b.Get('e', '2') == chess.Empty &&
					b.ToMove == chess.Black &&
					b.EnPassant &&
					b.EPCol == 'e' &&
					b.EPRank == '3'
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.WKingCastle == 0 &&
					b.WQueenCastle == 0 &&
					b.BKingCastle == 0 &&
					b.BQueenCastle == 0
			},
		},
		{
			name: "clocks parsed",
			fen:  "4k3/8/8/8/8/8/8/4K3 b - - 13 37",
			checkFn: func(b *chess.Board) bool {
				return b.HalfmoveClock == 13 && b.MoveNumber == 37
			},
		},
		{name: "empty string", fen: "", wantErr: true},
		{name: "missing clocks", fen: "8/8/8/8/8/8/8/4K3 w - -", wantErr: true},
		{name: "seven ranks", fen: "8/8/8/8/8/8/4K3 w - - 0 1", wantErr: true},
		{name: "short rank", fen: "rnbqkbnr/ppppppp1/8/8/8/8/PPPPPP1/RNBQKBNR w KQkq - 0 1", wantErr: true},
		{name: "overfull rank", fen: "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", wantErr: true},
		{name: "bad piece letter", fen: "rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", wantErr: true},
		{name: "bad side to move", fen: "8/8/8/8/8/8/8/4K3 x - - 0 1", wantErr: true},
		{name: "bad castling flag", fen: "8/8/8/8/8/8/8/4K3 w Z - 0 1", wantErr: true},
		{name: "bad en passant square", fen: "8/8/8/8/8/8/8/4K3 w - e9 0 1", wantErr: true},
		{name: "bad halfmove clock", fen: "8/8/8/8/8/8/8/4K3 w - - x 1", wantErr: true},
		{name: "bad fullmove number", fen: "8/8/8/8/8/8/8/4K3 w - - 0 x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBoardFromFEN() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !stderrors.Is(err, errors.ErrInvalidFEN) {
					t.Errorf("error %v does not wrap ErrInvalidFEN", err)
				}
				return
			}
			if tt.checkFn != nil && !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN() board check failed")
			}
		})
	}
}

func TestBoardToFENRoundTrip(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 4 20",
		"8/8/8/8/8/8/8/4K3 w - - 0 1",
		"8/2k5/8/8/8/8/5PPP/6K1 b - - 99 50",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if got := BoardToFEN(board); got != fen {
				t.Errorf("BoardToFEN() = %q, want %q", got, fen)
			}
		})
	}
}

// Round-trip law over positions reached by play: decode(encode(p)) must
// reproduce p exactly.
func TestRoundTripAfterMoves(t *testing.T) {
	board := NewInitialBoard()
	for _, text := range []string{"e2e4", "c7c5", "g1f3", "d7d6", "f1b5", "c8d7", "e1g1"} {
		from, to, promo, err := ParseCoordinateMove(text)
		if err != nil {
			t.Fatalf("ParseCoordinateMove(%q) error: %v", text, err)
		}
		board, _, err = Apply(board, from, to, promo)
		if err != nil {
			t.Fatalf("Apply(%q) error: %v", text, err)
		}

		fen := BoardToFEN(board)
		reparsed, err := NewBoardFromFEN(fen)
		if err != nil {
			t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
		}
		if got := BoardToFEN(reparsed); got != fen {
			t.Errorf("after %s: round trip %q != %q", text, got, fen)
		}
		if *reparsed != *board {
			t.Errorf("after %s: reparsed board differs from original", text)
		}
	}
}

func TestNewInitialBoard(t *testing.T) {
	board := NewInitialBoard()
	if board == nil {
		t.Fatal("NewInitialBoard() = nil, want non-nil board")
	}
	if got := BoardToFEN(board); got != InitialFEN {
		t.Errorf("BoardToFEN(initial) = %q, want %q", got, InitialFEN)
	}
}
