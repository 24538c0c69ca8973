package chess

import "testing"

func TestSquareRowColRoundTrip(t *testing.T) {
	for col := Col('a'); col <= 'h'; col++ {
		for rank := Rank('1'); rank <= '8'; rank++ {
			sq := Sq(col, rank)
			row, c := sq.RowCol()
			got, err := SquareFromRowCol(row, c)
			if err != nil {
				t.Fatalf("SquareFromRowCol(%d, %d) error: %v", row, c, err)
			}
			if got != sq {
				t.Errorf("round trip for %v = %v", sq, got)
			}
		}
	}
}

func TestSquareRowColOrientation(t *testing.T) {
	tests := []struct {
		square   string
		row, col int
	}{
		{"a8", 0, 0},
		{"h8", 0, 7},
		{"a1", 7, 0},
		{"h1", 7, 7},
		{"e4", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			sq := Sq(Col(tt.square[0]), Rank(tt.square[1]))
			row, col := sq.RowCol()
			if row != tt.row || col != tt.col {
				t.Errorf("%s.RowCol() = (%d, %d), want (%d, %d)", tt.square, row, col, tt.row, tt.col)
			}
		})
	}
}

func TestSquareFromRowColRejectsOutOfRange(t *testing.T) {
	for _, pair := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-3, 12}} {
		if _, err := SquareFromRowCol(pair[0], pair[1]); err == nil {
			t.Errorf("SquareFromRowCol(%d, %d) = nil error, want rejection", pair[0], pair[1])
		}
	}
}

func TestSquareString(t *testing.T) {
	if got := Sq('e', '4').String(); got != "e4" {
		t.Errorf("Sq('e','4').String() = %q, want %q", got, "e4")
	}
}

func TestSquareValid(t *testing.T) {
	if !Sq('a', '1').Valid() {
		t.Error("Sq('a','1').Valid() = false, want true")
	}
	if Sq('i', '1').Valid() {
		t.Error("Sq('i','1').Valid() = true, want false")
	}
	if Sq('a', '9').Valid() {
		t.Error("Sq('a','9').Valid() = true, want false")
	}
	if (Square{}).Valid() {
		t.Error("zero Square.Valid() = true, want false")
	}
}
