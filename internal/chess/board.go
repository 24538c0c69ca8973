package chess

// Board represents a chess position with all state needed by the rules
// engine: occupancy, side to move, castling rights, en passant target and
// clocks. Boards are value types; Copy produces an independent position
// and no engine operation mutates its input.
type Board struct {
	// The board squares with a hedge of 2 around for knight move calculation.
	// Squares[col][rank] where col and rank are 0-11 (with hedge).
	Squares [Hedge + BoardSize + Hedge][Hedge + BoardSize + Hedge]Piece

	// Who has the next move.
	ToMove Colour

	// The current full-move number.
	MoveNumber uint

	// Rook starting columns for the 4 castling options; 0 when the
	// corresponding right has been lost.
	WKingCastle  Col
	WQueenCastle Col
	BKingCastle  Col
	BQueenCastle Col

	// Keep track of where the two kings are for check detection.
	WKingCol  Col
	WKingRank Rank
	BKingCol  Col
	BKingRank Rank

	// Is en passant capture possible? If so then EPCol and EPRank hold
	// the target square, valid for exactly one reply.
	EnPassant bool
	EPCol     Col
	EPRank    Rank

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	// Initialize all squares to Off (hedge) or Empty
	for col := 0; col < Hedge+BoardSize+Hedge; col++ {
		for rank := 0; rank < Hedge+BoardSize+Hedge; rank++ {
			if col >= Hedge && col < Hedge+BoardSize &&
				rank >= Hedge && rank < Hedge+BoardSize {
				b.Squares[col][rank] = Empty
			} else {
				b.Squares[col][rank] = Off
			}
		}
	}
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for col := Hedge; col < Hedge+BoardSize; col++ {
		for rank := Hedge; rank < Hedge+BoardSize; rank++ {
			b.Squares[col][rank] = Empty
		}
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col+Hedge][Hedge] = W(backRank[col])
		b.Squares[col+Hedge][Hedge+1] = W(Pawn)
		b.Squares[col+Hedge][Hedge+6] = B(Pawn)
		b.Squares[col+Hedge][Hedge+7] = B(backRank[col])
	}

	b.WKingCol = 'e'
	b.WKingRank = '1'
	b.BKingCol = 'e'
	b.BKingRank = '8'

	b.WKingCastle = 'h'
	b.WQueenCastle = 'a'
	b.BKingCastle = 'h'
	b.BQueenCastle = 'a'

	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.HalfmoveClock = 0
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c == 0 || r == 0 {
		return Off
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c != 0 && r != 0 {
		b.Squares[c][r] = piece
	}
}

// At returns the piece on the given square.
func (b *Board) At(sq Square) Piece {
	return b.Get(sq.Col, sq.Rank)
}

// Put places a piece on the given square.
func (b *Board) Put(sq Square, piece Piece) {
	b.Set(sq.Col, sq.Rank, piece)
}

// KingSquare returns the tracked king square for the given colour.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return Square{Col: b.WKingCol, Rank: b.WKingRank}
	}
	return Square{Col: b.BKingCol, Rank: b.BKingRank}
}

// SetKingSquare updates the tracked king square for the given colour.
func (b *Board) SetKingSquare(colour Colour, sq Square) {
	if colour == White {
		b.WKingCol, b.WKingRank = sq.Col, sq.Rank
	} else {
		b.BKingCol, b.BKingRank = sq.Col, sq.Rank
	}
}

// EPSquare returns the en passant target square and whether one exists.
func (b *Board) EPSquare() (Square, bool) {
	if !b.EnPassant {
		return Square{}, false
	}
	return Square{Col: b.EPCol, Rank: b.EPRank}, true
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
