package chess

// CastleSide records which castling move, if any, a move performed.
type CastleSide int

const (
	NoCastle CastleSide = iota
	CastleKingside
	CastleQueenside
)

// Move represents a completed move: the squares chosen by the caller plus
// the metadata the applier computed while carrying it out.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece that moved (coloured value).
	Piece Piece

	// The piece captured, Empty if no capture. For en passant captures
	// this is the pawn removed from behind the destination.
	Captured Piece

	// The piece type promoted to (Empty if not a promotion).
	Promotion Piece

	// Whether the capture was en passant.
	EnPassant bool

	// Which castling move this was, if any.
	Castle CastleSide
}

// IsCapture returns true if this move captured a piece.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsPromotion returns true if this move promoted a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// IsCastle returns true if this move was a castling move.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}
