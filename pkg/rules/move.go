package rules

// MoveKind distinguishes moves that have side effects beyond relocating the
// moved piece.
type MoveKind uint8

const (
	Standard MoveKind = iota
	// DoubleStep is a pawn's two-square advance from its starting rank. It
	// sets the en passant target for the opponent's next move.
	DoubleStep
	// EnPassant captures the pawn that just double-stepped. The captured
	// pawn sits behind the destination square.
	EnPassant
	CastleKingside
	CastleQueenside
)

// Move describes a legal move. Promotion is NoPieceType except for pawn
// moves onto the final rank, which are generated once per promotion piece.
type Move struct {
	From      Square
	To        Square
	Kind      MoveKind
	Promotion PieceType
}

// String renders the move in UCI notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string(fenLetters[m.Promotion])
	}
	return s
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion != NoPieceType }
