package rules

// Status classifies a position for the side to move.
type Status uint8

const (
	InProgress Status = iota
	// Checkmate: the side to move is in check and has no legal moves.
	Checkmate
	// Stalemate: the side to move is not in check and has no legal moves.
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "in progress"
	}
}

// Status reports whether the game has ended for the side to move.
func (p Position) Status() Status {
	if p.HasLegalMoves() {
		return InProgress
	}
	if p.InCheck(p.Turn) {
		return Checkmate
	}
	return Stalemate
}
