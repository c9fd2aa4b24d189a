package rules

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Used to validate the move generator against known node counts.
func Perft(p Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(p)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(p.Apply(m), depth-1)
	}
	return nodes
}

// Divide returns the perft node count under each root move.
func Divide(p Position, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	for _, m := range LegalMoves(p) {
		div[m] = Perft(p.Apply(m), depth-1)
	}
	return div
}
