package rules

// rookHome maps each castling right to the starting square of its rook.
var rookHome = map[CastlingRights]Square{
	WhiteKingside:  H1,
	WhiteQueenside: A1,
	BlackKingside:  H8,
	BlackQueenside: A8,
}

// Apply plays the move and returns the resulting position. The move is
// assumed to come from the generator for this position; Apply performs no
// legality checking of its own. The receiver is left untouched.
func (p Position) Apply(m Move) Position {
	next := p
	piece := p.board[m.From]

	capture := p.board[m.To] != NoPiece || m.Kind == EnPassant
	if capture || piece.Type() == Pawn {
		next.HalfMove = 0
	} else {
		next.HalfMove++
	}

	next.board[m.To] = piece
	next.board[m.From] = NoPiece
	next.EnPassant = NoSquare

	switch m.Kind {
	case DoubleStep:
		next.EnPassant = NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	case EnPassant:
		// The captured pawn is beside the moving pawn, one rank behind
		// the destination.
		next.board[NewSquare(m.To.File(), m.From.Rank())] = NoPiece
	case CastleKingside:
		rank := m.From.Rank()
		next.board[NewSquare(5, rank)] = next.board[NewSquare(7, rank)]
		next.board[NewSquare(7, rank)] = NoPiece
	case CastleQueenside:
		rank := m.From.Rank()
		next.board[NewSquare(3, rank)] = next.board[NewSquare(0, rank)]
		next.board[NewSquare(0, rank)] = NoPiece
	}

	if m.Promotion != NoPieceType {
		next.board[m.To] = NewPiece(p.Turn, m.Promotion)
	}

	switch piece.Type() {
	case King:
		if p.Turn == White {
			next.Rights &^= WhiteKingside | WhiteQueenside
		} else {
			next.Rights &^= BlackKingside | BlackQueenside
		}
	case Rook:
		for right, home := range rookHome {
			if m.From == home {
				next.Rights &^= right
			}
		}
	}

	// Capturing a rook on its home square removes the opponent's right on
	// that side, even if the rook never moved.
	for right, home := range rookHome {
		if m.To == home {
			next.Rights &^= right
		}
	}

	if p.Turn == Black {
		next.FullMove++
	}
	next.Turn = p.Turn.Other()
	return next
}
