package rules

// promotionPieces are the kinds a pawn may promote to, in the order the
// promotion picker cycles through them.
var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// PromotionPieces returns the promotion choices in picker order.
func PromotionPieces() []PieceType { return promotionPieces[:] }

// MovesFrom returns the legal moves for the piece on the given square. The
// result is empty if the square is empty or holds a piece of the side not to
// move. Pseudo-legal moves that would leave the mover's own king attacked are
// filtered out.
func MovesFrom(p Position, from Square) []Move {
	piece := p.At(from)
	if piece == NoPiece || piece.Color() != p.Turn {
		return nil
	}

	pseudo := p.pseudoMovesFrom(from)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if !p.Apply(m).InCheck(p.Turn) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMoves returns every legal move for the side to move.
func LegalMoves(p Position) []Move {
	var moves []Move
	for _, sq := range p.Pieces(p.Turn) {
		moves = append(moves, MovesFrom(p, sq)...)
	}
	return moves
}

// HasLegalMoves reports whether the side to move has at least one legal
// move. It short-circuits on the first one found.
func (p Position) HasLegalMoves() bool {
	for _, sq := range p.Pieces(p.Turn) {
		for _, m := range p.pseudoMovesFrom(sq) {
			if !p.Apply(m).InCheck(p.Turn) {
				return true
			}
		}
	}
	return false
}

// pseudoMovesFrom generates the moves the piece on `from` could make by its
// movement pattern alone, before the king-safety filter. Castling moves are
// the exception: their through-check conditions are verified here because
// they cannot be expressed as an Apply-then-InCheck test on a single square.
func (p Position) pseudoMovesFrom(from Square) []Move {
	piece := p.board[from]
	switch piece.Type() {
	case Pawn:
		return p.pawnMoves(from)
	case Knight:
		return p.leaperMoves(from, knightOffsets)
	case Bishop:
		return p.sliderMoves(from, diagonalDirs[:])
	case Rook:
		return p.sliderMoves(from, straightDirs[:])
	case Queen:
		return p.sliderMoves(from, append(straightDirs[:], diagonalDirs[:]...))
	case King:
		return append(p.leaperMoves(from, kingOffsets), p.castlingMoves()...)
	}
	return nil
}

// leaperMoves generates knight and king pattern moves: each offset square
// that is on the board and not occupied by a friendly piece.
func (p Position) leaperMoves(from Square, offsets [8][2]int) []Move {
	us := p.board[from].Color()
	moves := make([]Move, 0, 8)
	for _, off := range offsets {
		f, r := from.File()+off[0], from.Rank()+off[1]
		if !onBoard(f, r) {
			continue
		}
		to := NewSquare(f, r)
		if target := p.board[to]; target == NoPiece || target.Color() != us {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// sliderMoves generates bishop, rook, and queen moves: each direction is
// walked until the board edge, a capture, or a friendly blocker.
func (p Position) sliderMoves(from Square, dirs [][2]int) []Move {
	us := p.board[from].Color()
	var moves []Move
	for _, dir := range dirs {
		f, r := from.File()+dir[0], from.Rank()+dir[1]
		for onBoard(f, r) {
			to := NewSquare(f, r)
			target := p.board[to]
			if target == NoPiece {
				moves = append(moves, Move{From: from, To: to})
				f += dir[0]
				r += dir[1]
				continue
			}
			if target.Color() != us {
				moves = append(moves, Move{From: from, To: to})
			}
			break
		}
	}
	return moves
}

// pawnMoves generates single and double advances, diagonal captures, en
// passant, and promotion variants.
func (p Position) pawnMoves(from Square) []Move {
	us := p.board[from].Color()
	dir := us.pawnDirection()
	file, rank := from.File(), from.Rank()
	var moves []Move

	push := func(m Move) {
		if m.To.Rank() == us.finalRank() {
			for _, promo := range promotionPieces {
				m.Promotion = promo
				moves = append(moves, m)
			}
			return
		}
		moves = append(moves, m)
	}

	if oneUp := rank + dir; onBoard(file, oneUp) && p.board[NewSquare(file, oneUp)] == NoPiece {
		push(Move{From: from, To: NewSquare(file, oneUp)})

		startRank := us.backRank() + dir
		if twoUp := rank + 2*dir; rank == startRank && p.board[NewSquare(file, twoUp)] == NoPiece {
			moves = append(moves, Move{From: from, To: NewSquare(file, twoUp), Kind: DoubleStep})
		}
	}

	for _, df := range []int{-1, 1} {
		f, r := file+df, rank+dir
		if !onBoard(f, r) {
			continue
		}
		to := NewSquare(f, r)
		if target := p.board[to]; target != NoPiece && target.Color() != us {
			push(Move{From: from, To: to})
		} else if to == p.EnPassant {
			moves = append(moves, Move{From: from, To: to, Kind: EnPassant})
		}
	}

	return moves
}

// castlingMoves generates the castling moves available to the side to move:
// rights intact, squares between king and rook empty, and the king neither in
// check nor crossing or landing on an attacked square.
func (p Position) castlingMoves() []Move {
	us := p.Turn
	rank := us.backRank()
	kingFrom := NewSquare(4, rank)
	if p.board[kingFrom] != NewPiece(us, King) || p.InCheck(us) {
		return nil
	}
	them := us.Other()

	kingside, queenside := WhiteKingside, WhiteQueenside
	if us == Black {
		kingside, queenside = BlackKingside, BlackQueenside
	}

	var moves []Move

	if p.Rights&kingside != 0 {
		f1, g1 := NewSquare(5, rank), NewSquare(6, rank)
		if p.board[f1] == NoPiece && p.board[g1] == NoPiece &&
			!p.attacked(f1, them) && !p.attacked(g1, them) {
			moves = append(moves, Move{From: kingFrom, To: g1, Kind: CastleKingside})
		}
	}

	if p.Rights&queenside != 0 {
		b1, c1, d1 := NewSquare(1, rank), NewSquare(2, rank), NewSquare(3, rank)
		if p.board[b1] == NoPiece && p.board[c1] == NoPiece && p.board[d1] == NoPiece &&
			!p.attacked(c1, them) && !p.attacked(d1, them) {
			moves = append(moves, Move{From: kingFrom, To: c1, Kind: CastleQueenside})
		}
	}

	return moves
}
