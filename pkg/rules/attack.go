package rules

// Direction and offset tables shared by attack detection and move generation.
var (
	straightDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	knightOffsets = [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingOffsets = [8][2]int{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}
)

// attacked reports whether the given square is attacked by any piece of the
// given color. The scan works outward from the square: leaper offsets for
// knights and kings, pawn capture squares, and rays for sliders.
func (p Position) attacked(sq Square, by Color) bool {
	file, rank := sq.File(), sq.Rank()

	for _, off := range knightOffsets {
		f, r := file+off[0], rank+off[1]
		if onBoard(f, r) && p.board[NewSquare(f, r)] == NewPiece(by, Knight) {
			return true
		}
	}

	for _, off := range kingOffsets {
		f, r := file+off[0], rank+off[1]
		if onBoard(f, r) && p.board[NewSquare(f, r)] == NewPiece(by, King) {
			return true
		}
	}

	// A pawn of color `by` attacks sq from one rank behind it, relative to
	// the pawn's own direction of travel.
	pawnRank := rank - by.pawnDirection()
	for _, df := range []int{-1, 1} {
		f := file + df
		if onBoard(f, pawnRank) && p.board[NewSquare(f, pawnRank)] == NewPiece(by, Pawn) {
			return true
		}
	}

	if p.rayHits(file, rank, by, straightDirs, Rook) {
		return true
	}
	return p.rayHits(file, rank, by, diagonalDirs, Bishop)
}

// rayHits walks each direction from (file, rank) until the board edge or the
// first piece, and reports whether that piece is an attacking slider of color
// `by`. A queen attacks along both rook and bishop rays.
func (p Position) rayHits(file, rank int, by Color, dirs [4][2]int, slider PieceType) bool {
	for _, dir := range dirs {
		f, r := file+dir[0], rank+dir[1]
		for onBoard(f, r) {
			piece := p.board[NewSquare(f, r)]
			if piece != NoPiece {
				if piece.Color() == by && (piece.Type() == slider || piece.Type() == Queen) {
					return true
				}
				break
			}
			f += dir[0]
			r += dir[1]
		}
	}
	return false
}

// InCheck reports whether the given color's king is attacked.
func (p Position) InCheck(c Color) bool {
	king := p.KingSquare(c)
	if king == NoSquare {
		return false
	}
	return p.attacked(king, c.Other())
}
