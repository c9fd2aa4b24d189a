package rules

// CastlingRights is a bitmask of the four castling permissions.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	AllCastling = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Position is a complete game state snapshot: board, side to move, castling
// rights, en passant target, and move counters. It is a value type; Apply
// returns a new Position and never mutates the receiver.
type Position struct {
	board     [64]Piece
	Turn      Color
	Rights    CastlingRights
	EnPassant Square
	// HalfMove counts plies since the last capture or pawn move. Tracked
	// for FEN fidelity; the fifty-move rule is not adjudicated.
	HalfMove int
	FullMove int
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Start returns the standard starting position.
func Start() Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// At returns the piece on the given square.
func (p Position) At(sq Square) Piece {
	return p.board[sq]
}

// KingSquare returns the square of the given color's king.
func (p Position) KingSquare(c Color) Square {
	want := NewPiece(c, King)
	for sq := A1; sq <= H8; sq++ {
		if p.board[sq] == want {
			return sq
		}
	}
	return NoSquare
}

// Pieces returns the occupied squares belonging to the given color.
func (p Position) Pieces(c Color) []Square {
	squares := make([]Square, 0, 16)
	for sq := A1; sq <= H8; sq++ {
		if piece := p.board[sq]; piece != NoPiece && piece.Color() == c {
			squares = append(squares, sq)
		}
	}
	return squares
}
