package rules

// Color is the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// pawnDirection is the rank delta a pawn of this color advances by.
func (c Color) pawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// backRank is the rank the color's pieces start on.
func (c Color) backRank() int {
	if c == White {
		return 0
	}
	return 7
}

// finalRank is the rank a pawn of this color promotes on.
func (c Color) finalRank() int {
	if c == White {
		return 7
	}
	return 0
}

// PieceType is a colorless piece kind.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// Piece encodes a piece type in the low three bits and the color in bit 3,
// so that p&7 is the type and p&8 != 0 means Black.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)

	BlackPawn   Piece = Piece(Pawn) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackBishop Piece = Piece(Bishop) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackQueen  Piece = Piece(Queen) | 8
	BlackKing   Piece = Piece(King) | 8
)

// NewPiece combines a color and a colorless type into a Piece.
func NewPiece(c Color, t PieceType) Piece {
	if t == NoPieceType {
		return NoPiece
	}
	p := Piece(t)
	if c == Black {
		p |= 8
	}
	return p
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

var fenLetters = map[PieceType]byte{
	Pawn:   'p',
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
	King:   'k',
}

// String returns the FEN letter of the piece, uppercase for White.
func (p Piece) String() string {
	if p == NoPiece {
		return "-"
	}
	b := fenLetters[p.Type()]
	if p.Color() == White {
		b -= 'a' - 'A'
	}
	return string(b)
}

var whiteGlyphs = map[PieceType]rune{
	Pawn:   '♙',
	Knight: '♘',
	Bishop: '♗',
	Rook:   '♖',
	Queen:  '♕',
	King:   '♔',
}

var blackGlyphs = map[PieceType]rune{
	Pawn:   '♟',
	Knight: '♞',
	Bishop: '♝',
	Rook:   '♜',
	Queen:  '♛',
	King:   '♚',
}

// Rune returns the unicode chess glyph for the piece, or a space for NoPiece.
func (p Piece) Rune() rune {
	if p == NoPiece {
		return ' '
	}
	if p.Color() == White {
		return whiteGlyphs[p.Type()]
	}
	return blackGlyphs[p.Type()]
}
