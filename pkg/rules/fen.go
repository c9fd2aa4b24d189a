package rules

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// pieceFromChar converts a FEN letter to a Piece, or NoPiece if unknown.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// ParseFEN parses a FEN string into a Position.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, errors.New("invalid FEN: not enough fields")
	}

	p := Position{EnPassant: NoSquare, FullMove: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, errors.New("invalid FEN: placement must have 8 ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				piece := pieceFromChar(ch)
				if piece == NoPiece || file > 7 {
					return Position{}, fmt.Errorf("invalid FEN: bad placement rank %q", rankStr)
				}
				p.board[NewSquare(file, rank)] = piece
				file++
			}
		}
		if file != 8 {
			return Position{}, fmt.Errorf("invalid FEN: rank %q does not cover 8 files", rankStr)
		}
	}

	switch fields[1] {
	case "w":
		p.Turn = White
	case "b":
		p.Turn = Black
	default:
		return Position{}, fmt.Errorf("invalid FEN: side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.Rights |= WhiteKingside
			case 'Q':
				p.Rights |= WhiteQueenside
			case 'k':
				p.Rights |= BlackKingside
			case 'q':
				p.Rights |= BlackQueenside
			default:
				return Position{}, fmt.Errorf("invalid FEN: castling field %q", fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return Position{}, fmt.Errorf("invalid FEN: en passant field %q", fields[3])
		}
		p.EnPassant = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Position{}, fmt.Errorf("invalid FEN: halfmove clock %q", fields[4])
		}
		p.HalfMove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return Position{}, fmt.Errorf("invalid FEN: fullmove number %q", fields[5])
		}
		p.FullMove = n
	}

	if p.KingSquare(White) == NoSquare || p.KingSquare(Black) == NoSquare {
		return Position{}, errors.New("invalid FEN: both kings must be present")
	}

	return p, nil
}

// FEN renders the position as a FEN string.
func (p Position) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.board[NewSquare(file, rank)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if p.Turn == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if p.Rights == 0 {
		sb.WriteByte('-')
	} else {
		if p.Rights&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if p.Rights&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if p.Rights&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if p.Rights&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	fmt.Fprintf(&sb, " %s %d %d", p.EnPassant, p.HalfMove, p.FullMove)
	return sb.String()
}
