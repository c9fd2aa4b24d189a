package game

import (
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/exp/slices"

	"chessmate/pkg/rules"
)

// Phase is the state of the turn controller.
type Phase int

const (
	// AwaitingSelection: waiting for the side to move to pick a piece.
	AwaitingSelection Phase = iota
	// AwaitingDestination: a piece is selected, waiting for a target square.
	AwaitingDestination
	// PromotingPawn: a promotion move was chosen, waiting for the piece pick.
	PromotingPawn
	// Checkmate and Stalemate are terminal.
	Checkmate
	Stalemate
)

// Game drives one chess game: it owns the current position, the selection
// state machine, captured pieces, move history, and the per-side clock.
// All input arrives through Select and the promotion methods; illegal input
// resets or ignores the selection and is never an error.
type Game struct {
	name  string
	pos   rules.Position
	phase Phase

	selected rules.Square
	moves    []rules.Move // legal moves of the selected piece

	promoTarget rules.Square
	promoIndex  int

	taken   []rules.Piece
	history []rules.Move
	clock   *Clock
}

// New starts a game from the standard starting position.
func New() *Game {
	return newGame(rules.Start())
}

// FromFEN starts a game from an arbitrary position.
func FromFEN(fen string) (*Game, error) {
	pos, err := rules.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(pos), nil
}

func newGame(pos rules.Position) *Game {
	g := &Game{
		name:     petname.Generate(2, "-"),
		pos:      pos,
		selected: rules.NoSquare,
		clock:    NewClock(),
	}
	g.phase = phaseFor(pos.Status())
	if g.phase == AwaitingSelection {
		g.clock.Start(pos.Turn)
	}
	return g
}

func phaseFor(s rules.Status) Phase {
	switch s {
	case rules.Checkmate:
		return Checkmate
	case rules.Stalemate:
		return Stalemate
	default:
		return AwaitingSelection
	}
}

// Restart abandons the current game and sets up a fresh one with a new name.
func (g *Game) Restart() {
	*g = *New()
}

// Select feeds a square selection into the state machine. Selecting an empty
// or opposing square while nothing is selected is ignored; selecting an
// illegal destination clears the selection.
func (g *Game) Select(sq rules.Square) {
	switch g.phase {
	case AwaitingSelection:
		g.trySelect(sq)

	case AwaitingDestination:
		if sq == g.selected {
			g.clearSelection()
			return
		}
		if idx := slices.IndexFunc(g.moves, func(m rules.Move) bool { return m.To == sq }); idx >= 0 {
			m := g.moves[idx]
			if m.IsPromotion() {
				g.phase = PromotingPawn
				g.promoTarget = sq
				g.promoIndex = 0
				return
			}
			g.applyMove(m)
			return
		}
		// Selecting another of your own pieces re-selects; anything else
		// clears the selection.
		g.clearSelection()
		g.trySelect(sq)
	}
}

func (g *Game) trySelect(sq rules.Square) {
	piece := g.pos.At(sq)
	if piece == rules.NoPiece || piece.Color() != g.pos.Turn {
		return
	}
	moves := rules.MovesFrom(g.pos, sq)
	if len(moves) == 0 {
		return
	}
	g.selected = sq
	g.moves = moves
	g.phase = AwaitingDestination
}

func (g *Game) clearSelection() {
	g.selected = rules.NoSquare
	g.moves = nil
	g.phase = AwaitingSelection
}

// PromotionChoice returns the piece the promotion picker currently points at.
func (g *Game) PromotionChoice() rules.PieceType {
	return rules.PromotionPieces()[g.promoIndex]
}

// CyclePromotion moves the promotion picker left (-1) or right (+1).
func (g *Game) CyclePromotion(delta int) {
	if g.phase != PromotingPawn {
		return
	}
	n := len(rules.PromotionPieces())
	g.promoIndex = (g.promoIndex + delta + n) % n
}

// ConfirmPromotion applies the promotion move with the picked piece.
func (g *Game) ConfirmPromotion() {
	if g.phase != PromotingPawn {
		return
	}
	choice := g.PromotionChoice()
	for _, m := range g.moves {
		if m.To == g.promoTarget && m.Promotion == choice {
			g.applyMove(m)
			return
		}
	}
}

func (g *Game) applyMove(m rules.Move) {
	if captured := g.capturedBy(m); captured != rules.NoPiece {
		g.taken = append(g.taken, captured)
	}

	g.pos = g.pos.Apply(m)
	g.history = append(g.history, m)
	g.selected = rules.NoSquare
	g.moves = nil
	g.promoTarget = rules.NoSquare

	g.phase = phaseFor(g.pos.Status())
	if g.phase == AwaitingSelection {
		g.clock.Switch(g.pos.Turn)
	} else {
		g.clock.Stop()
	}
}

func (g *Game) capturedBy(m rules.Move) rules.Piece {
	if m.Kind == rules.EnPassant {
		return rules.NewPiece(g.pos.Turn.Other(), rules.Pawn)
	}
	return g.pos.At(m.To)
}

// Name is the randomly generated label of this game.
func (g *Game) Name() string { return g.name }

// Position returns the current position snapshot.
func (g *Game) Position() rules.Position { return g.pos }

// Phase returns the controller state.
func (g *Game) Phase() Phase { return g.phase }

// Clock returns the per-side move clock.
func (g *Game) Clock() *Clock { return g.clock }

// Selected returns the currently selected square, or NoSquare.
func (g *Game) Selected() rules.Square { return g.selected }

// Destinations returns the legal destination squares of the selected piece,
// deduplicated across promotion variants, for highlighting.
func (g *Game) Destinations() []rules.Square {
	var squares []rules.Square
	for _, m := range g.moves {
		if !slices.Contains(squares, m.To) {
			squares = append(squares, m.To)
		}
	}
	return squares
}

// LastMove returns the most recent applied move, if any.
func (g *Game) LastMove() (rules.Move, bool) {
	if len(g.history) == 0 {
		return rules.Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// History returns all applied moves in order.
func (g *Game) History() []rules.Move { return g.history }

// Taken returns the captured pieces of the given color, in capture order.
func (g *Game) Taken(c rules.Color) []rules.Piece {
	var pieces []rules.Piece
	for _, p := range g.taken {
		if p.Color() == c {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// CheckedKing returns the square of the side-to-move's king when it is in
// check, for highlighting.
func (g *Game) CheckedKing() (rules.Square, bool) {
	if g.phase != Stalemate && g.pos.InCheck(g.pos.Turn) {
		return g.pos.KingSquare(g.pos.Turn), true
	}
	return rules.NoSquare, false
}

// StatusLine is the prompt shown above the board for the current phase.
func (g *Game) StatusLine() string {
	switch g.phase {
	case AwaitingDestination:
		return fmt.Sprintf("%s: select a target square", g.pos.Turn)
	case PromotingPawn:
		return fmt.Sprintf("Promote to %s? Left/Right to cycle, Enter to confirm", pieceName(g.PromotionChoice()))
	case Checkmate:
		return fmt.Sprintf("Checkmate! %s wins. Press R to restart", g.pos.Turn.Other())
	case Stalemate:
		return fmt.Sprintf("Stalemate: %s cannot move. Press R to restart", g.pos.Turn)
	default:
		return fmt.Sprintf("%s: select a piece to move", g.pos.Turn)
	}
}

func pieceName(t rules.PieceType) string {
	switch t {
	case rules.Queen:
		return "queen"
	case rules.Rook:
		return "rook"
	case rules.Bishop:
		return "bishop"
	case rules.Knight:
		return "knight"
	default:
		return "?"
	}
}
