package gui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"chessmate/pkg/game"
	"chessmate/pkg/rules"
)

const (
	numRows = 8
	numCols = 8
	// moveRows is how many move pairs fit in the move list pane.
	moveRows = 8
)

// UI renders a Game as a selectable tview table plus side panes, and feeds
// selections and promotion keys back into it.
type UI struct {
	App   *tview.Application
	game  *game.Game
	theme Theme

	board  *tview.Table
	status *tview.TextView
	side   *tview.TextView
}

// New builds the application layout around the given game.
func New(g *game.Game, theme Theme) *UI {
	ui := &UI{
		App:    tview.NewApplication(),
		game:   g,
		theme:  theme,
		board:  tview.NewTable(),
		status: tview.NewTextView(),
		side:   tview.NewTextView(),
	}

	ui.status.SetTextColor(theme.Msg)
	ui.side.SetTextColor(theme.Label)

	layout := tview.NewGrid().
		SetRows(1, -1).
		SetColumns(30, -1).
		AddItem(ui.status, 0, 0, 1, 2, 0, 0, false).
		AddItem(ui.board, 1, 0, 1, 1, 0, 0, true).
		AddItem(ui.side, 1, 1, 1, 1, 0, 0, false)

	ui.initBoard()
	ui.App.SetRoot(layout, true).SetInputCapture(ui.handleKey)
	ui.Render()
	return ui
}

// Run starts the event loop and blocks until the application stops.
func (ui *UI) Run() error {
	return ui.App.Run()
}

func (ui *UI) initBoard() {
	ui.board.SetSelectable(true, true)
	// Start on e2, a square White usually wants.
	ui.board.Select(6, 5)
	ui.board.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			ui.App.Stop()
		}
	})
	ui.board.SetSelectedFunc(func(row, col int) {
		sq, ok := posToSquare(row, col)
		if !ok {
			return
		}
		ui.game.Select(sq)
		ui.Render()
	})
}

// handleKey routes keys the board table does not own: the promotion picker,
// restart, and quit.
func (ui *UI) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if ui.game.Phase() == game.PromotingPawn {
		switch ev.Key() {
		case tcell.KeyLeft:
			ui.game.CyclePromotion(-1)
		case tcell.KeyRight:
			ui.game.CyclePromotion(1)
		case tcell.KeyEnter:
			ui.game.ConfirmPromotion()
		default:
			return ev
		}
		ui.Render()
		return nil
	}

	switch ev.Rune() {
	case 'r', 'R':
		ui.game.Restart()
		ui.Render()
		return nil
	case 'q':
		ui.App.Stop()
		return nil
	}
	return ev
}

// posToSquare converts a table cell to a board square. Column 0 is the rank
// gutter and row 8 is the file gutter.
func posToSquare(row, col int) (rules.Square, bool) {
	if row < 0 || row >= numRows || col < 1 || col > numCols {
		return rules.NoSquare, false
	}
	return rules.NewSquare(col-1, numRows-row-1), true
}

// Render redraws the board table and both text panes from the game state.
func (ui *UI) Render() {
	pos := ui.game.Position()
	hints := ui.game.Destinations()
	checked, inCheck := ui.game.CheckedKing()
	last, hasLast := ui.game.LastMove()

	for row := 0; row <= numRows; row++ {
		for col := 0; col <= numCols; col++ {
			switch {
			case col == 0 && row < numRows:
				cell := tview.NewTableCell(fmt.Sprintf("%d", numRows-row)).
					SetTextColor(ui.theme.Label).
					SetAlign(tview.AlignCenter).
					SetSelectable(false)
				ui.board.SetCell(row, col, cell)

			case row == numRows && col > 0:
				cell := tview.NewTableCell(fmt.Sprintf(" %c", 'a'+col-1)).
					SetTextColor(ui.theme.Label).
					SetAlign(tview.AlignCenter).
					SetSelectable(false)
				ui.board.SetCell(row, col, cell)

			case row == numRows && col == 0:
				ui.board.SetCell(row, col, tview.NewTableCell("").SetSelectable(false))

			default:
				sq, _ := posToSquare(row, col)
				piece := pos.At(sq)

				bg := ui.squareColor(sq)
				if hasLast && (sq == last.From || sq == last.To) {
					bg = ui.theme.SquareLast
				}
				if inCheck && sq == checked {
					bg = ui.theme.SquareCheck
				}
				for _, hint := range hints {
					if sq == hint {
						bg = ui.theme.SquareHint
					}
				}
				if sq == ui.game.Selected() {
					bg = ui.theme.SquareSelected
				}

				fg := ui.theme.White
				if piece != rules.NoPiece && piece.Color() == rules.Black {
					fg = ui.theme.Black
				}

				cell := tview.NewTableCell(fmt.Sprintf(" %c ", piece.Rune())).
					SetAlign(tview.AlignCenter).
					SetTextColor(fg).
					SetBackgroundColor(bg)
				ui.board.SetCell(row, col, cell)
			}
		}
	}

	ui.status.SetText(" " + ui.game.StatusLine())
	ui.side.SetText(ui.sideText())
}

func (ui *UI) squareColor(sq rules.Square) tcell.Color {
	if (sq.File()+sq.Rank())%2 == 0 {
		return ui.theme.SquareDark
	}
	return ui.theme.SquareLight
}

// sideText builds the right-hand pane: game name, clocks, captured pieces,
// and the tail of the move list.
func (ui *UI) sideText() string {
	var sb strings.Builder
	cl := ui.game.Clock()

	fmt.Fprintf(&sb, "game: %s\n\n", ui.game.Name())
	fmt.Fprintf(&sb, "White %s  %s\n", game.Format(cl.Elapsed(rules.White)), takenString(ui.game.Taken(rules.Black)))
	fmt.Fprintf(&sb, "Black %s  %s\n\n", game.Format(cl.Elapsed(rules.Black)), takenString(ui.game.Taken(rules.White)))

	history := ui.game.History()
	pairs := (len(history) + 1) / 2
	first := 0
	if pairs > moveRows {
		first = pairs - moveRows
	}
	for i := first; i < pairs; i++ {
		white := history[2*i]
		black := ""
		if 2*i+1 < len(history) {
			black = history[2*i+1].String()
		}
		fmt.Fprintf(&sb, "%3d. %-7s %-7s\n", i+1, white, black)
	}
	return sb.String()
}

// takenString renders captured pieces as a run of glyphs.
func takenString(pieces []rules.Piece) string {
	var sb strings.Builder
	for _, p := range pieces {
		sb.WriteRune(p.Rune())
	}
	return sb.String()
}
