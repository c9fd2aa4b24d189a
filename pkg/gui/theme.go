package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette reference:
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme colors the board and its overlays. Square backgrounds are layered:
// selection beats hint, hint beats check, check beats last-move, last-move
// beats the plain square color.
type Theme struct {
	Name           string      `json:"name"`
	SquareDark     tcell.Color `json:"squareDark"`
	SquareLight    tcell.Color `json:"squareLight"`
	SquareSelected tcell.Color `json:"squareSelected"`
	SquareHint     tcell.Color `json:"squareHint"`
	SquareLast     tcell.Color `json:"squareLast"`
	SquareCheck    tcell.Color `json:"squareCheck"`
	White          tcell.Color `json:"white"`
	Black          tcell.Color `json:"black"`
	Label          tcell.Color `json:"label"`
	Msg            tcell.Color `json:"msg"`
}

// ThemeHex is the JSON form of a Theme, with colors as hex strings.
type ThemeHex struct {
	Name           string `json:"name"`
	SquareDark     string `json:"squareDark"`
	SquareLight    string `json:"squareLight"`
	SquareSelected string `json:"squareSelected"`
	SquareHint     string `json:"squareHint"`
	SquareLast     string `json:"squareLast"`
	SquareCheck    string `json:"squareCheck"`
	White          string `json:"white"`
	Black          string `json:"black"`
	Label          string `json:"label"`
	Msg            string `json:"msg"`
}

// fmtHex returns a one character hex for ColorDefault so it round-trips
// through the config instead of being read back as black.
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to its JSON form.
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.SquareDark.Hex()),
		fmtHex(t.SquareLight.Hex()),
		fmtHex(t.SquareSelected.Hex()),
		fmtHex(t.SquareHint.Hex()),
		fmtHex(t.SquareLast.Hex()),
		fmtHex(t.SquareCheck.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Msg.Hex()),
	}
}

// Theme converts the JSON form back to a Theme.
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.SquareDark),
		tcell.GetColor(t.SquareLight),
		tcell.GetColor(t.SquareSelected),
		tcell.GetColor(t.SquareHint),
		tcell.GetColor(t.SquareLast),
		tcell.GetColor(t.SquareCheck),
		tcell.GetColor(t.White),
		tcell.GetColor(t.Black),
		tcell.GetColor(t.Label),
		tcell.GetColor(t.Msg),
	}
}

// ImportThemes returns the theme with the wanted name from the provided
// overrides, falling back to the built-in themes.
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}
	for _, t := range builtinThemes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, errors.New("theme: no theme found")
}

// ThemeBasic is the default theme.
var ThemeBasic = Theme{
	"basic",        // Name
	tcell.Color188, // SquareDark
	tcell.Color230, // SquareLight
	tcell.Color226, // SquareSelected
	tcell.Color223, // SquareHint
	tcell.Color190, // SquareLast
	tcell.Color218, // SquareCheck
	tcell.Color255, // White
	tcell.Color232, // Black
	tcell.Color247, // Label
	tcell.Color160, // Msg
}

// ThemeGreen is a board-like green theme.
var ThemeGreen = Theme{
	"green",        // Name
	tcell.Color65,  // SquareDark
	tcell.Color187, // SquareLight
	tcell.Color226, // SquareSelected
	tcell.Color186, // SquareHint
	tcell.Color148, // SquareLast
	tcell.Color210, // SquareCheck
	tcell.Color255, // White
	tcell.Color232, // Black
	tcell.Color247, // Label
	tcell.Color160, // Msg
}

var builtinThemes = []Theme{ThemeBasic, ThemeGreen}
