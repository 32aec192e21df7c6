package view

import (
	"io"

	"github.com/logrusorgru/aurora"

	"gridlife/src/universe"
)

const (
	escClearScreen = "\x1b[2J"
	escCursorHome  = "\x1b[H"

	square = "⬛"
)

//ColorGlyphs returns blue squares for live cells and white squares for dead ones
func ColorGlyphs() universe.Glyphs {
	return universe.Glyphs{
		Live: aurora.Blue(square).BgBlue().String(),
		Dead: aurora.White(square).BgWhite().String(),
	}
}

//ClearScreen erases the whole terminal screen
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, escClearScreen)
	return err
}

//CursorHome moves the terminal cursor to the top left corner
func CursorHome(w io.Writer) error {
	_, err := io.WriteString(w, escCursorHome)
	return err
}

//WriteFrame draws the grid over the previous frame
func WriteFrame(w io.Writer, g *universe.Grid, gl universe.Glyphs) error {
	if err := CursorHome(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, universe.Render(g, gl))
	return err
}
