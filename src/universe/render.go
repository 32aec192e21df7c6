package universe

import "strings"

//Glyphs maps the cell state to the text printed for it
type Glyphs struct {
	Live string
	Dead string
}

//PlainGlyphs renders the grid in the pattern file format
var PlainGlyphs = Glyphs{Live: string(AliveSymbol), Dead: string(DeadSymbol)}

//Glyph returns the text for the cell
func (gl Glyphs) Glyph(c Cell) string {
	if c.Alive {
		return gl.Live
	}
	return gl.Dead
}

//Render writes one glyph per cell, each row is terminated by the line feed
func Render(g *Grid, gl Glyphs) string {
	var b strings.Builder
	b.Grow(g.sizeY * (g.sizeX*max(len(gl.Live), len(gl.Dead)) + 1))
	for _, row := range g.cells {
		for _, c := range row {
			b.WriteString(gl.Glyph(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
