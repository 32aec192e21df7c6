package universe

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

//pattern file symbols
const (
	AliveSymbol = 'x'
	DeadSymbol  = '-'
)

//InvalidFormatError is returned when the pattern text can't be turned into a grid
//Line and Column are one based
type InvalidFormatError struct {
	Line   int
	Column int
	Char   rune
	Reason string
}

func (e *InvalidFormatError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("invalid pattern format at %d:%d: %s %q", e.Line, e.Column, e.Reason, e.Char)
	}
	return fmt.Sprintf("invalid pattern format at line %d: %s", e.Line, e.Reason)
}

const (
	reasonUnknownSymbol = "unknown symbol"
	reasonRaggedRow     = "row length differs from the first row"
	reasonLineTooLong   = "line is longer than the limit"
)

//MaxLineLength is the longest pattern line in bytes
const MaxLineLength = 1 << 20

//LoadPattern reads the pattern file and builds the initial grid
func LoadPattern(filename string) (*Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to open file: %v", filename)
	}
	defer f.Close()

	g, err := ReadPattern(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to parse file: %v", filename)
	}
	return g, nil
}

//Parse builds the grid from the pattern text
func Parse(text string) (*Grid, error) {
	return ReadPattern(strings.NewReader(text))
}

//ReadPattern builds the grid from the pattern lines
//each line is a row, each symbol is a cell: 'x' is alive, '-' is dead
//whitespace only content gives the empty 0x0 grid, blank lines at the end are ignored
func ReadPattern(r io.Reader) (*Grid, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	for s.Scan() {
		lines = append(lines, strings.TrimSuffix(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &InvalidFormatError{Line: len(lines) + 1, Reason: reasonLineTooLong}
		}
		return nil, errors.Wrap(err, "[ReadPattern] failed to read pattern")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return &Grid{}, nil
	}

	g := &Grid{cells: make([][]Cell, 0, len(lines))}
	for y, l := range lines {
		row := make([]Cell, 0, len(l))
		for _, ch := range l {
			x := len(row)
			switch ch {
			case AliveSymbol:
				row = append(row, Cell{X: x, Y: y, Alive: true})
			case DeadSymbol:
				row = append(row, Cell{X: x, Y: y})
			default:
				return nil, &InvalidFormatError{Line: y + 1, Column: x + 1, Char: ch, Reason: reasonUnknownSymbol}
			}
		}
		if y > 0 && len(row) != g.sizeX {
			return nil, &InvalidFormatError{Line: y + 1, Reason: reasonRaggedRow}
		}
		g.sizeX = len(row)
		g.cells = append(g.cells, row)
	}
	g.sizeY = len(g.cells)
	return g, nil
}
