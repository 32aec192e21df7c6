package universe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func mustParse(t testing.TB, text string) *Grid {
	t.Helper()
	g, err := Parse(text)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	return g
}

func TestParseEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\n", " \t\n  \n"} {
		g := mustParse(t, text)
		if g.Width() != 0 || g.Height() != 0 {
			t.Errorf("parse %q: got %vx%v grid, expected 0x0", text, g.Width(), g.Height())
		}
		if !g.Equal(&Grid{}) {
			t.Errorf("parse %q: expected the empty grid", text)
		}
	}
}

func TestParseInvalidSymbol(t *testing.T) {
	cases := []struct {
		text   string
		line   int
		column int
		char   rune
	}{
		{"abcd", 1, 1, 'a'},
		{"-x-\n-o-", 2, 2, 'o'},
		{"x x", 1, 2, ' '},
		{"--\n-X", 2, 2, 'X'},
	}
	for _, c := range cases {
		_, err := Parse(c.text)
		var fe *InvalidFormatError
		if !errors.As(err, &fe) {
			t.Fatalf("parse %q: expected InvalidFormatError, got %v", c.text, err)
		}
		if fe.Line != c.line || fe.Column != c.column || fe.Char != c.char {
			t.Errorf("parse %q: got %d:%d %q, expected %d:%d %q", c.text, fe.Line, fe.Column, fe.Char, c.line, c.column, c.char)
		}
	}
}

func TestParseRaggedRows(t *testing.T) {
	_, err := Parse("---\n--\n---")
	var fe *InvalidFormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected InvalidFormatError, got %v", err)
	}
	if fe.Line != 2 || fe.Reason != reasonRaggedRow {
		t.Errorf("got line %d reason %q", fe.Line, fe.Reason)
	}
}

func TestParseSimplePattern(t *testing.T) {
	g := mustParse(t, "-x-\n-x-\n-x-")
	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("got %vx%v grid, expected 3x3", g.Width(), g.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			c, ok := g.Cell(x, y)
			if !ok {
				t.Fatalf("cell (%d,%d) is outside the grid", x, y)
			}
			if c.X != x || c.Y != y {
				t.Errorf("cell (%d,%d) has coordinates (%d,%d)", x, y, c.X, c.Y)
			}
			if c.Alive != (x == 1) {
				t.Errorf("cell (%d,%d) alive=%v", x, y, c.Alive)
			}
		}
	}
}

func TestParseLineEndings(t *testing.T) {
	expected := mustParse(t, "-x\nx-")
	for _, text := range []string{"-x\nx-\n", "-x\r\nx-\r\n", "-x\r\nx-", "-x\nx-\n\n", "-x\nx-\n \n\r\n"} {
		if g := mustParse(t, text); !g.Equal(expected) {
			t.Errorf("parse %q: got\n%v", text, g)
		}
	}
}

func TestParseBlankLineInside(t *testing.T) {
	_, err := Parse("-x-\n\n-x-\n")
	var fe *InvalidFormatError
	if !errors.As(err, &fe) || fe.Line != 2 || fe.Reason != reasonRaggedRow {
		t.Errorf("expected ragged row at line 2, got %v", err)
	}
}

func TestParseLongLine(t *testing.T) {
	long := strings.Repeat("-", MaxLineLength+1)
	_, err := Parse("---\n" + long + "\n")
	var fe *InvalidFormatError
	if !errors.As(err, &fe) || fe.Line != 2 || fe.Reason != reasonLineTooLong {
		t.Fatalf("expected too long line at line 2, got %v", err)
	}

	wide := strings.Repeat("-", 100*1024)
	g := mustParse(t, wide+"\n"+wide)
	if g.Width() != len(wide) || g.Height() != 2 {
		t.Errorf("got %vx%v grid", g.Width(), g.Height())
	}
}

func TestLoadPattern(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "glider.txt")
	if err := os.WriteFile(name, []byte("-x---\n--x--\nxxx--\n-----\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadPattern(name)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if g.Width() != 5 || g.Height() != 4 || g.LiveCells() != 5 {
		t.Errorf("got %vx%v grid with %v live cells", g.Width(), g.Height(), g.LiveCells())
	}

	_, err = LoadPattern(filepath.Join(dir, "missing.txt"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("expected not exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("-x-\n-?-\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadPattern(bad)
	var fe *InvalidFormatError
	if !errors.As(err, &fe) {
		t.Errorf("expected InvalidFormatError, got %v", err)
	}
}
