package universe

import "testing"

const ruleSample = "----\n--x-\n-x--\n-x--\n----"

func nextCellStateAt(g *Grid, x int, y int) bool {
	return cellNextState(g.Alive(x, y), g.liveNeighbours(x, y))
}

func TestKillCell(t *testing.T) {
	g := mustParse(t, ruleSample)
	if !g.Alive(2, 1) {
		t.Fatal("cell (2,1) should be alive")
	}
	if nextCellStateAt(g, 2, 1) {
		t.Error("cell (2,1) should die")
	}
}

func TestReviveCell(t *testing.T) {
	g := mustParse(t, ruleSample)
	if g.Alive(2, 2) {
		t.Fatal("cell (2,2) should be dead")
	}
	if !nextCellStateAt(g, 2, 2) {
		t.Error("cell (2,2) should come alive")
	}
}

func TestLetCellsBe(t *testing.T) {
	g := mustParse(t, ruleSample)
	if !g.Alive(1, 2) || !nextCellStateAt(g, 1, 2) {
		t.Error("cell (1,2) should stay alive")
	}
	if g.Alive(1, 1) || nextCellStateAt(g, 1, 1) {
		t.Error("cell (1,1) should stay dead")
	}
}

func TestCellNextState(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, exp := cellNextState(true, n), n == 2 || n == 3; got != exp {
			t.Errorf("alive with %d neighbours: got %v, expected %v", n, got, exp)
		}
		if got, exp := cellNextState(false, n), n == 3; got != exp {
			t.Errorf("dead with %d neighbours: got %v, expected %v", n, got, exp)
		}
	}
}

func TestLiveNeighboursAtBorder(t *testing.T) {
	g := mustParse(t, "xxx\nxxx\nxxx")
	cases := []struct{ x, y, n int }{
		{0, 0, 3}, {1, 0, 5}, {2, 2, 3}, {1, 1, 8}, {0, 1, 5},
	}
	for _, c := range cases {
		if n := g.liveNeighbours(c.x, c.y); n != c.n {
			t.Errorf("cell (%d,%d): got %d neighbours, expected %d", c.x, c.y, n, c.n)
		}
	}
}

func TestBorder(t *testing.T) {
	g := NewGrid(4, 3)
	cases := []struct {
		x, y int
		d    Direction
		ok   bool
	}{
		{0, 0, NorthWest, true},
		{3, 0, NorthEast, true},
		{0, 2, SouthWest, true},
		{3, 2, SouthEast, true},
		{0, 1, West, true},
		{3, 1, East, true},
		{1, 0, North, true},
		{2, 2, South, true},
		{1, 1, North, false},
		{2, 1, North, false},
	}
	for _, c := range cases {
		d, ok := g.border(c.x, c.y)
		if ok != c.ok || (ok && d != c.d) {
			t.Errorf("cell (%d,%d): got %v %v, expected %v %v", c.x, c.y, d, ok, c.d, c.ok)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustParse(t, "-----\n--x--\n--x--\n--x--\n-----")
	horizontal := mustParse(t, "-----\n-----\n-xxx-\n-----\n-----")

	next, changed := g.Next(ExpandPerEdge)
	if !changed {
		t.Fatal("blinker should change")
	}
	if !next.Equal(horizontal) {
		t.Fatalf("got\n%vexpected\n%v", next, horizontal)
	}

	next, changed = next.Next(ExpandPerEdge)
	if !changed || !next.Equal(g) {
		t.Fatalf("after second step got\n%vexpected\n%v", next, g)
	}
}

func TestNextDoesNotChangeInput(t *testing.T) {
	g := mustParse(t, "-x-\nxxx\n-x-")
	before := g.Clone()
	_, _ = g.Next(ExpandPerCell)
	if !g.Equal(before) {
		t.Errorf("input grid was changed:\n%v", g)
	}
}

func TestStillLifeIsFixedPoint(t *testing.T) {
	for _, text := range []string{
		"----\n-xx-\n-xx-\n----",
		"------\n--xx--\n-x--x-\n--xx--\n------",
		"",
		"---\n---\n---",
	} {
		g := mustParse(t, text)
		next, changed := g.Next(ExpandPerEdge)
		if changed {
			t.Errorf("still life %q reported as changed:\n%v", text, next)
		}
		if !next.Equal(g) {
			t.Errorf("still life %q: got\n%v", text, next)
		}
	}
}

func TestNoExpansionInside(t *testing.T) {
	g := mustParse(t, "-----\n-x-x-\n--x--\n-xx--\n-----")
	next, _ := g.Next(ExpandPerCell)
	if next.Width() != g.Width() || next.Height() != g.Height() {
		t.Errorf("grid grew from %vx%v to %vx%v", g.Width(), g.Height(), next.Width(), next.Height())
	}
}

func TestExpansionOnBorder(t *testing.T) {
	g := mustParse(t, "x")
	next, changed := g.Next(ExpandPerEdge)
	if !changed {
		t.Fatal("expanded grid should be reported as changed")
	}
	if next.Width() != 2 || next.Height() != 2 || next.LiveCells() != 0 {
		t.Fatalf("got %vx%v grid with %v live cells", next.Width(), next.Height(), next.LiveCells())
	}
	assertConsistent(t, next)

	again, changed := next.Next(ExpandPerEdge)
	if changed || !again.Equal(next) {
		t.Errorf("dead grid should be the fixed point")
	}
}

func TestExpandPolicies(t *testing.T) {
	//two live cells on the north edge
	g := mustParse(t, "-xx-\n----\n----")
	cases := []struct {
		policy ExpandPolicy
		width  int
		height int
	}{
		{ExpandPerEdge, 4, 4},
		{ExpandPerCell, 4, 5},
	}
	for _, c := range cases {
		next, changed := g.Next(c.policy)
		if !changed {
			t.Errorf("%v: expected change", c.policy)
		}
		if next.Width() != c.width || next.Height() != c.height {
			t.Errorf("%v: got %vx%v grid, expected %vx%v", c.policy, next.Width(), next.Height(), c.width, c.height)
		}
		assertConsistent(t, next)
	}
}

func TestGliderKeepsGrowing(t *testing.T) {
	g := mustParse(t, "-x---\n--x--\nxxx--\n-----\n-----")
	for i := 0; i < 40; i++ {
		next, changed := g.Next(ExpandPerEdge)
		if !changed {
			t.Fatalf("glider stopped at step %d", i)
		}
		if next.LiveCells() != 5 {
			t.Fatalf("step %d: got %d live cells, expected 5", i, next.LiveCells())
		}
		assertConsistent(t, next)
		g = next
	}
	if g.Width() <= 5 || g.Height() <= 5 {
		t.Errorf("grid should grow with the glider, got %vx%v", g.Width(), g.Height())
	}
}
