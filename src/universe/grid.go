package universe

//Cell is a single position of the grid
//X grows left to right, Y grows top to bottom, both are zero based
type Cell struct {
	X     int
	Y     int
	Alive bool
}

//Direction is the compass direction of a grid border
type Direction int

const (
	North Direction = iota
	East
	South
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

var directionNames = map[Direction]string{
	North:     "N",
	East:      "E",
	South:     "S",
	West:      "W",
	NorthEast: "NE",
	NorthWest: "NW",
	SouthEast: "SE",
	SouthWest: "SW",
}

func (d Direction) String() string {
	if n, ok := directionNames[d]; ok {
		return n
	}
	return "?"
}

//Grid is the rectangular simulation board
//sizeX and sizeY always match the real column and row counts
//a Grid is never changed after it is built, every generation produces a new one
type Grid struct {
	cells [][]Cell
	sizeX int
	sizeY int
}

//NewGrid creates the grid with all cells dead
func NewGrid(width int, height int) *Grid {
	if width <= 0 || height <= 0 {
		return &Grid{}
	}
	g := &Grid{cells: make([][]Cell, height), sizeX: width, sizeY: height}
	for y := range g.cells {
		g.cells[y] = deadRow(y, width)
	}
	return g
}

//deadRow allocates the row with dead cells at line y
func deadRow(y int, width int) []Cell {
	row := make([]Cell, width)
	for x := range row {
		row[x] = Cell{X: x, Y: y}
	}
	return row
}

//Width returns the count of columns
func (g *Grid) Width() int {
	return g.sizeX
}

//Height returns the count of rows
func (g *Grid) Height() int {
	return g.sizeY
}

//Cell returns the cell at position x, y
//the second value is false when the position is outside the grid
func (g *Grid) Cell(x int, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= g.sizeX || y >= g.sizeY {
		return Cell{}, false
	}
	return g.cells[y][x], true
}

//Alive reports the cell state, positions outside the grid are dead
func (g *Grid) Alive(x int, y int) bool {
	c, ok := g.Cell(x, y)
	return ok && c.Alive
}

//LiveCells calculates the count of live cells
func (g *Grid) LiveCells() int {
	n := 0
	g.Walk(func(c Cell) {
		if c.Alive {
			n++
		}
	})
	return n
}

//Walk calls cb for each cell, row by row
func (g *Grid) Walk(cb func(c Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			cb(c)
		}
	}
}

//Equal compares the dimensions and every cell of two grids
func (g *Grid) Equal(o *Grid) bool {
	if g == o {
		return true
	}
	if g == nil || o == nil {
		return false
	}
	if g.sizeX != o.sizeX || g.sizeY != o.sizeY || len(g.cells) != len(o.cells) {
		return false
	}
	for y := range g.cells {
		if len(g.cells[y]) != len(o.cells[y]) {
			return false
		}
		for x := range g.cells[y] {
			if g.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}
	return true
}

//Clone returns the deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{cells: make([][]Cell, len(g.cells)), sizeX: g.sizeX, sizeY: g.sizeY}
	for y, row := range g.cells {
		c.cells[y] = append([]Cell(nil), row...)
	}
	return c
}

//Inverse returns the copy of the grid with the cell at x, y flipped
//the grid is returned unchanged when the position is outside
func (g *Grid) Inverse(x int, y int) *Grid {
	if _, ok := g.Cell(x, y); !ok {
		return g
	}
	c := g.Clone()
	c.cells[y][x].Alive = !c.cells[y][x].Alive
	return c
}

//String renders the grid in the pattern file format
func (g *Grid) String() string {
	return Render(g, PlainGlyphs)
}
