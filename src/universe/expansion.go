package universe

import (
	"github.com/pkg/errors"
)

//ExpandPolicy defines how many times a border is pushed out within one generation
type ExpandPolicy int

const (
	//ExpandPerEdge expands once per distinct border direction touched by live cells
	ExpandPerEdge ExpandPolicy = iota
	//ExpandPerCell expands once per live border cell, several cells on the same edge give several rows
	ExpandPerCell
)

var expandPolicyNames = map[string]ExpandPolicy{
	"edge": ExpandPerEdge,
	"cell": ExpandPerCell,
}

//ParseExpandPolicy converts the policy name (edge|cell) to ExpandPolicy
func ParseExpandPolicy(name string) (ExpandPolicy, error) {
	p, ok := expandPolicyNames[name]
	if !ok {
		return ExpandPerEdge, errors.Errorf("unknown expand policy %q", name)
	}
	return p, nil
}

func (p ExpandPolicy) String() string {
	for n, v := range expandPolicyNames {
		if v == p {
			return n
		}
	}
	return "unknown"
}

//Expand returns the copy of the grid grown by one row and/or column in direction d
func (g *Grid) Expand(d Direction) *Grid {
	c := g.Clone()
	c.expand(d)
	return c
}

//expand grows the grid in place, must be called on a grid nobody else references
func (g *Grid) expand(d Direction) {
	switch d {
	case North, NorthEast, NorthWest:
		g.addRowNorth()
	case South, SouthEast, SouthWest:
		g.addRowSouth()
	}
	switch d {
	case East, NorthEast, SouthEast:
		g.addColumnEast()
	case West, NorthWest, SouthWest:
		g.addColumnWest()
	}
}

//addRowNorth moves every cell one row down and puts the dead row on top
func (g *Grid) addRowNorth() {
	for _, row := range g.cells {
		for x := range row {
			row[x].Y++
		}
	}
	g.cells = append([][]Cell{deadRow(0, g.sizeX)}, g.cells...)
	g.sizeY++
}

func (g *Grid) addRowSouth() {
	g.cells = append(g.cells, deadRow(g.sizeY, g.sizeX))
	g.sizeY++
}

//addColumnWest moves every cell one column right and puts the dead cell at the start of each row
func (g *Grid) addColumnWest() {
	for y, row := range g.cells {
		shifted := make([]Cell, 0, len(row)+1)
		shifted = append(shifted, Cell{X: 0, Y: y})
		for _, c := range row {
			c.X++
			shifted = append(shifted, c)
		}
		g.cells[y] = shifted
	}
	g.sizeX++
}

func (g *Grid) addColumnEast() {
	for y := range g.cells {
		g.cells[y] = append(g.cells[y], Cell{X: g.sizeX, Y: y})
	}
	g.sizeX++
}
