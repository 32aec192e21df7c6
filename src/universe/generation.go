package universe

//Next calculates the next generation
//the returned grid is always a new one, changed is false when it is identical to g (fixed point)
//live cells lying on the border make the new grid grow in that direction
func (g *Grid) Next(policy ExpandPolicy) (next *Grid, changed bool) {
	next = &Grid{cells: make([][]Cell, len(g.cells)), sizeX: g.sizeX, sizeY: g.sizeY}

	var grow []Direction
	seen := make(map[Direction]bool, 8)
	for y, row := range g.cells {
		nextRow := make([]Cell, len(row))
		for x, c := range row {
			if c.Alive {
				if d, ok := g.border(x, y); ok && (policy == ExpandPerCell || !seen[d]) {
					seen[d] = true
					grow = append(grow, d)
				}
			}
			nextRow[x] = Cell{X: c.X, Y: c.Y, Alive: cellNextState(c.Alive, g.liveNeighbours(x, y))}
		}
		next.cells[y] = nextRow
	}

	for _, d := range grow {
		next.expand(d)
	}
	return next, !g.Equal(next)
}

//border returns the direction of the border the position x, y lies on
//corners are checked first, so a corner cell is never reported as an edge
func (g *Grid) border(x int, y int) (Direction, bool) {
	maxX, maxY := g.sizeX-1, g.sizeY-1
	switch {
	case x == 0 && y == 0:
		return NorthWest, true
	case y == 0 && x == maxX:
		return NorthEast, true
	case x == 0 && y == maxY:
		return SouthWest, true
	case x == maxX && y == maxY:
		return SouthEast, true
	case x == 0:
		return West, true
	case x == maxX:
		return East, true
	case y == 0:
		return North, true
	case y == maxY:
		return South, true
	}
	return North, false
}

//liveNeighbours counts live cells around x, y
//there is no wrapping, positions outside the grid don't exist
func (g *Grid) liveNeighbours(x int, y int) int {
	n := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nx, ny := x+i, y+j
			if nx < 0 || ny < 0 || nx >= g.sizeX || ny >= g.sizeY {
				continue
			}
			if g.cells[ny][nx].Alive {
				n++
			}
		}
	}
	return n
}

//cellNextState applies Conway's rule: (alive && neighbours == 2) || neighbours == 3
func cellNextState(alive bool, liveNeighbours int) bool {
	return (alive && liveNeighbours == 2) || liveNeighbours == 3
}
