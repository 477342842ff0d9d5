package manager

import "snake-arcade/game/types"

// Grid is the board, one CellState per cell, addressed by column and row.
type Grid struct {
	Width  int
	Height int
	cells  []types.CellState
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]types.CellState, width*height),
	}
}

func (g *Grid) InBounds(p types.Point) bool {
	return p.Col >= 0 && p.Col < g.Width && p.Row >= 0 && p.Row < g.Height
}

// Get returns the state of p. Cells off the board read as Obstacle.
func (g *Grid) Get(p types.Point) types.CellState {
	if !g.InBounds(p) {
		return types.Obstacle
	}
	return g.cells[p.Row*g.Width+p.Col]
}

// Set is a no-op for cells off the board.
func (g *Grid) Set(p types.Point, s types.CellState) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Row*g.Width+p.Col] = s
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = types.Empty
	}
}

func (g *Grid) Count(s types.CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// FreeCells lists the empty cells for which occupied returns false.
func (g *Grid) FreeCells(occupied func(types.Point) bool) []types.Point {
	free := make([]types.Point, 0, len(g.cells))
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			p := types.Point{Col: col, Row: row}
			if g.cells[row*g.Width+col] != types.Empty {
				continue
			}
			if occupied != nil && occupied(p) {
				continue
			}
			free = append(free, p)
		}
	}
	return free
}
