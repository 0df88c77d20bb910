package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/sheikhrachel/go-life/rules"
)

// Grid represents the game board, indexed by row then column
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new grid of dead cells with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the number of columns
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the number of rows
func (g *Grid) GetHeight() int {
	return g.height
}

// Clear sets every cell to dead
func (g *Grid) Clear() {
	for row := range g.height {
		clear(g.cells[row])
	}
}

// Set sets a cell to alive (true) or dead (false). Out-of-bounds coordinates are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if g.inBounds(row, col) {
		g.cells[row][col] = alive
	}
}

// Get returns the state of a cell. Out-of-bounds coordinates read as dead.
func (g *Grid) Get(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Seed kills every cell, then marks count cells alive at uniformly random
// coordinates. Draws are made with replacement, so a repeated coordinate
// leaves fewer than count cells alive.
func (g *Grid) Seed(count int, rng *rand.Rand) {
	g.Clear()
	if g.width == 0 || g.height == 0 {
		return
	}
	for range count {
		row := rng.Intn(g.height)
		col := rng.Intn(g.width)
		g.cells[row][col] = true
	}
}

// CountNeighbors counts living cells in the Moore neighborhood of (row, col).
// The board does not wrap, so neighbors past an edge are not counted.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.width-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue // Skip the cell itself
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// Transition counts the cells that changed state between two generations
type Transition struct {
	Births int
	Deaths int
}

// NextGeneration writes the generation following g into dst. dst must be a
// different grid of the same dimensions; every cell of dst is overwritten.
func (g *Grid) NextGeneration(dst *Grid) (t Transition) {
	if dst == g {
		panic("model: NextGeneration called with the source grid as destination")
	}
	if dst.width != g.width || dst.height != g.height {
		panic(fmt.Sprintf("model: NextGeneration size mismatch: %dx%d into %dx%d",
			g.width, g.height, dst.width, dst.height))
	}

	for row := range g.height {
		for col := range g.width {
			alive := g.cells[row][col]
			next := rules.ApplyConwayRules(g.CountNeighbors(row, col), alive)
			switch {
			case next && !alive:
				t.Births++
			case alive && !next:
				t.Deaths++
			}
			dst.cells[row][col] = next
		}
	}
	return t
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, g.width)
	for row := range g.height {
		for col, alive := range g.cells[row] {
			buf[col] = 0
			if alive {
				buf[col] = 1
			}
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether two grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}
