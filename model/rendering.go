package model

import "image/color"

var (
	// DefaultBackground is the color of dead cells
	DefaultBackground color.Color = color.White
	// DefaultForeground is the color of living cells
	DefaultForeground color.Color = color.Black
)

// Surface is anything the cell renderer can paint on
type Surface interface {
	Fill(c color.Color)
	FillRect(x, y, width, height float32, c color.Color)
}

// CellRenderer rasterizes a grid as filled squares, one per living cell
type CellRenderer struct {
	CellSize   int
	Background color.Color
	Foreground color.Color
}

// NewCellRenderer returns a renderer using the default colors
func NewCellRenderer(cellSize int) *CellRenderer {
	return &CellRenderer{
		CellSize:   cellSize,
		Background: DefaultBackground,
		Foreground: DefaultForeground,
	}
}

// Render clears the surface and draws every living cell at
// (col*CellSize, row*CellSize)
func (r *CellRenderer) Render(g *Grid, s Surface) {
	s.Fill(r.Background)

	size := float32(r.CellSize)
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] {
				s.FillRect(float32(col)*size, float32(row)*size, size, size, r.Foreground)
			}
		}
	}
}
