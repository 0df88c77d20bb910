package model

import (
	"image/color"
	"testing"
)

type rect struct {
	x, y, w, h float32
	c          color.Color
}

// recordingSurface remembers every draw call in order
type recordingSurface struct {
	fills []color.Color
	rects []rect
}

func (s *recordingSurface) Fill(c color.Color) {
	s.fills = append(s.fills, c)
}

func (s *recordingSurface) FillRect(x, y, w, h float32, c color.Color) {
	if len(s.fills) == 0 {
		panic("FillRect before Fill")
	}
	s.rects = append(s.rects, rect{x, y, w, h, c})
}

func TestCellRendererDrawsLivingCells(t *testing.T) {
	g := gridFrom(
		"#...",
		"..#.",
		"...#",
	)
	r := NewCellRenderer(4)
	s := &recordingSurface{}

	r.Render(g, s)

	if len(s.fills) != 1 || s.fills[0] != DefaultBackground {
		t.Fatalf("fills = %v, want one background fill", s.fills)
	}

	want := []rect{
		{0, 0, 4, 4, DefaultForeground},
		{8, 4, 4, 4, DefaultForeground},
		{12, 8, 4, 4, DefaultForeground},
	}
	if len(s.rects) != len(want) {
		t.Fatalf("drew %d rects, want %d", len(s.rects), len(want))
	}
	for i := range want {
		if s.rects[i] != want[i] {
			t.Errorf("rect %d = %+v, want %+v", i, s.rects[i], want[i])
		}
	}
}

func TestCellRendererEmptyGrid(t *testing.T) {
	s := &recordingSurface{}
	NewCellRenderer(2).Render(NewGrid(10, 10), s)

	if len(s.rects) != 0 {
		t.Errorf("drew %d rects for an empty grid", len(s.rects))
	}
	if len(s.fills) != 1 {
		t.Errorf("background filled %d times, want 1", len(s.fills))
	}
}

func TestCellRendererCustomColors(t *testing.T) {
	red := color.RGBA{0xff, 0, 0, 0xff}
	r := &CellRenderer{CellSize: 1, Background: color.Black, Foreground: red}
	s := &recordingSurface{}

	g := NewGrid(2, 2)
	g.Set(1, 1, true)
	r.Render(g, s)

	if s.fills[0] != color.Black {
		t.Errorf("background = %v, want black", s.fills[0])
	}
	if len(s.rects) != 1 || s.rects[0].c != red || s.rects[0].x != 1 || s.rects[0].y != 1 {
		t.Errorf("rects = %+v, want one red cell at (1,1)", s.rects)
	}
}
