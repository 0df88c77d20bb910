package model

import "math/rand"

// Life holds two pre-allocated grids and flips between them each generation,
// so the grid being read is never the grid being written.
type Life struct {
	front      *Grid
	back       *Grid
	generation int
	last       Transition
}

// NewLife creates a double-buffered board of dead cells
func NewLife(width, height int) *Life {
	return &Life{
		front: NewGrid(width, height),
		back:  NewGrid(width, height),
	}
}

// Seed randomizes the current generation and resets the generation counter
func (l *Life) Seed(count int, rng *rand.Rand) {
	l.front.Seed(count, rng)
	l.back.Clear()
	l.generation = 0
	l.last = Transition{}
}

// Grid returns the current generation. The returned grid is only valid until the next Step.
func (l *Life) Grid() *Grid {
	return l.front
}

// Generation returns the number of steps taken since the last Seed
func (l *Life) Generation() int {
	return l.generation
}

// LastTransition returns the births and deaths of the most recent Step
func (l *Life) LastTransition() Transition {
	return l.last
}

// Step computes the next generation into the back buffer and swaps it in
func (l *Life) Step() *Grid {
	l.last = l.front.NextGeneration(l.back)
	l.front, l.back = l.back, l.front
	l.generation++
	return l.front
}
