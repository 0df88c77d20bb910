package model

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// State is the lifecycle state of the main loop
type State int

const (
	Running State = iota
	Closed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Frontend is a display the driver can own the loop for
type Frontend interface {
	// CloseRequested drains pending input and reports whether a close was seen
	CloseRequested() bool
	// Present draws the grid and shows the frame
	Present(g *Grid) error
}

// Driver advances the board one generation per frame until it is closed
type Driver struct {
	life           *Life
	pause          time.Duration
	maxGenerations int
	state          State

	// OnGeneration, if set, is called after every generation with the new grid
	OnGeneration func(generation int, g *Grid, t Transition)
}

// NewDriver creates a running driver. maxGenerations <= 0 means no limit.
func NewDriver(life *Life, pause time.Duration, maxGenerations int) *Driver {
	return &Driver{
		life:           life,
		pause:          pause,
		maxGenerations: maxGenerations,
		state:          Running,
	}
}

// State returns the current loop state
func (d *Driver) State() State {
	return d.state
}

// Grid returns the current generation
func (d *Driver) Grid() *Grid {
	return d.life.Grid()
}

// Generation returns the number of generations computed so far
func (d *Driver) Generation() int {
	return d.life.Generation()
}

// Advance moves to Closed if a close was requested or the generation limit is
// reached, otherwise it computes the next generation. Closed is terminal.
func (d *Driver) Advance(closeRequested bool) State {
	if d.state == Closed {
		return Closed
	}
	if closeRequested || (d.maxGenerations > 0 && d.life.Generation() >= d.maxGenerations) {
		d.state = Closed
		return Closed
	}

	g := d.life.Step()
	if d.OnGeneration != nil {
		d.OnGeneration(d.life.Generation(), g, d.life.LastTransition())
	}
	return d.state
}

// Run polls, updates, presents and then pauses until the frontend asks to
// close or ctx is cancelled. Cancellation counts as a close, not an error.
func (d *Driver) Run(ctx context.Context, fe Frontend) error {
	timer := time.NewTimer(d.pause)
	defer timer.Stop()

	for {
		closeRequested := fe.CloseRequested() || ctx.Err() != nil
		if d.Advance(closeRequested) == Closed {
			return nil
		}

		if err := fe.Present(d.Grid()); err != nil {
			return errors.Wrapf(err, "[Driver.Run] failed to present generation %d", d.Generation())
		}

		timer.Reset(d.pause)
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}
}
