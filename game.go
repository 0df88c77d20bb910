package main

import (
	"context"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// screenSurface lets the cell renderer paint on an ebiten image
type screenSurface struct {
	img *ebiten.Image
}

func (s screenSurface) Fill(c color.Color) {
	s.img.Fill(c)
}

func (s screenSurface) FillRect(x, y, width, height float32, c color.Color) {
	vector.FillRect(s.img, x, y, width, height, c, false)
}

// Game runs the driver inside ebiten's loop. Ebiten ticks faster than the
// configured pause, so the pacer decides which ticks compute a generation.
type Game struct {
	ctx      context.Context
	driver   *model.Driver
	renderer *model.CellRenderer
	pacer    *utils.Pacer

	width  int
	height int
}

func NewGame(ctx context.Context, config utils.Config, driver *model.Driver) *Game {
	return &Game{
		ctx:      ctx,
		driver:   driver,
		renderer: model.NewCellRenderer(config.CellSize),
		pacer:    utils.NewPacer(config.Pause()),
		width:    config.WindowWidth,
		height:   config.WindowHeight,
	}
}

func (g *Game) Update() error {
	closing := ebiten.IsWindowBeingClosed() || g.ctx.Err() != nil
	if model.AdvancePaced(g.driver, g.pacer, time.Now(), closing) == model.Closed {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(g.driver.Grid(), screenSurface{img: screen})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// runWindow opens the window and blocks until it is closed
func runWindow(ctx context.Context, config utils.Config, driver *model.Driver) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(ctx, config, driver)); err != nil {
		return errors.Wrap(err, "[runWindow] failed to run window")
	}
	return nil
}
