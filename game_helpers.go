package main

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Driver, *utils.Stats) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	width, height := config.GridSize()
	life := model.NewLife(width, height)
	life.Seed(config.NumAlive, rand.New(rand.NewSource(seed)))

	driver := model.NewDriver(life, config.Pause(), config.MaxGenerations)
	stats := utils.NewStats()

	slog.Info("game initialized",
		"seed", seed,
		"grid_width", width,
		"grid_height", height,
		"num_alive", config.NumAlive,
		"initial_living_cells", life.Grid().CountLivingCells(),
		"pause_ms", config.PauseTime,
		"frontend", config.Frontend,
	)

	return driver, stats
}

// logFinalStats shows the summary on shutdown
func logFinalStats(stats *utils.Stats) {
	sum := stats.Summarize()
	slog.Info("shutting down",
		"generations", sum.Generations,
		"runtime_sec", sum.Runtime.Seconds(),
		"mean_population", sum.MeanPopulation,
		"std_population", sum.StdPopulation,
		"peak_population", sum.PeakPopulation,
	)
}

// runTerminal draws the board in the terminal until Esc, q, Ctrl-C or ctx is done
func runTerminal(ctx context.Context, driver *model.Driver) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runTerminal] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runTerminal] failed to initialize screen")
	}
	defer screen.Fini()

	return model.RunOnScreen(ctx, screen, driver)
}
