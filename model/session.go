package model

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/utils"
)

// NewStatsObserver returns a Driver.OnGeneration hook that updates stats,
// appends one CSV record per generation to out and logs a status line every
// config.StatsInterval generations. The first repeated state is logged once.
func NewStatsObserver(
	logger *slog.Logger,
	config utils.Config,
	stats *utils.Stats,
	out *utils.StatsWriter,
) func(generation int, g *Grid, t Transition) {
	width, height := config.GridSize()

	var (
		history       History
		lastFrameTime = time.Now()
		cells         = float64(max(1, width*height))
		reported      bool
	)

	return func(generation int, g *Grid, t Transition) {
		now := time.Now()
		frameDuration := now.Sub(lastFrameTime)
		lastFrameTime = now

		livingCells := g.CountLivingCells()
		stats.Update(generation, livingCells, frameDuration)
		repeated := history.Record(g)

		if repeated && !reported {
			logger.Info("board settled into a still life or short cycle", "generation", generation, "living", livingCells)
			reported = true
		}

		rec := utils.GenerationRecord{
			Generation: generation,
			Population: livingCells,
			Density:    float64(livingCells) / cells * 100,
			Births:     t.Births,
			Deaths:     t.Deaths,
			Repeated:   repeated,
			ElapsedMs:  float64(frameDuration.Microseconds()) / 1000,
		}
		if err := out.Write(rec); err != nil {
			logger.Warn("failed to write stats", "generation", generation, "error", err)
		}

		if config.StatsInterval > 0 && generation%config.StatsInterval == 0 {
			logger.Info("generation",
				"generation", generation,
				"living", livingCells,
				"density_pct", rec.Density,
				"births", t.Births,
				"deaths", t.Deaths,
				"gen_per_sec", stats.GenerationsPerSecond,
				"avg_population", stats.AveragePopulation,
			)
		}
	}
}

// AdvancePaced advances d only when a close is pending or the pacer says a
// frame is due at now, for frontends whose loop ticks faster than the pause
func AdvancePaced(d *Driver, pacer *utils.Pacer, now time.Time, closing bool) State {
	if !closing && !pacer.Due(now) {
		return d.State()
	}
	return d.Advance(closing)
}

// RunOnScreen pumps screen events on one goroutine while the driver loop runs
// on another, until Esc, q, Ctrl-C or ctx is done
func RunOnScreen(ctx context.Context, screen tcell.Screen, driver *Driver) error {
	var (
		events = make(chan tcell.Event, 16)
		quit   = make(chan struct{})
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		screen.ChannelEvents(events, quit)
		return nil
	})
	eg.Go(func() error {
		defer close(quit)
		return driver.Run(ctx, NewTerminalFrontend(screen, events))
	})

	return eg.Wait()
}

// headlessFrontend has no display; only ctx cancellation or the generation limit closes it
type headlessFrontend struct{}

func (headlessFrontend) CloseRequested() bool { return false }

func (headlessFrontend) Present(*Grid) error { return nil }

// RunHeadless runs the simulation without any display
func RunHeadless(ctx context.Context, driver *Driver) error {
	return driver.Run(ctx, headlessFrontend{})
}
