package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to a JSON or YAML config file (empty = use defaults)")
	flagged := utils.BindFlags(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// Defaults, then the config file, then explicit flags
	config := utils.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = utils.LoadConfig(*configPath); err != nil {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	}
	utils.ApplyFlags(flag.CommandLine, *flagged, &config)

	if err := config.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	out, err := utils.CreateStatsFile(config.StatsOutput)
	if err != nil {
		slog.Error("failed to open stats output", "error", err)
		os.Exit(1)
	}

	driver, stats := initializeGame(config)
	driver.OnGeneration = model.NewStatsObserver(logger, config, stats, out)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	switch config.Frontend {
	case utils.FrontendTerminal:
		err = runTerminal(ctx, driver)
	case utils.FrontendHeadless:
		err = model.RunHeadless(ctx, driver)
	default:
		err = runWindow(ctx, config, driver)
	}
	stop()

	logFinalStats(stats)
	if cerr := out.Close(); cerr != nil {
		slog.Warn("failed to close stats output", "error", cerr)
	}

	if err != nil {
		slog.Error("game stopped with an error", "error", err)
		os.Exit(1)
	}
}
