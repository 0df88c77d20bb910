package utils

import "flag"

// BindFlags registers one flag per config option on fs and returns the config
// the flag values are parsed into. Defaults shown in -help come from DefaultConfig.
func BindFlags(fs *flag.FlagSet) *Config {
	c := DefaultConfig()
	fs.IntVar(&c.WindowWidth, "width", c.WindowWidth, "Window width in pixels")
	fs.IntVar(&c.WindowHeight, "height", c.WindowHeight, "Window height in pixels")
	fs.StringVar(&c.Title, "title", c.Title, "Window title")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "Pixel size of each cell")
	fs.IntVar(&c.NumAlive, "num-alive", c.NumAlive, "Number of random alive-cell draws at startup")
	fs.IntVar(&c.PauseTime, "pause", c.PauseTime, "Pause between generations in milliseconds")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "RNG seed (0 = time-based)")
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "Display: window, terminal or headless")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "Stop after N generations (0 = unlimited)")
	fs.StringVar(&c.StatsOutput, "stats-output", c.StatsOutput, "CSV file for per-generation stats (empty = disabled)")
	fs.IntVar(&c.StatsInterval, "stats-interval", c.StatsInterval, "Log stats every N generations (0 = never)")
	return &c
}

// ApplyFlags copies the options that were set explicitly on fs from flagged into dst,
// so a config file value is only overridden when the flag was given.
func ApplyFlags(fs *flag.FlagSet, flagged Config, dst *Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			dst.WindowWidth = flagged.WindowWidth
		case "height":
			dst.WindowHeight = flagged.WindowHeight
		case "title":
			dst.Title = flagged.Title
		case "cell-size":
			dst.CellSize = flagged.CellSize
		case "num-alive":
			dst.NumAlive = flagged.NumAlive
		case "pause":
			dst.PauseTime = flagged.PauseTime
		case "seed":
			dst.Seed = flagged.Seed
		case "frontend":
			dst.Frontend = flagged.Frontend
		case "max-generations":
			dst.MaxGenerations = flagged.MaxGenerations
		case "stats-output":
			dst.StatsOutput = flagged.StatsOutput
		case "stats-interval":
			dst.StatsInterval = flagged.StatsInterval
		}
	})
}
