package utils

import (
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// summaryWindow bounds how many recent populations the summary is computed over
const summaryWindow = 1000

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	Population           int
	PeakPopulation       int

	recent []float64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.recent = append(s.recent, float64(population))
	if len(s.recent) > summaryWindow {
		s.recent = slices.Delete(s.recent, 0, len(s.recent)-summaryWindow)
	}
}

// Summary describes the population over the most recent generations
type Summary struct {
	Generations    int
	Runtime        time.Duration
	MeanPopulation float64
	StdPopulation  float64
	PeakPopulation int
}

// Summarize computes the population mean and standard deviation over the
// last summaryWindow generations
func (s *Stats) Summarize() Summary {
	sum := Summary{
		Generations:    s.TotalGenerations,
		Runtime:        time.Since(s.StartTime),
		PeakPopulation: s.PeakPopulation,
	}
	switch len(s.recent) {
	case 0:
	case 1:
		sum.MeanPopulation = s.recent[0]
	default:
		sum.MeanPopulation, sum.StdPopulation = stat.MeanStdDev(s.recent, nil)
	}
	return sum
}
