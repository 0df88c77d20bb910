package utils

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// GenerationRecord is one row of the per-generation stats CSV
type GenerationRecord struct {
	Generation int     `csv:"generation"`
	Population int     `csv:"population"`
	Density    float64 `csv:"density"`
	Births     int     `csv:"births"`
	Deaths     int     `csv:"deaths"`
	Repeated   bool    `csv:"repeated"`
	ElapsedMs  float64 `csv:"elapsed_ms"`
}

// StatsWriter appends generation records as CSV, writing the header once
type StatsWriter struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewStatsWriter writes records to w
func NewStatsWriter(w io.Writer) *StatsWriter {
	return &StatsWriter{w: w}
}

// CreateStatsFile creates (or truncates) path and its parent directories.
// An empty path disables output and returns a nil writer, which is safe to use.
func CreateStatsFile(path string) (*StatsWriter, error) {
	if path == "" {
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "[CreateStatsFile] failed to create directory: %+v", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[CreateStatsFile] failed to create file: %+v", path)
	}
	return &StatsWriter{w: f, closer: f}, nil
}

// Write appends one record
func (sw *StatsWriter) Write(rec GenerationRecord) error {
	if sw == nil {
		return nil
	}

	records := []GenerationRecord{rec}

	if !sw.headerWritten {
		if err := gocsv.Marshal(records, sw.w); err != nil {
			return errors.Wrap(err, "[StatsWriter.Write] failed to write stats")
		}
		sw.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, sw.w); err != nil {
		return errors.Wrap(err, "[StatsWriter.Write] failed to write stats")
	}
	return nil
}

// Close closes the underlying file, if the writer owns one
func (sw *StatsWriter) Close() error {
	if sw == nil || sw.closer == nil {
		return nil
	}
	return sw.closer.Close()
}
