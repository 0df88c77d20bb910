package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	w, h := c.GridSize()
	if w != 400 || h != 300 {
		t.Errorf("GridSize() = %dx%d, want 400x300", w, h)
	}
	if c.Pause() != 50*time.Millisecond {
		t.Errorf("Pause() = %v, want 50ms", c.Pause())
	}
	if c.NumAlive != 15000 || c.Title != "Conway's Game of Life" {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"cellSize": 4, "numAlive": 100, "pauseTime": 20}`)

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if c.CellSize != 4 || c.NumAlive != 100 || c.PauseTime != 20 {
		t.Errorf("file values not applied: %+v", c)
	}
	if c.WindowWidth != 800 || c.Frontend != FrontendWindow {
		t.Errorf("defaults not kept for missing keys: %+v", c)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.YML"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, "windowWidth: 320\nwindowHeight: 240\nfrontend: headless\nseed: 7\n")

			c, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if c.WindowWidth != 320 || c.WindowHeight != 240 || c.Frontend != FrontendHeadless || c.Seed != 7 {
				t.Errorf("file values not applied: %+v", c)
			}
			if c.CellSize != 2 {
				t.Errorf("CellSize = %d, want default 2", c.CellSize)
			}
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadConfig(writeFile(t, "bad.json", "{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := LoadConfig(writeFile(t, "bad.yaml", "cellSize: [1, 2")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"negative cell size", func(c *Config) { c.CellSize = -2 }},
		{"window narrower than a cell", func(c *Config) { c.WindowWidth = 1 }},
		{"window shorter than a cell", func(c *Config) { c.WindowHeight = 0 }},
		{"negative alive count", func(c *Config) { c.NumAlive = -1 }},
		{"negative pause", func(c *Config) { c.PauseTime = -5 }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }},
		{"unknown frontend", func(c *Config) { c.Frontend = "opengl" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if errors.Cause(err) != ErrInvalidConfig {
				t.Errorf("error cause = %v, want ErrInvalidConfig", errors.Cause(err))
			}
		})
	}
}

func TestValidateAllowsLargeAliveCount(t *testing.T) {
	c := DefaultConfig()
	c.NumAlive = 10 * 400 * 300
	if err := c.Validate(); err != nil {
		t.Errorf("alive count above capacity should be accepted: %v", err)
	}
}

func TestGridSizeTruncates(t *testing.T) {
	c := DefaultConfig()
	c.WindowWidth, c.WindowHeight, c.CellSize = 805, 599, 10
	if w, h := c.GridSize(); w != 80 || h != 59 {
		t.Errorf("GridSize() = %dx%d, want 80x59", w, h)
	}
}
