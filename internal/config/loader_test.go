package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(defaultYAML, "collapse.yaml")
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Height = -2 }, false},
		{"zero colors", func(c *Config) { c.ColorCount = 0 }, false},
		{"zero moves", func(c *Config) { c.TotalMoves = 0 }, false},
		{"negative points", func(c *Config) { c.PointsPerBlock = -1 }, false},
		{"zero points allowed", func(c *Config) { c.PointsPerBlock = 0 }, true},
		{"single color allowed", func(c *Config) { c.ColorCount = 1 }, true},
		{"largest board", func(c *Config) { c.Width, c.Height = MaxDimension, MaxDimension }, true},
		{"huge width", func(c *Config) { c.Width = 100000000 }, false},
		{"huge height", func(c *Config) { c.Height = MaxDimension + 1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestParsePartialYAMLKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("width: 9\ntotal_moves: 12\n"), "mine.yaml")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := Default()
	want.Width = 9
	want.TotalMoves = 12
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestParseHCL(t *testing.T) {
	src := `
width               = 8
color_count         = 3
reshuffle_on_replay = true
`
	cfg, err := Parse([]byte(src), "rules.hcl")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := Default()
	want.Width = 8
	want.ColorCount = 3
	want.ReshuffleOnReplay = true
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestParseHCLRejectsUnknownAttribute(t *testing.T) {
	if _, err := Parse([]byte("bogus = 1\n"), "rules.hcl"); err == nil {
		t.Error("expected error for unknown attribute")
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	for _, data := range []string{"height: 0\n", "width: 100000000\n"} {
		_, err := Parse([]byte(data), "bad.yaml")
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%q: expected ErrInvalidConfiguration, got %v", data, err)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("color_count: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ColorCount != 2 {
		t.Errorf("expected color_count 2, got %d", cfg.ColorCount)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Default()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()
	for _, key := range []string{"width: 6", "color_count: 5", "points_per_block: 1"} {
		if !strings.Contains(out, key) {
			t.Errorf("output missing %q:\n%s", key, out)
		}
	}
}

func TestBoardKey(t *testing.T) {
	if got := Default().BoardKey(); got != "6x5c5m5p1" {
		t.Errorf("BoardKey() = %q", got)
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset     string
		colors     int
		totalMoves int
	}{
		{"", 5, 5},
		{"normal", 5, 5},
		{"easy", 4, 8},
		{"hard", 6, 3},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			preset, err := ParseDifficulty(tt.preset)
			if err != nil {
				t.Fatalf("ParseDifficulty failed: %v", err)
			}
			cfg := Default()
			ApplyDifficulty(&cfg, preset)
			if cfg.ColorCount != tt.colors || cfg.TotalMoves != tt.totalMoves {
				t.Errorf("got colors=%d moves=%d, want colors=%d moves=%d",
					cfg.ColorCount, cfg.TotalMoves, tt.colors, tt.totalMoves)
			}
		})
	}

	// Easy never adds colors to boards that already have two or fewer.
	for colors, want := range map[int]int{1: 1, 2: 2, 3: 2, 5: 4} {
		cfg := Default()
		cfg.ColorCount = colors
		ApplyDifficulty(&cfg, DifficultyEasy)
		if cfg.ColorCount != want {
			t.Errorf("easy on %d colors: got %d, want %d", colors, cfg.ColorCount, want)
		}
	}

	if _, err := ParseDifficulty("insane"); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration for unknown preset, got %v", err)
	}
}
