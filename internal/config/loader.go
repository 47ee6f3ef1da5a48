package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"
)

// hclConfig mirrors Config for HCL files. Pointers tell absent attributes
// apart from zero values so partial files keep the defaults.
type hclConfig struct {
	Width             *int  `hcl:"width,optional"`
	Height            *int  `hcl:"height,optional"`
	ColorCount        *int  `hcl:"color_count,optional"`
	TotalMoves        *int  `hcl:"total_moves,optional"`
	PointsPerBlock    *int  `hcl:"points_per_block,optional"`
	ReshuffleOnReplay *bool `hcl:"reshuffle_on_replay,optional"`
}

// Load resolves the session configuration.
// Search order: customPath -> ~/.collapse/config.yaml -> ~/.collapse/config.hcl
// -> ./configs/collapse.yaml -> embedded default.
// Only an explicit customPath reports read or parse errors; broken fallback
// files are skipped.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML, "collapse.yaml")
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads a YAML or HCL file; the format is chosen by extension.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data, path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration over Default and validates it.
// Files ending in .hcl are decoded as HCL, everything else as YAML.
func Parse(data []byte, filename string) (Config, error) {
	cfg := Default()

	if strings.EqualFold(filepath.Ext(filename), ".hcl") {
		var raw hclConfig
		if err := hclsimple.Decode(filepath.Base(filename), data, nil, &raw); err != nil {
			return Config{}, err
		}
		raw.applyTo(&cfg)
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (h hclConfig) applyTo(cfg *Config) {
	if h.Width != nil {
		cfg.Width = *h.Width
	}
	if h.Height != nil {
		cfg.Height = *h.Height
	}
	if h.ColorCount != nil {
		cfg.ColorCount = *h.ColorCount
	}
	if h.TotalMoves != nil {
		cfg.TotalMoves = *h.TotalMoves
	}
	if h.PointsPerBlock != nil {
		cfg.PointsPerBlock = *h.PointsPerBlock
	}
	if h.ReshuffleOnReplay != nil {
		cfg.ReshuffleOnReplay = *h.ReshuffleOnReplay
	}
}

// Write encodes cfg as YAML.
func Write(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

// searchPaths lists the fallback config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "config.yaml"),
			filepath.Join(dir, "config.hcl"),
		)
	}
	return append(paths, filepath.Join("configs", "collapse.yaml"))
}

// userConfigDir returns ~/.collapse, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".collapse")
}
