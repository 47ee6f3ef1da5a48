// Package config provides YAML/HCL configuration loading and validation for
// collapse sessions.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a configuration cannot start a session.
var ErrInvalidConfiguration = errors.New("config: invalid configuration")

// MaxDimension bounds board width and height.
const MaxDimension = 256

// Config contains the rules of a session. It is fixed for the session's lifetime.
type Config struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	ColorCount     int `yaml:"color_count"`
	TotalMoves     int `yaml:"total_moves"`
	PointsPerBlock int `yaml:"points_per_block"`

	// ReshuffleOnReplay regenerates the board on replay instead of keeping
	// the board as it was left.
	ReshuffleOnReplay bool `yaml:"reshuffle_on_replay"`
}

// Validate checks that the configuration describes a playable session.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfiguration, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfiguration, c.Height)
	case c.Width > MaxDimension || c.Height > MaxDimension:
		return fmt.Errorf("%w: board %dx%d exceeds %dx%d", ErrInvalidConfiguration, c.Width, c.Height, MaxDimension, MaxDimension)
	case c.ColorCount <= 0:
		return fmt.Errorf("%w: color_count must be positive, got %d", ErrInvalidConfiguration, c.ColorCount)
	case c.TotalMoves <= 0:
		return fmt.Errorf("%w: total_moves must be positive, got %d", ErrInvalidConfiguration, c.TotalMoves)
	case c.PointsPerBlock < 0:
		return fmt.Errorf("%w: points_per_block must not be negative, got %d", ErrInvalidConfiguration, c.PointsPerBlock)
	}
	return nil
}

// BoardKey summarizes the rules that affect scoring, e.g. "6x5c5m5p1".
// Scores are only comparable between sessions with the same key.
func (c Config) BoardKey() string {
	return fmt.Sprintf("%dx%dc%dm%dp%d", c.Width, c.Height, c.ColorCount, c.TotalMoves, c.PointsPerBlock)
}
