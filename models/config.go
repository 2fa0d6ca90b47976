package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/golangdaddy/kart/car"
	"github.com/golangdaddy/kart/lanecontroller"
	"github.com/golangdaddy/kart/road"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Hosts the race can be played on
const (
	HostTerminal = "terminal"
	HostWindow   = "window"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything needed to set up a race.
// Files may be YAML (.yaml, .yml) or INI (.ini); missing keys keep their defaults.
type Config struct {
	Host       string `yaml:"host" ini:"host"`               // "terminal" or "window"
	Seed       uint64 `yaml:"seed" ini:"seed"`               // Track seed; 0 picks one from the clock
	Glyph      string `yaml:"glyph" ini:"glyph"`             // Car character
	Wall       string `yaml:"wall" ini:"wall"`               // Wall character
	Width      int    `yaml:"width" ini:"width"`             // Field width in cells
	Height     int    `yaml:"height" ini:"height"`           // Field height in cells
	TrackWidth int    `yaml:"track_width" ini:"track_width"` // Open cells per row
	MaxSpace   int    `yaml:"max_space" ini:"max_space"`     // Largest left boundary
	MaxCycles  int    `yaml:"max_cycles" ini:"max_cycles"`   // Ticks needed to finish
	TiersFile  string `yaml:"tiers_file" ini:"tiers_file"`   // Optional speed table, relative to the config file

	Tiers []lanecontroller.Tier `yaml:"-" ini:"-"`
}

// DefaultConfig returns the classic race settings
func DefaultConfig() *Config {
	g := road.DefaultGeometry()
	return &Config{
		Host:       HostTerminal,
		Glyph:      string(car.DefaultGlyph),
		Wall:       "-",
		Width:      g.Width,
		Height:     g.Height,
		TrackWidth: g.TrackWidth,
		MaxSpace:   g.MaxSpace,
		MaxCycles:  350,
		Tiers:      lanecontroller.DefaultTiers(),
	}
}

// LoadConfig reads a config file over the defaults and validates the result.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".ini":
		file, err := ini.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := file.Section(ini.DefaultSection).MapTo(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format '%s'", filepath.Ext(path))
	}

	if cfg.TiersFile != "" {
		tiersPath := cfg.TiersFile
		if !filepath.IsAbs(tiersPath) {
			tiersPath = filepath.Join(filepath.Dir(path), tiersPath)
		}
		tiers, err := lanecontroller.LoadTiersFromFile(tiersPath)
		if err != nil {
			return nil, err
		}
		cfg.Tiers = tiers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the field fits together
func (c *Config) Validate() error {
	switch c.Host {
	case HostTerminal, HostWindow:
	default:
		return fmt.Errorf("%w: unknown host '%s'", ErrInvalidConfig, c.Host)
	}
	if utf8.RuneCountInString(c.Glyph) != 1 {
		return fmt.Errorf("%w: glyph must be a single character, got '%s'", ErrInvalidConfig, c.Glyph)
	}
	if utf8.RuneCountInString(c.Wall) != 1 {
		return fmt.Errorf("%w: wall must be a single character, got '%s'", ErrInvalidConfig, c.Wall)
	}
	if c.Height < 3 {
		return fmt.Errorf("%w: height %d is below 3", ErrInvalidConfig, c.Height)
	}
	if c.TrackWidth < 1 {
		return fmt.Errorf("%w: track width %d is below 1", ErrInvalidConfig, c.TrackWidth)
	}
	if c.MaxSpace < road.MinSpace {
		return fmt.Errorf("%w: max space %d is below %d", ErrInvalidConfig, c.MaxSpace, road.MinSpace)
	}
	if c.MaxSpace+c.TrackWidth > c.Width-1 {
		return fmt.Errorf("%w: max space %d plus track width %d exceeds playable width %d",
			ErrInvalidConfig, c.MaxSpace, c.TrackWidth, c.Width-1)
	}
	if c.MaxCycles < 1 {
		return fmt.Errorf("%w: max cycles %d is below 1", ErrInvalidConfig, c.MaxCycles)
	}
	if err := lanecontroller.ValidateTiers(c.Tiers); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Geometry returns the field dimensions
func (c *Config) Geometry() road.Geometry {
	return road.Geometry{
		Width:      c.Width,
		Height:     c.Height,
		TrackWidth: c.TrackWidth,
		MaxSpace:   c.MaxSpace,
	}
}

// GlyphRune returns the car character
func (c *Config) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Glyph)
	return r
}

// WallRune returns the wall character
func (c *Config) WallRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Wall)
	return r
}
