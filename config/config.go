// Package config handles configuration loading and validation for the
// reviews viewer.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"git.sr.ht/~gioverse/reviews/async"
	"git.sr.ht/~gioverse/reviews/imgload"
	"git.sr.ht/~gioverse/reviews/layout"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config holds the application configuration.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Feed     FeedConfig     `yaml:"feed"`
	Generate GenerateConfig `yaml:"generate"`
	Images   ImagesConfig   `yaml:"images"`
	Layout   LayoutConfig   `yaml:"layout"`
	Log      LogConfig      `yaml:"log"`
	// Debug outlines every computed frame.
	Debug bool `yaml:"debug"`
}

// WindowConfig sizes the window in dp.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// FeedConfig locates the reviews to show. Path may be a file or an http(s)
// URL. With no path, reviews are generated.
type FeedConfig struct {
	Path string `yaml:"path"`
}

// GenerateConfig drives the synthetic feed.
type GenerateConfig struct {
	Count     int `yaml:"count"`
	MaxPhotos int `yaml:"max_photos"`
}

// ImagesConfig tunes the image loader.
type ImagesConfig struct {
	// CacheBudget bounds decoded images in memory, in bytes.
	CacheBudget int64 `yaml:"cache_budget"`
	// Scheduler picks how fetches run: "dynamic" spawns at most Workers
	// goroutines on demand, "fixed" keeps Workers goroutines alive and "go"
	// runs every fetch on its own goroutine.
	Scheduler string        `yaml:"scheduler"`
	Workers   int           `yaml:"workers"`
	Dedupe    bool          `yaml:"dedupe"`
	Timeout   time.Duration `yaml:"timeout"`
}

// LayoutConfig tunes row layout.
type LayoutConfig struct {
	// MaxLines caps review bodies until expanded; 0 never truncates.
	MaxLines int `yaml:"max_lines"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty logs to stderr
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Reviews",
			Width:  375,
			Height: 812,
		},
		Generate: GenerateConfig{
			Count:     50,
			MaxPhotos: 5,
		},
		Images: ImagesConfig{
			CacheBudget: imgload.DefaultBudget,
			Scheduler:   string(async.Dynamic),
			Workers:     imgload.DefaultWorkers,
			Timeout:     30 * time.Second,
		},
		Layout: LayoutConfig{
			MaxLines: layout.DefaultMaxLines,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path. If path is empty or doesn't exist,
// returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config file: %w", err)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive", ErrInvalid)
	}
	if c.Generate.Count < 0 {
		return fmt.Errorf("%w: generate.count cannot be negative", ErrInvalid)
	}
	if c.Generate.MaxPhotos < 0 {
		return fmt.Errorf("%w: generate.max_photos cannot be negative", ErrInvalid)
	}
	if c.Images.CacheBudget <= 0 {
		return fmt.Errorf("%w: images.cache_budget must be positive", ErrInvalid)
	}
	if _, err := async.ParseKind(c.Images.Scheduler); err != nil {
		return fmt.Errorf("%w: images.scheduler: %v", ErrInvalid, err)
	}
	if c.Images.Workers < 1 {
		return fmt.Errorf("%w: images.workers must be at least 1", ErrInvalid)
	}
	if c.Images.Timeout < 0 {
		return fmt.Errorf("%w: images.timeout cannot be negative", ErrInvalid)
	}
	if c.Layout.MaxLines < 0 {
		return fmt.Errorf("%w: layout.max_lines cannot be negative", ErrInvalid)
	}
	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
