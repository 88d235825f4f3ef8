package tui

import (
	"time"

	"github.com/KavinduLakshith/payable-assessment/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme       themes.Theme
	Source      Source
	LoadTimeout time.Duration
	Width       int
	Height      int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:       themes.Default,
		LoadTimeout: 30 * time.Second,
		Width:       80,
		Height:      24,
	}
}

// WithSource sets the expense source.
func WithSource(source Source) Option {
	return func(c *Config) {
		c.Source = source
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithLoadTimeout bounds the initial dataset load.
func WithLoadTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.LoadTimeout = d
		}
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
