// Package config provides configuration types and helpers for the application.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KavinduLakshith/payable-assessment/internal/common"
)

// Config holds the runtime settings shared by every command.
type Config struct {
	// FeedURL overrides the well-known feed location. Empty means use the
	// built-in default.
	FeedURL string

	// Timeout bounds a single feed fetch.
	Timeout time.Duration

	// Delay artificially postpones the fetch so the loading state stays
	// visible during demos.
	Delay time.Duration

	// Offline skips the fetch entirely and works from the built-in sample
	// dataset.
	Offline bool

	// Theme names the color theme for the interactive browser.
	Theme string

	// Logging.
	LogLevel  string
	LogFormat string
}

// Load assembles the configuration from viper, which the command layer has
// already primed with flags, environment variables, and any config file.
func Load() Config {
	return Config{
		FeedURL:   viper.GetString("feed.url"),
		Timeout:   viper.GetDuration("feed.timeout"),
		Delay:     viper.GetDuration("feed.delay"),
		Offline:   viper.GetBool("feed.offline"),
		Theme:     viper.GetString("ui.theme"),
		LogLevel:  viper.GetString("logging.level"),
		LogFormat: viper.GetString("logging.format"),
	}
}

// Validate checks the configuration and reports every problem at once.
func (c Config) Validate() error {
	var problems []string

	if c.FeedURL != "" {
		if u, err := url.Parse(c.FeedURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid feed URL %q: %v", c.FeedURL, err))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			problems = append(problems, fmt.Sprintf("invalid feed URL scheme %q: must be http or https", u.Scheme))
		}
	}

	if c.Timeout < 0 {
		problems = append(problems, fmt.Sprintf("invalid feed timeout %v: must not be negative", c.Timeout))
	}

	if c.Delay < 0 {
		problems = append(problems, fmt.Sprintf("invalid feed delay %v: must not be negative", c.Delay))
	} else if c.Delay > time.Minute {
		problems = append(problems, fmt.Sprintf("invalid feed delay %v: must be at most 1 minute", c.Delay))
	}

	switch c.Theme {
	case "", "default", "catppuccin-mocha":
	default:
		problems = append(problems, fmt.Sprintf("unknown theme %q: must be default or catppuccin-mocha", c.Theme))
	}

	if _, err := common.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level %q: must be debug, info, warn, or error", c.LogLevel))
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format %q: must be console or json", c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n- %s", common.ErrInvalidConfig, strings.Join(problems, "\n- "))
	}

	return nil
}

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
