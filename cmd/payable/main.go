package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KavinduLakshith/payable-assessment/internal/common"
	"github.com/KavinduLakshith/payable-assessment/internal/config"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "payable",
		Short: "💸 Expense feed browser",
		Long: `payable: a terminal viewer for the shared expense feed.

It loads the dataset once, falls back to built-in sample data when the feed
is unreachable, and lets you slice the result by category and search term.

Running payable with no subcommand opens the interactive browser.`,
		PersistentPreRunE: initConfig,
		RunE:              runBrowse,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/payable/config.yaml)")
	rootCmd.PersistentFlags().String("endpoint", "", "expense feed URL (default: the published feed)")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "feed fetch timeout")
	rootCmd.PersistentFlags().Duration("delay", 0, "artificial delay before fetching, useful for demoing the loading state")
	rootCmd.PersistentFlags().Bool("offline", false, "skip the fetch and use the built-in sample data")
	rootCmd.PersistentFlags().String("theme", "default", "color theme (default, catppuccin-mocha)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("feed.url", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("feed.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("feed.delay", rootCmd.PersistentFlags().Lookup("delay"))
	_ = viper.BindPFlag("feed.offline", rootCmd.PersistentFlags().Lookup("offline"))
	_ = viper.BindPFlag("ui.theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add commands
	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	// A local .env is handy during development; absence is fine.
	_ = godotenv.Load()

	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(fmt.Sprintf("%s/.config/payable", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables, e.g. PAYABLE_FEED_URL
	viper.SetEnvPrefix("PAYABLE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	// Set up logging
	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return config.Load().Validate()
}

func setupLogging() error {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return err
	}

	return common.SetupLogger(level, viper.GetString("logging.format"))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			slog.Info("payable version", "version", version)
		},
	}
}
