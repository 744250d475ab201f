// skifree is a downhill skiing arcade game for the terminal.
//
// Usage:
//
//	skifree play             - Start a run
//	skifree scores           - Show the best runs
//	skifree list             - List available games
//	skifree config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60; the simulation always runs at 60 ticks/s)
//	--seed <value>       - Set course seed for a reproducible slope (0 = random)
//	--db <path>          - Set database path (default from config: ~/.skifree/scores.db)
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skifree/internal/config"
	"github.com/vovakirdan/tui-skifree/internal/games/skifree"
	"github.com/vovakirdan/tui-skifree/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// Resolved in PersistentPreRunE
	appConfig config.SkiFreeConfig
	stderrLog *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skifree",
	Short: "SkiFree - Ski down an endless slope in your terminal",
	Long: `SkiFree is a downhill skiing game for the terminal. Steer between
trees and rocks, jump off bumps and ramps, and land tricks for style points.

Available commands:
  play     - Start a run
  scores   - View the best runs
  list     - Show all available games
  config   - Print the default configuration

Examples:
  skifree play
  skifree play --seed 1234
  skifree scores
  skifree scores --table
  skifree scores --clear`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Course seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings reads .env, the config file and flag overrides.
func loadSettings(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	cfg, err := config.LoadSkiFree(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Scores.DB = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}

	l, err := logging.New(os.Stderr, cfg.Logging.Level)
	if err != nil {
		return err
	}

	appConfig = cfg
	stderrLog = l
	skifree.SetConfig(cfg)
	return nil
}
