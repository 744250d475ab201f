package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-skifree/internal/core"
	"github.com/vovakirdan/tui-skifree/internal/games/skifree"
	"github.com/vovakirdan/tui-skifree/internal/logging"
	"github.com/vovakirdan/tui-skifree/internal/platform/tui"
	"github.com/vovakirdan/tui-skifree/internal/registry"
	"github.com/vovakirdan/tui-skifree/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Start a run",
	Long: `Start a run down the slope. The game defaults to skifree.

Controls:
  Left/A, Right/D  - Steer (from a stop, walk sideways while held)
  1, 2, F          - Tricks while airborne
  H                - Toggle hitboxes
  P/Esc            - Pause
  R                - Restart with a new course
  Ctrl+S           - Save a screenshot
  ?                - Full help
  Q/Ctrl+C         - Quit

Examples:
  skifree play
  skifree play --seed 42
  skifree play --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := skifree.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'skifree list' to see available games)", gameID)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The TUI owns the terminal, so logs go to a file.
	fileLog, closer, err := logging.OpenFile(appConfig.Logging.File, appConfig.Logging.Level)
	if err != nil {
		stderrLog.Warn("could not open log file, logging disabled", "error", err)
		fileLog, closer, _ = logging.OpenFile("", appConfig.Logging.Level)
	}
	defer closer.Close()
	skifree.SetLogger(fileLog)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(appConfig.Scores.DB)
	if err != nil {
		stderrLog.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: core.DefaultConfig().TickRate,
			Seed:     flagSeed,
		},
		FPS:    flagFPS,
		Input:  appConfig.Input,
		Store:  store,
		Logger: fileLog,
	})
}
