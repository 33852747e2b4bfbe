package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-miner/internal/config"
	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/platform/tui"
	"github.com/vovakirdan/tui-miner/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start a run. The world is generated from --seed.

Controls:
  Arrows/WASD  - Move (turns the miner even when blocked)
  Space        - Dig the block the miner faces
  Enter        - Start (or click [ Start ])
  P/Esc        - Pause/resume (or click the button)
  R            - Reset the run with a new world
  ?            - Toggle key help
  Ctrl+S       - Save a text screenshot to ~/.miner/screenshots
  Q/Ctrl+C     - Quit

Examples:
  miner play
  miner play --seed 42
  miner play --config ./my-miner.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "miner"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'miner list' to see available games", gameID)
	}

	// Fail early on a broken config instead of silently using defaults
	_, source, err := config.LoadMiner(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
