// miner is a small grid mining game for the terminal.
//
// Usage:
//
//	miner play               - Play the game
//	miner list               - List available games
//	miner table              - Show the block generation table
//	miner preview            - Print a generated world
//	miner config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible worlds
//	--config <path>    - Use a custom YAML config
//	--log-file <path>  - Write logs to a file (the terminal belongs to the game)
//	--debug            - Log game events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-miner/internal/games/miner"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "miner",
	Short: "Miner - dig for treasure in your terminal",
	Long: `Miner is a terminal mining game. Move across a 20x20 world,
dig through dirt and stone and collect iron, gold and diamonds.

Available commands:
  play     - Play the game
  list     - Show all available games
  table    - Show the per-depth block generation table
  preview  - Print a generated world for a seed
  config   - Print the effective configuration

Examples:
  miner play
  miner play --seed 42 --log-file miner.log --debug
  miner preview --seed 42
  miner config > ~/.miner/configs/miner.yaml`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log game events at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging builds the logger from --log-file and --debug.
func setupLogging(_ *cobra.Command, _ []string) error {
	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "miner",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	miner.SetLogger(logger)
	miner.SetConfigPath(flagConfig)
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
