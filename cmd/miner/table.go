package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-miner/internal/games/miner/world"
	"github.com/vovakirdan/tui-miner/internal/platform/tui"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show the per-depth block generation table",
	Long: `Print the probability of each block type per depth band.
Each cell is rolled once when the world is generated.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, tui.GenerationTable())
		fmt.Fprintln(out)
		for _, t := range world.BlockTypes {
			fmt.Fprintf(out, "  %-8s durability %d  value $%d\n", t, t.Durability(), t.Value())
		}
	},
}
