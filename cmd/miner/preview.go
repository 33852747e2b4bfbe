package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-miner/internal/config"
	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/games/miner/world"
	"github.com/vovakirdan/tui-miner/internal/platform/tui"
)

var flagPlain bool

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a generated world",
	Long: `Generate the world for --seed and print it, one row per depth.
Plain output uses one letter per block:
  d dirt, s stone, i iron, g gold, * diamond, . empty

Examples:
  miner preview --seed 42
  miner preview --seed 42 --plain`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().BoolVar(&flagPlain, "plain", false, "Plain letters, no colors (default when not a terminal)")
}

// previewLetters are the plain-text block symbols.
var previewLetters = map[world.BlockType]rune{
	world.Dirt:    'd',
	world.Stone:   's',
	world.Iron:    'i',
	world.Gold:    'g',
	world.Diamond: '*',
}

func runPreview(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	state := world.NewState(seed)
	logger.Debug("preview generated", "seed", seed, "blocks", state.Grid.Count())

	plain := flagPlain || !term.IsTerminal(int(os.Stdout.Fd()))
	if plain {
		fmt.Fprint(out, previewText(state))
	} else {
		cfg, _, err := config.LoadMiner(flagConfig)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, tui.NewRenderer(nil).RenderScreen(previewScreen(state, cfg)))
	}

	fmt.Fprintf(out, "\nseed %d\n", seed)
	writeCounts(out, state)
	return nil
}

// previewText renders the grid as letters, one line per row.
func previewText(s world.State) string {
	var sb strings.Builder
	for y := range world.GridSize {
		for x := range world.GridSize {
			r := '.'
			if b, ok := s.Grid.At(world.Pos(x, y)); ok {
				r = previewLetters[b.Type]
			}
			sb.WriteRune(r)
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// previewScreen draws the grid with the configured block assets.
func previewScreen(s world.State, cfg config.MinerConfig) *core.Screen {
	cw := cfg.Display.CellWidth
	screen := core.NewScreen(world.GridSize*cw, world.GridSize)
	s.Grid.Each(func(b world.Block) {
		a := cfg.Assets[b.Type.String()]
		for i := range cw {
			screen.SetColor(b.Pos.X*cw+i, b.Pos.Y, a.Rune(), a.ColorValue())
		}
	})
	return screen
}

func writeCounts(out io.Writer, s world.State) {
	counts := make(map[world.BlockType]int)
	s.Grid.Each(func(b world.Block) {
		counts[b.Type]++
	})
	for _, t := range world.BlockTypes {
		fmt.Fprintf(out, "  %-8s %3d\n", t, counts[t])
	}
}
