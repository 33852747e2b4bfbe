package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-miner/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would use, after the search order
--config, ~/.miner/configs/miner.yaml, ./configs/miner.yaml, embedded default.

Examples:
  miner config
  miner config --defaults > ~/.miner/configs/miner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default config")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML())
		return err
	}

	cfg, source, err := config.LoadMiner(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
