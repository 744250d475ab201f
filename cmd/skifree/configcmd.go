package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skifree/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML.

Save it as ~/.skifree/configs/skifree.yaml (or pass --config) and edit the
keys you want to change; missing keys keep their defaults.

Examples:
  skifree config > ~/.skifree/configs/skifree.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	return nil
}
