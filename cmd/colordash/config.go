package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/colordash/colordash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config YAML",
	Long: `Print the built-in default configuration to stdout.

Save it, tweak it, and play with it:
  colordash config > my-colordash.yaml
  colordash play --config my-colordash.yaml

Or install it as your personal default:
  mkdir -p ~/.colordash/configs
  colordash config > ~/.colordash/configs/colordash.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	if _, err := os.Stdout.Write(config.GetDefaultYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
}
