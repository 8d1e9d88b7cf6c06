package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neruppu-daa/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration Neruppu Daa would run with, after applying
the first config file found over the built-in defaults.

Search order:
  --config <path>
  ~/.neruppu/config.yaml
  ./configs/neruppu.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if source == "" {
		source = "built-in defaults"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", source)
	cmd.OutOrStdout().Write(data)
}
