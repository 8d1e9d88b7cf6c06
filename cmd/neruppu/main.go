// neruppu is Neruppu Daa, a terminal survival game: dodge the falling
// fire & brimstone, grab power-ups and last as long as you can.
//
// Usage:
//
//	neruppu                  - Play
//	neruppu config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Use a custom config YAML
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--mute             - Disable sound
//	--log-file <path>  - Write diagnostics to a file while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagMute    bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neruppu",
	Short: "Neruppu Daa - survive the fire stones",
	Long: `Neruppu Daa is a terminal survival game. Fire stones rain down
faster the longer you last; one hit ends the run.

Controls:
  A/D or Left/Right  - Move
  Space              - Start from the menu
  R                  - Back to the menu after game over
  Q/Esc              - Quit

Power-ups:
  *  Double points     +  Shield boost
  !  Slow motion       #  Shield

Examples:
  neruppu
  neruppu --seed 42 --mute
  neruppu --config ./my-neruppu.yaml --log-file /tmp/neruppu.log
  neruppu config > ~/.neruppu/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (overrides log.file)")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
}
