// colordash is a terminal arcade game: rotate the colored zones so each
// falling shape lands on the zone matching its color.
//
// Usage:
//
//	colordash play [mode]    - Play (default mode: colordash)
//	colordash scores [mode]  - Show high scores
//	colordash serve          - Start SSH server for remote play
//	colordash config         - Print the default game config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.colordash/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its modes
	_ "github.com/colordash/colordash/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colordash",
	Short: "Color Dash - catch falling shapes with matching zones",
	Long: `Color Dash is a terminal arcade game. Colored shapes fall from the top
of the screen; rotate the three collector zones so the middle zone's color
matches each shape when it lands. Matches score, mismatches cost a life.

Available commands:
  play     - Play the game
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default config YAML

Examples:
  colordash play
  colordash play colordash_relaxed --difficulty easy
  colordash scores
  colordash serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colordash/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
