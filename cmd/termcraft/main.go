// termcraft is a terminal block-sandbox platform with two worlds: a
// side-view craft mode and a top-down farm mode.
//
// Usage:
//
//	termcraft list              - List available worlds
//	termcraft play <world>      - Play a world
//	termcraft menu              - Start menu to pick worlds interactively
//	termcraft serve             - Start SSH server for remote play
//	termcraft stats [world]     - Show session stats
//	termcraft gen <world>       - Print a generated map to stdout
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible worlds
//	--db <path>     - Set database path (default: ~/.termcraft/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "termcraft/internal/games/craft"
	_ "termcraft/internal/games/farm"
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
	Use:   "termcraft",
	Short: "Termcraft - Block sandbox worlds in your terminal",
	Long: `Termcraft is a terminal-based block sandbox with two worlds:
a side-view craft mode with gravity and digging, and a top-down farm
mode with tilling, crops and a day cycle.

Available commands:
  list     - Show all available worlds
  play     - Play a specific world directly
  menu     - Interactive world picker menu
  serve    - Start SSH server for remote play
  stats    - View session stats
  gen      - Print a generated map to stdout

Examples:
  termcraft list
  termcraft play craft
  termcraft play farm --seed 42
  termcraft menu
  termcraft serve --ssh :2222
  termcraft stats craft`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termcraft/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(genCmd)
}
