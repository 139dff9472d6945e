// xonix is a terminal territory-claiming game platform.
//
// Usage:
//
//	xonix list              - List available games
//	xonix play <game>       - Play a game
//	xonix menu              - Start menu to pick games interactively
//	xonix serve             - Start SSH server for remote play
//	xonix scores <game>     - Show best runs for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.xonix/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/arcadegrid/xonix-tui/internal/games/xonix"
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
	Use:   "xonix",
	Short: "Xonix - Claim territory in your terminal",
	Long: `Xonix is a terminal game platform built around the classic
territory-claiming game: draw trails through open ground, wall off
regions, and avoid the bouncing enemies.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  xonix list
  xonix play xonix
  xonix menu
  xonix serve --ssh :2222
  xonix scores xonix`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.xonix/results.db", "Path to results database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
