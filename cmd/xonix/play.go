package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadegrid/xonix-tui/internal/config"
	"github.com/arcadegrid/xonix-tui/internal/core"
	"github.com/arcadegrid/xonix-tui/internal/games/xonix"
	"github.com/arcadegrid/xonix-tui/internal/platform/tui"
	"github.com/arcadegrid/xonix-tui/internal/registry"
	"github.com/arcadegrid/xonix-tui/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer, slower enemies and a lower territory target
  normal - Default settings
  hard   - More, faster enemies and a higher territory target

Examples:
  xonix play xonix
  xonix play xonix --difficulty easy
  xonix play xonix --config ./my-xonix.yaml
  xonix play xonix --seed 12345`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// applyLaunchOptions pushes config path and difficulty flags into the
// game package before the registry creates an instance.
func applyLaunchOptions(gameID string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	switch gameID {
	case "xonix":
		xonix.SetConfigPath(flagConfig)
		xonix.SetDifficultyPreset(preset)
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'xonix list' to see available games.")
		os.Exit(1)
	}

	if err := applyLaunchOptions(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// When a custom config is given, surface its errors instead of
	// silently falling back to defaults.
	if flagConfig != "" {
		if _, err := config.LoadXonix(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
