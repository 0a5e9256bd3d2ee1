package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"termcraft/internal/core"
	"termcraft/internal/games/craft"
	"termcraft/internal/games/farm"
	"termcraft/internal/platform/tui"
	"termcraft/internal/registry"
	"termcraft/internal/storage"
)

var (
	flagConfig   string
	flagSavePath string
)

var playCmd = &cobra.Command{
	Use:   "play <world>",
	Short: "Play a world",
	Long: `Start playing the specified world.

Controls:
  WASD/Arrows  - Move
  Space        - Jump (craft) / context action (farm)
  Z/Enter      - Place the selected block (craft)
  X            - Mine
  E            - Till soil (farm)
  1-5          - Select hotbar slot
  Tab          - Toggle hotbar
  Ctrl+S       - Save world to disk
  Ctrl+L       - Load world from disk
  Mouse        - Left click mines, right click places (craft)
  P            - Pause
  R            - Regenerate the world
  Q/Ctrl+C     - Quit

Examples:
  termcraft play craft
  termcraft play farm --seed 42
  termcraft play craft --save ./my_world.json
  termcraft play farm --config ./my-farm.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom world config YAML")
	playCmd.Flags().StringVar(&flagSavePath, "save", "", "Path to the world save file")
}

// applyGameFlags pushes CLI overrides into the game packages before creation.
func applyGameFlags(gameID string) {
	switch gameID {
	case "craft":
		craft.SetConfigPath(flagConfig)
		craft.SetSavePath(flagSavePath)
	case "farm":
		farm.SetConfigPath(flagConfig)
		farm.SetSavePath(flagSavePath)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown world %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'termcraft list' to see available worlds.")
		os.Exit(1)
	}

	// Get terminal size
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

	applyGameFlags(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating world: %v\n", err)
		os.Exit(1)
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running world: %v\n", runErr)
		os.Exit(1)
	}
}
