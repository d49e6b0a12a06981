package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quarterslot/quarters/internal/config"
	"github.com/quarterslot/quarters/internal/core"
	"github.com/quarterslot/quarters/internal/games/barrier"
	"github.com/quarterslot/quarters/internal/games/blockfall"
	"github.com/quarterslot/quarters/internal/games/girders"
	"github.com/quarterslot/quarters/internal/games/minigolf"
	"github.com/quarterslot/quarters/internal/platform/tui"
	"github.com/quarterslot/quarters/internal/registry"
	"github.com/quarterslot/quarters/internal/storage"
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
  WASD/Arrows - Move
  Space       - Jump / strike
  F/Enter     - Action (start a wall, drop a piece)
  X/Tab       - Rotate
  P           - Pause
  B/Esc       - Back to menu (when paused or game over)
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower speeds, wider tolerances, an extra life where games have them
  normal - Default tuning
  hard   - Faster speeds, tighter tolerances

Examples:
  quarters play barrier
  quarters play blockfall --difficulty easy
  quarters play girders --difficulty hard
  quarters play minigolf --config ./my-course.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// applyGameFlags routes the --config and --difficulty flags to the right game
// package before the game is created.
func applyGameFlags(gameID string) {
	switch gameID {
	case "barrier":
		barrier.SetConfigPath(flagConfig)
		barrier.SetDifficultyPreset(flagDifficulty)
	case "blockfall":
		blockfall.SetConfigPath(flagConfig)
		blockfall.SetDifficultyPreset(flagDifficulty)
	case "girders":
		girders.SetConfigPath(flagConfig)
		girders.SetDifficultyPreset(flagDifficulty)
	case "minigolf":
		minigolf.SetConfigPath(flagConfig)
		minigolf.SetDifficultyPreset(flagDifficulty)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'quarters list' to see available games.")
		os.Exit(1)
	}

	// Reject difficulty typos before launching the game
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	applyGameFlags(gameID)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg, flagPlayer)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
