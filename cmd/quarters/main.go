// quarters is a TUI arcade platform for playing retro-style games in the terminal.
//
// Usage:
//
//	quarters list              - List available games
//	quarters play <game>       - Play a game
//	quarters menu              - Start menu to pick games interactively
//	quarters serve             - Start SSH server for remote play
//	quarters scores [game]     - Show high scores
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.quarters/scores.db)
//	--player <name>  - Default name for score entries
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/quarterslot/quarters/internal/games/barrier"
	_ "github.com/quarterslot/quarters/internal/games/blockfall"
	_ "github.com/quarterslot/quarters/internal/games/girders"
	_ "github.com/quarterslot/quarters/internal/games/minigolf"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagPlayer string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quarters",
	Short: "Quarters - Play retro games in your terminal",
	Long: `Quarters is a terminal-based gaming platform that lets you play
classic-style games directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  quarters list
  quarters play barrier
  quarters menu
  quarters serve --ssh :2222
  quarters scores blockfall`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.quarters/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Default name for score entries")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
