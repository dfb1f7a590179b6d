// flappyterm is a terminal rendition of the one-button flapping game.
//
// Usage:
//
//	flappyterm play              - Play in the current terminal
//	flappyterm scores            - Show the high-score table
//	flappyterm serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Override the simulation frame rate
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.flappyterm/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    float64
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
	Use:   "flappyterm",
	Short: "Flappyterm - flap through pipes in your terminal",
	Long: `Flappyterm is a terminal rendition of the one-button flapping game.
Tap to climb, dodge the pipes, and chase your high score.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  flappyterm play
  flappyterm play --seed 42
  flappyterm scores
  flappyterm serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Float64Var(&flagFPS, "fps", 0, "Frame rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappyterm/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
