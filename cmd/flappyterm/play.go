package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nkaryakin/flappyterm/internal/config"
	"github.com/nkaryakin/flappyterm/internal/core"
	"github.com/nkaryakin/flappyterm/internal/platform/audio"
	"github.com/nkaryakin/flappyterm/internal/platform/tui"
	"github.com/nkaryakin/flappyterm/internal/storage"
)

var (
	flagConfig string
	flagSound  bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W/Enter  - Flap
  Mouse click       - Flap
  P/Esc             - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Examples:
  flappyterm play
  flappyterm play --seed 42
  flappyterm play --no-sound
  flappyterm play --config ./my-flappy.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagSound, "sound", true, "Enable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.8, "Master volume in [0, 1]")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagFPS > 0 {
		gameCfg.FPS = flagFPS
		if err := gameCfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --fps value: %v\n", err)
			os.Exit(1)
		}
	}

	// Get terminal size, fall back to 80x24
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: int(gameCfg.FPS),
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Sound is best-effort; a headless box just plays silent
	var sound *audio.Manager
	if flagSound {
		sound = audio.NewManager(flagVolume)
		if err := sound.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", err)
			sound = nil
		}
	}

	runErr := tui.Run(gameCfg, store, sound, rt)

	if sound != nil {
		sound.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
