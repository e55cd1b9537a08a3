package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/colordash/colordash/internal/core"
	"github.com/colordash/colordash/internal/game"
	"github.com/colordash/colordash/internal/platform/tui"
	"github.com/colordash/colordash/internal/registry"
	"github.com/colordash/colordash/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Color Dash",
	Long: `Start playing. The optional mode argument picks a variant:

  colordash          - Classic: shapes that escape the field cost a life
  colordash_relaxed  - Relaxed: only shapes landing on the zones are judged

Controls:
  Left/A/H   - Rotate zones left
  Right/D/L  - Rotate zones right
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty presets:
  easy   - Extra lives, slower shapes, sparser spawns
  normal - The config defaults
  hard   - Fewer lives, faster shapes, denser spawns

Examples:
  colordash play
  colordash play colordash_relaxed
  colordash play --difficulty hard
  colordash play --config ./my-colordash.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "colordash"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		listModes(os.Stderr)
		os.Exit(1)
	}

	// Terminal size, falling back to the classic 80x24
	width, height := 80, 24
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

	// Config path and difficulty apply on the game's next Reset
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// listModes prints the registered game modes.
func listModes(w *os.File) {
	fmt.Fprintln(w, "Available modes:")
	for _, info := range registry.List() {
		fmt.Fprintf(w, "  %-20s %s\n", info.ID, info.Title)
	}
}
