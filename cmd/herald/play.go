package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/herald/internal/audio"
	"github.com/vovakirdan/herald/internal/config"
	"github.com/vovakirdan/herald/internal/core"
	"github.com/vovakirdan/herald/internal/platform/tui"
	"github.com/vovakirdan/herald/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagFPS        int
	flagNoAudio    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a local session: title, difficulty menu, then the run.

Controls:
  WASD/Arrows     - Move
  Space/J         - Attack (three-step combo)
  K/Shift+Arrow   - Dash
  E               - Raise the nearest corpse
  P               - Pause
  R               - Restart (after death)
  B/Esc           - Back to menu
  Q/Ctrl+C        - Quit

Difficulty presets:
  scavenger - weaker, slower enemies
  veteran   - the baseline
  master    - tougher enemies, faster waves
  apex      - for those who have already won

Examples:
  herald play
  herald play --difficulty master
  herald play --config ./my-herald.yaml --seed 42
  herald play --no-audio`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty: scavenger, veteran, master, apex")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Frame rate")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound cues")
}

func runPlay(_ *cobra.Command, _ []string) error {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	tuning, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger, err := newLogger(logFile, "herald")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := "local"
	if u, userErr := user.Current(); userErr == nil {
		player = u.Username
	}

	noAudio := flagNoAudio
	err = tui.Run(tui.Options{
		Tuning: tuning,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Difficulty: difficulty,
		Store:      store,
		Logger:     logger,
		Player:     player,
		OpenAudio: func() audio.Sink {
			return audio.Open(!noAudio, logger)
		},
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
