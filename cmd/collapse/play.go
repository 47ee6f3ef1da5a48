package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-collapse/internal/config"
	"github.com/vovakirdan/tui-collapse/internal/platform/tui"
	"github.com/vovakirdan/tui-collapse/internal/session"
	"github.com/vovakirdan/tui-collapse/internal/storage"
)

var (
	flagDifficulty string
	flagFPS        int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a new collapse session.

Controls:
  Arrows/hjkl  - Move cursor
  Enter/Space  - Collapse the group under the cursor
  R            - Replay
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options (asked interactively when --difficulty is not given):
  easy   - One color fewer, three extra moves
  normal - Configuration as loaded
  hard   - One color more, two moves fewer

Examples:
  collapse play
  collapse play --difficulty hard
  collapse play --seed 42 --log-file ./collapse.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// The alternate screen owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early for the difficulty selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		chosen, ok, selErr := tui.RunDifficultySelector(cfg, width)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User quit the selector
		if !ok {
			return
		}
		preset = chosen
	}
	config.ApplyDifficulty(&cfg, preset)
	if err := tui.CheckConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Board cells are two columns wide, plus border, title, HUD and help lines.
	needW, needH := cfg.Width*2+2, cfg.Height+6
	if width < needW || height < needH {
		fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, need at least %dx%d for a %dx%d board\n",
			width, height, needW, needH, cfg.Width, cfg.Height)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ctrl, err := session.New(cfg, rng, session.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session started", "session", ctrl.ID(), "seed", seed, "board", cfg.BoardKey(), "difficulty", preset)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(ctrl, store, logger, flagFPS)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
