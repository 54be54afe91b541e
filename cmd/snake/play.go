package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/applog"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	flagFrontend string
	flagSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Snake.

Controls:
  Arrow keys       - Steer
  Q/Esc/Ctrl+C     - Quit

The board is 32x24 cells and needs a terminal of at least 64x24.
The game ends when the snake runs into itself.

Examples:
  snake play
  snake play --frontend tcell
  snake play --sound --seed 42`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	registerPlayFlags(playCmd)
}

func registerPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFrontend, "frontend", "", "Frontend: tea or tcell (default from config)")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play a tone when the snake eats")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !registry.Exists(cfg.Frontend) {
		return fmt.Errorf("unknown frontend %q, run 'snake list' to see available frontends", cfg.Frontend)
	}

	board := core.DefaultBoard()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && !board.FitsTerminal(w, h) {
		cols, rows := board.TermSize()
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, cols, rows)
	}

	logger, closer, err := applog.ForPlay(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.DefaultConfig()
	runtime.Seed = seed

	frontend, err := registry.Create(cfg.Frontend)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snap, err := frontend.Play(ctx, snake.New(runtime), registry.Options{
		Runtime: runtime,
		Sound:   cfg.Sound,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	fmt.Println(summary(snap))
	return nil
}

// summary describes how a game ended.
func summary(snap snake.Snapshot) string {
	switch snap.State {
	case snake.StateGameOver:
		return fmt.Sprintf("Game over: length %d after %d ticks.", snap.Length, snap.Tick)
	case snake.StateBoardFull:
		return fmt.Sprintf("Board full: length %d after %d ticks.", snap.Length, snap.Tick)
	default:
		return fmt.Sprintf("Quit: length %d after %d ticks.", snap.Length, snap.Tick)
	}
}
