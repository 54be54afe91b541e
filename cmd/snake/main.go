// snake is a single-player Snake game for the terminal.
//
// Usage:
//
//	snake                    - Play with the configured frontend
//	snake play               - Same as above
//	snake list               - List available frontends
//	snake serve              - Start SSH server for remote play
//	snake sessions           - Show recorded SSH sessions
//	snake config             - Print the default config file
//
// Global flags:
//
//	--config <path>     - Path to a platform config YAML
//	--seed <value>      - Set RNG seed for reproducible apple placement
//	--log-level <level> - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-snake/internal/platform/term"
	_ "github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a minimal single-player Snake game for the terminal.

Steer the snake with the arrow keys, eat apples to grow, and avoid
running into yourself. The board wraps around at the edges.

Available commands:
  play      - Play a game (default)
  list      - Show available frontends
  serve     - Start SSH server for remote play
  sessions  - View recorded SSH sessions
  config    - Print the default config file

Examples:
  snake
  snake play --frontend tcell
  snake serve --ssh :2222
  snake sessions --limit 50`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to platform config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	registerPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(configCmd)
}
