package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagUser  string
	flagPlain bool
	flagClear bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recorded SSH sessions",
	Long: `Display the most recent SSH play sessions recorded by 'snake serve'.

On a terminal the list opens in an interactive table. Use --plain or
pipe the output to get a static table instead.

Examples:
  snake sessions
  snake sessions --limit 50
  snake sessions --user alice --plain
  snake sessions --clear`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of sessions to show")
	sessionsCmd.Flags().StringVar(&flagUser, "user", "", "Only show sessions of this SSH user")
	sessionsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a static table instead of the interactive view")
	sessionsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded sessions")
	sessionsCmd.Flags().StringVar(&flagDBPath, "db", "~/.snake/sessions.db", "Path to session database")
}

func runSessions(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		n, clearErr := clearSessions(store)
		if clearErr != nil {
			return clearErr
		}
		fmt.Printf("Deleted %d sessions.\n", n)
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && flagUser == "" && term.IsTerminal(fd) {
		width, height := 80, 24 // Defaults
		if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
			width, height = w, h
		}
		return tui.RunSessions(store, flagLimit, width, height)
	}

	var records []storage.SessionRecord
	if flagUser != "" {
		records, err = store.UserSessions(flagUser, flagLimit)
	} else {
		records, err = store.RecentSessions(flagLimit)
	}
	if err != nil {
		return err
	}

	total, err := store.SessionCount()
	if err != nil {
		return err
	}

	fmt.Println(tui.RenderSessions(records))
	fmt.Printf("\nShowing %d of %d sessions.\n", len(records), total)
	return nil
}

// clearSessions empties the session log and returns how many records it held.
func clearSessions(store *storage.Store) (int, error) {
	n, err := store.SessionCount()
	if err != nil {
		return 0, err
	}
	if err := store.ClearSessions(); err != nil {
		return 0, err
	}
	return n, nil
}
