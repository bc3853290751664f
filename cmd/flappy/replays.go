package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded runs",
	Long: `List the most recent recorded runs.

Opens an interactive table by default: Enter re-simulates the selected run
and D deletes it. Use --plain for a text listing.

Examples:
  flappy replays
  flappy replays --plain --limit 5`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

func init() {
	replaysCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text listing instead of the interactive table")
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")
}

func runReplays(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if !flagPlain {
		gameCfg, err := loadConfig()
		if err != nil {
			return err
		}
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunReplays(store, gameCfg, flagLimit, width, height)
	}

	entries, err := store.RecentReplays(flagLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println("Run 'flappy play' to record one!")
		return nil
	}

	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-36s  %-16s  %7s  %8s  %5s\n", "Run", "Date", "Ticks", "Time", "Flaps")
	fmt.Printf("  %-36s  %-16s  %7s  %8s  %5s\n", "---", "----", "-----", "----", "-----")
	for _, e := range entries {
		fmt.Printf("  %-36s  %-16s  %7d  %8s  %5d\n",
			e.RunID,
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Ticks,
			e.Duration().Truncate(100*time.Millisecond),
			e.Flaps,
		)
	}
	return nil
}
