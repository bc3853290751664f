package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagMaxTicks int
	flagDelete   bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a recorded run",
	Long: `Re-run a recorded run headlessly and print its outcome.

The simulation is deterministic: the same seed, tick rate, configuration
and inputs always produce the same score. The configuration recorded with
the run is used; --config only applies to runs recorded without one.

Examples:
  flappy replay 3f1c2a9e-5b7d-4c1e-9a0b-1d2e3f4a5b6c
  flappy replay 3f1c2a9e-5b7d-4c1e-9a0b-1d2e3f4a5b6c --max-ticks 120
  flappy replay 3f1c2a9e-5b7d-4c1e-9a0b-1d2e3f4a5b6c --delete`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Stop after this many ticks (0 = the whole run)")
	replayCmd.Flags().BoolVar(&flagDelete, "delete", false, "Delete the run instead of re-simulating it")
}

func runReplay(_ *cobra.Command, args []string) error {
	runID := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagDelete {
		if err := store.DeleteReplay(runID); err != nil {
			return err
		}
		fmt.Printf("Deleted run %s\n", runID)
		return nil
	}

	r, err := store.Replay(runID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no run %q, run 'flappy replays --plain' to list runs", runID)
	}
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Debug("simulating run", "run", r.RunID, "seed", r.Seed, "tick_rate", r.TickRate, "events", len(r.Events))
	res := flappy.Simulate(cfg, r, flagMaxTicks)

	outcome := "ended"
	if !res.Ended {
		outcome = "stopped while still running"
	}
	fmt.Printf("Run:       %s\n", res.RunID)
	fmt.Printf("Seed:      %d\n", r.Seed)
	fmt.Printf("Ticks:     %d of %d recorded\n", res.Ticks, r.Ticks)
	fmt.Printf("Flaps:     %d\n", r.Flaps())
	fmt.Printf("Obstacles: %d\n", res.Obstacles)
	fmt.Printf("Score:     %d\n", res.Pairs)
	fmt.Printf("Outcome:   %s\n", outcome)
	if res.Recorded {
		fmt.Println("Config:    recorded with the run")
	} else {
		fmt.Println("Config:    current (the run has no recorded config)")
	}
	return nil
}
