package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/replay"
)

var flagReplayAssets string

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded session",
	Long: `Re-run a session recorded with 'runner play --record' without a
terminal UI and print how it ended. The simulation is deterministic, so the
result matches the recorded session as long as the sprite sizes match.

Examples:
  runner replay run.yaml
  runner replay run.yaml --assets dir:./sprites`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayAssets, "assets", "", "Asset source (defaults to the one recorded)")
}

func runReplay(_ *cobra.Command, args []string) error {
	logger, err := newLogger(false)
	if err != nil {
		return err
	}

	rec, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	source := flagReplayAssets
	if source == "" {
		source = rec.Assets
	}
	provider, err := registry.Create(source)
	if err != nil {
		return err
	}
	catalog, err := assets.Load(context.Background(), provider, assets.DefaultIDs())
	if err != nil {
		return err
	}

	logger.Debug("replaying", "file", args[0], "frames", len(rec.Frames), "seed", rec.Seed, "assets", source)

	res, err := replay.Run(rec, catalog)
	if err != nil {
		return err
	}

	state := res.Final.State
	fmt.Printf("Replay - %s\n", args[0])
	fmt.Println()
	fmt.Printf("  Seed:      %d\n", rec.Seed)
	fmt.Printf("  Ticks:     %d\n", res.Ticks)
	fmt.Printf("  Jumps:     %d\n", res.Jumps)
	fmt.Printf("  Crashes:   %d\n", res.Crashes)
	fmt.Printf("  Restarts:  %d\n", res.Restarts)
	fmt.Println()
	fmt.Printf("  Score:     %d\n", int(state.Score))
	fmt.Printf("  Elapsed:   %.2fs\n", state.Elapsed)
	fmt.Printf("  Over:      %t\n", state.Over)
	return nil
}
