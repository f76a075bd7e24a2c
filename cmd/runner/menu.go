package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the runner with the main menu",
	Long: `Start the runner in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  runner menu
  runner menu --fps 30
  runner menu --difficulty easy --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
	addSoundFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(true)
	if err != nil {
		return err
	}

	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}
	if err := checkAssetSource(); err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sound := openSound(logger)
	if sound != nil {
		defer sound.Cleanup()
	}

	cfg := runtimeConfig()
	fixedSeed := flagSeed != 0

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		switch menuResult.Choice {
		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil // User quit from scoreboard
			}

		case tui.MenuChoicePlay:
			// Fresh seed for each game unless one was given
			if !fixedSeed {
				cfg.Seed = time.Now().UnixNano()
			}

			final, runErr := tui.Run(tui.Options{
				Runner:      runnerCfg,
				AssetSource: flagAssets,
				Store:       store,
				Sound:       sound,
				Logger:      logger,
			}, cfg)
			if runErr != nil {
				return fmt.Errorf("error running game: %w", runErr)
			}
			if final.IsQuitting() {
				return nil
			}
		}

		// Loop back to menu
	}
}
