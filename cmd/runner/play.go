package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/replay"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagMute       bool
	flagVolume     float64
	flagRecord     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a runner session.

Controls:
  Space/Up/W/Click  - Jump
  P                 - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Scroll speed ramps slowly
  normal - Default ramp
  hard   - Scroll speed ramps fast
  fixed  - No progression, stays at base speed

Asset sources:
  builtin         - Embedded terminal sprites (default)
  dir:/path       - <id>.png files in a directory

Examples:
  runner play
  runner play --difficulty hard
  runner play --assets dir:./sprites
  runner play --seed 42 --record run.yaml
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	addSoundFlags(playCmd)
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay of the session to this file on exit")
}

// addGameFlags registers the flags every command that starts a game accepts.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagAssets, "assets", registry.DefaultSource, "Asset source: builtin or dir:/path")
}

// loadRunnerConfig loads the config and applies the difficulty flag.
func loadRunnerConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}
	return cfg, nil
}

// checkAssetSource fails early on an unknown --assets scheme.
func checkAssetSource() error {
	scheme, _ := registry.ParseSource(flagAssets)
	if !registry.Exists(scheme) {
		return fmt.Errorf("unknown asset source %q; run 'runner assets --list'", scheme)
	}
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// openStore opens the score database. Games still work without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// addSoundFlags registers the audio flags of the local commands.
func addSoundFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0, "Volume as a power of two (-1 halves, 1 doubles)")
}

// openSound initializes the speaker unless muted.
func openSound(logger *log.Logger) *audio.SoundManager {
	if flagMute {
		return nil
	}
	sm := audio.NewSoundManager()
	sm.SetVolume(flagVolume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
	}
	logger.Debug("audio", "enabled", sm.Enabled(), "volume", flagVolume)
	return sm
}

func runPlay(_ *cobra.Command, _ []string) error {
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

	cfg := runtimeConfig()
	logger.Debug("starting session", "seed", cfg.Seed, "difficulty", runnerCfg.Difficulty.Preset, "assets", flagAssets)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sound := openSound(logger)
	if sound != nil {
		defer sound.Cleanup()
	}

	var rec *replay.Recorder
	if flagRecord != "" {
		rec = replay.NewRecorder(cfg.Seed, runnerCfg, flagAssets)
	}

	final, runErr := tui.Run(tui.Options{
		Runner:      runnerCfg,
		AssetSource: flagAssets,
		Store:       store,
		Sound:       sound,
		Recorder:    rec,
		Logger:      logger,
	}, cfg)

	if rec != nil {
		if err := replay.Save(flagRecord, rec.Recording()); err != nil {
			return err
		}
		fmt.Printf("Recorded %d ticks to %s\n", rec.Len(), flagRecord)
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	if final.Status() == assets.StatusFailed {
		return final.Err()
	}
	return nil
}
