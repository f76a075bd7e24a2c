// runner is a side-scrolling runner game for the terminal.
//
// Usage:
//
//	runner play              - Play a session
//	runner menu              - Start the main menu
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show high scores and recent runs
//	runner replay <file>     - Re-simulate a recorded session
//	runner assets            - Load and list the sprite set
//	runner config            - Print the default or effective config
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.runner/scores.db)
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

// logFile is the open --log-file, closed when the command finishes.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - jump the enemies in your terminal",
	Long: `Runner is a side-scrolling endless runner for the terminal.
The player runs automatically; jump over ground enemies and land on
floating platforms. The first enemy contact ends the run.

Available commands:
  play     - Play a session directly
  menu     - Main menu with play and high scores
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  replay   - Re-simulate a recorded session
  assets   - Load and list the sprite set
  config   - Print the default or effective config

Examples:
  runner play
  runner play --difficulty hard --record run.yaml
  runner replay run.yaml
  runner serve --ssh :2222
  runner scores --recent 20`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Interactive commands own the
// terminal, so they only log when --log-file is given.
func newLogger(interactive bool) (*log.Logger, error) {
	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, nil
}
