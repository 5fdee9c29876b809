// herald is a real-time top-down action game that runs in the terminal.
//
// Usage:
//
//	herald play              - Play locally
//	herald serve             - Start SSH server for remote play
//	herald runs              - Show recorded runs
//	herald missions          - Show the mission table
//
// Global flags:
//
//	--db <path>          - Set database path (default: ~/.herald/runs.db)
//	--log-level <level>  - Set log level (debug, info, warn, error)
//	--log-file <path>    - Log file for interactive play (default: ~/.herald/herald.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "herald",
	Short: "Herald - raise the dead, survive the waves",
	Long: `Herald is a real-time top-down action game played in the terminal.
Cut down crawlers, spitters and bats, raise their corpses as minions and
follow the quest line until the waves overwhelm you.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  runs      - View recorded runs
  missions  - Print the mission table

Examples:
  herald play
  herald play --difficulty apex
  herald serve --ssh :2222
  herald runs --difficulty master`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.herald/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.herald/herald.log", "Log file used while the TUI owns the terminal")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(missionsCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens the --log-file for appending. The caller closes it.
func openLogFile() (*os.File, error) {
	path, err := expandHome(flagLogFile)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
