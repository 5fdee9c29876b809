package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/herald/internal/config"
	"github.com/vovakirdan/herald/internal/storage"
)

var (
	flagRunsLimit      int
	flagRunsDifficulty string
	flagRunsStats      bool
	flagRunsClear      bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs, ordered by wave then kills.

Examples:
  herald runs
  herald runs --difficulty apex --limit 5
  herald runs --stats
  herald runs --clear --difficulty scavenger`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().StringVar(&flagRunsDifficulty, "difficulty", "", "Only show runs of this difficulty")
	runsCmd.Flags().BoolVar(&flagRunsStats, "stats", false, "Show per-difficulty totals instead of runs")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete recorded runs (all, or of --difficulty)")
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

func runRuns(cmd *cobra.Command, _ []string) error {
	var difficulty config.Difficulty
	if flagRunsDifficulty != "" {
		d, err := config.ParseDifficulty(flagRunsDifficulty)
		if err != nil {
			return err
		}
		difficulty = d
	}

	store, err := storage.Open(flagDBPath, nil)
	if err != nil {
		return fmt.Errorf("error opening run history: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	switch {
	case flagRunsClear:
		if err := store.ClearRuns(string(difficulty)); err != nil {
			return fmt.Errorf("error clearing runs: %w", err)
		}
		fmt.Fprintln(out, "Run history cleared.")
		return nil
	case flagRunsStats:
		stats, err := store.Stats()
		if err != nil {
			return fmt.Errorf("error reading stats: %w", err)
		}
		fmt.Fprintln(out, statsTable(stats))
		return nil
	}

	var runs []storage.RunRecord
	title := "Fallen Heralds"
	if difficulty == "" {
		runs, err = store.TopRuns(flagRunsLimit)
	} else {
		runs, err = store.RunsByDifficulty(string(difficulty), flagRunsLimit)
		title += " - " + difficulty.Label()
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Fprintln(out, headerStyle.Render(title))
	fmt.Fprintln(out)
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'herald play' to leave the first mark!")
		return nil
	}
	fmt.Fprintln(out, runsTable(runs))
	return nil
}

func runsTable(runs []storage.RunRecord) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "PLAYER", "MODE", "WAVE", "RANK", "KILLS", "STAGE", "CLASS", "TIME", "DATE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for i, r := range runs {
		t.Row(
			fmt.Sprint(i+1),
			r.Player,
			strings.ToUpper(r.Difficulty),
			fmt.Sprint(r.Wave),
			fmt.Sprint(r.Level),
			fmt.Sprint(r.Kills),
			fmt.Sprint(r.Stage+1),
			r.Class,
			r.Elapsed.Round(time.Second).String(),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return t
}

func statsTable(stats map[string]*storage.DifficultyStats) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("MODE", "RUNS", "BEST WAVE", "BEST RANK", "KILLS", "AVG KILLS", "LAST PLAYED")

	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		s := stats[k]
		t.Row(
			strings.ToUpper(s.Difficulty),
			fmt.Sprint(s.Runs),
			fmt.Sprint(s.BestWave),
			fmt.Sprint(s.BestLevel),
			fmt.Sprint(s.TotalKills),
			fmt.Sprintf("%.1f", s.AvgKills),
			s.LastPlayed.Format("2006-01-02 15:04"),
		)
	}
	return t
}
