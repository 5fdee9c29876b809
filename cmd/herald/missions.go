package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/herald/internal/config"
	"github.com/vovakirdan/herald/internal/sim"
)

var (
	flagMissionsConfig string
	flagMissionsWave   int
)

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "Print the mission table",
	Long: `Print the quest line as the simulation would install it at a given
wave: the fixed stages, then the repeating endgame mission.

Examples:
  herald missions
  herald missions --wave 3
  herald missions --config ./my-herald.yaml`,
	Args: cobra.NoArgs,
	RunE: runMissions,
}

func init() {
	missionsCmd.Flags().StringVar(&flagMissionsConfig, "config", "", "Path to custom tuning YAML")
	missionsCmd.Flags().IntVar(&flagMissionsWave, "wave", 1, "Wave used to scale targets and rewards")
}

func runMissions(cmd *cobra.Command, _ []string) error {
	tuning, err := config.Load(flagMissionsConfig)
	if err != nil {
		return err
	}
	if flagMissionsWave < 1 {
		return fmt.Errorf("--wave must be at least 1, got %d", flagMissionsWave)
	}

	tracker := sim.NewMissionTracker(tuning.Missions)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("STAGE", "TITLE", "TYPE", "TARGET", "REWARD XP", "DESCRIPTION")

	stages := len(tuning.Missions.Stages)
	for stage := range stages + 1 {
		m := tracker.Build(stage, flagMissionsWave)
		label := fmt.Sprint(stage + 1)
		if tracker.IsEndgame(stage) {
			label = "endgame"
		}
		t.Row(label, m.Title, string(m.Type), fmt.Sprintf("%.0f", m.Target), fmt.Sprintf("%.0f", m.RewardXP), m.Description)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Quest line at wave %d", flagMissionsWave)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, t)
	return nil
}
