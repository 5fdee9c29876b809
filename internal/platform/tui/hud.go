package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/herald/internal/sim"
)

// hudLines is the number of rows the HUD takes above the world.
const hudLines = 3

// barWidth is the width of each resource bar.
const barWidth = 14

var (
	hudLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudValueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	hudQuestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	hudDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hudClassStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("93"))
	hudNoticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Italic(true)
	hudOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 4).
			Align(lipgloss.Center)
)

// HUD draws the heads-up display from a frame's UI snapshot.
type HUD struct {
	hp, stamina, mana, xp progress.Model
}

// NewHUD creates the HUD bars.
func NewHUD() HUD {
	bar := func(color string) progress.Model {
		return progress.New(
			progress.WithSolidFill(color),
			progress.WithoutPercentage(),
			progress.WithWidth(barWidth),
			progress.WithFillCharacters('█', '░'),
		)
	}
	return HUD{
		hp:      bar("#d7263d"),
		stamina: bar("#f4d35e"),
		mana:    bar("#3a86ff"),
		xp:      bar("#8338ec"),
	}
}

func ratio(v, maxV float64) float64 {
	if maxV <= 0 {
		return 0
	}
	return min(1, max(0, v/maxV))
}

// View renders the HUD rows for ui, fitted to width.
func (h HUD) View(ui sim.UISnapshot, width int) string {
	st := ui.Stats
	label := hudLabelStyle.Render

	resources := strings.Join([]string{
		label("HP ") + h.hp.ViewAs(ratio(st.HP, st.MaxHP)) + fmt.Sprintf(" %3.0f", st.HP),
		label("ST ") + h.stamina.ViewAs(ratio(st.Stamina, st.MaxStamina)),
		label("MP ") + h.mana.ViewAs(ratio(st.Mana, st.MaxMana)),
	}, "  ")

	class := ""
	if ui.Class != sim.ClassNone {
		class = "  " + hudClassStyle.Render(ui.Class.String())
	}
	progression := label("RANK ") + hudValueStyle.Render(fmt.Sprint(st.Level)) + " " +
		h.xp.ViewAs(ratio(st.XP, st.MaxXP)) +
		label("  WAVE ") + hudValueStyle.Render(fmt.Sprint(ui.Wave)) +
		label("  KILLS ") + hudValueStyle.Render(fmt.Sprint(ui.Kills)) +
		label("  MINIONS ") + hudValueStyle.Render(fmt.Sprintf("%d/%d", st.MinionCount, st.MinionCap)) +
		label("  ") + hudValueStyle.Render(formatElapsed(ui.Elapsed)) +
		label("  "+ui.Difficulty.Label()) + class

	return lipgloss.NewStyle().MaxWidth(width).Render(
		strings.Join([]string{resources, progression, questLine(ui)}, "\n"),
	)
}

// questLine shows the mission and the latest notification.
func questLine(ui sim.UISnapshot) string {
	var b strings.Builder
	if m := ui.Mission; m != nil {
		style := hudQuestStyle
		if m.Completed {
			style = hudDoneStyle
		}
		progressText := fmt.Sprintf("%d/%d", int(m.Current), int(m.Target))
		if m.Type == sim.MissionSurvive {
			progressText = fmt.Sprintf("%.0fs/%.0fs", m.Current, m.Target)
		}
		b.WriteString(style.Render(fmt.Sprintf("[%s] %s  %s", m.Title, m.Description, progressText)))
	}
	if n := len(ui.Notifications); n > 0 {
		b.WriteString("  ")
		b.WriteString(hudNoticeStyle.Render("» " + ui.Notifications[n-1]))
	}
	return b.String()
}

// formatElapsed renders seconds as m:ss.
func formatElapsed(secs float64) string {
	d := time.Duration(secs * float64(time.Second)).Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// gameOverView is the overlay shown at GAMEOVER.
func gameOverView(sum sim.Summary, saved bool, width int) string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Render("Y O U   H A V E   F A L L E N"),
		"",
		fmt.Sprintf("Wave %d   Rank %d   Kills %d", sum.Wave, sum.Level, sum.Kills),
		fmt.Sprintf("Quest stage %d   Time %s   %s", sum.Stage+1, formatElapsed(sum.Elapsed), sum.Difficulty.Label()),
	}
	if saved {
		lines = append(lines, hudLabelStyle.Render("run recorded"))
	}
	lines = append(lines, "", "R: Restart  |  B: Menu  |  Q: Quit")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, hudOverlayStyle.Render(strings.Join(lines, "\n")))
}
