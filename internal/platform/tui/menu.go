package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/herald/internal/config"
	"github.com/vovakirdan/herald/internal/storage"
)

// menuOutcome is what a key press in the menu asks the host to do.
type menuOutcome int

const (
	menuStay menuOutcome = iota
	menuStart
	menuBoard
	menuQuit
)

// MenuItem is one selectable difficulty.
type MenuItem struct {
	Difficulty config.Difficulty
	Mods       config.Modifiers
	BestWave   int
}

// MenuModel is the difficulty picker.
type MenuModel struct {
	items  []MenuItem
	cursor int
	width  int
	keys   MenuKeyMap
	help   help.Model
}

// NewMenuModel creates a menu with one item per difficulty preset. The best
// wave per preset is read from store when one is available.
func NewMenuModel(store *storage.Store, initial config.Difficulty, width int) MenuModel {
	items := make([]MenuItem, 0, len(config.Difficulties))
	cursor := 0
	for i, d := range config.Difficulties {
		item := MenuItem{Difficulty: d, Mods: config.ModifiersFor(d)}
		if store != nil {
			if best, err := store.BestWave(string(d)); err == nil {
				item.BestWave = best
			}
		}
		if d == initial {
			cursor = i
		}
		items = append(items, item)
	}

	h := help.New()
	h.Width = width
	return MenuModel{
		items:  items,
		cursor: cursor,
		width:  width,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Update handles a key press.
func (m MenuModel) Update(msg tea.KeyMsg) (MenuModel, menuOutcome) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, menuQuit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			return m, menuStart
		}
	case key.Matches(msg, m.keys.Board):
		return m, menuBoard
	}
	return m, menuStay
}

// Resize updates the layout width.
func (m *MenuModel) Resize(width int) {
	m.width = width
	m.help.Width = width
}

// Selected returns the difficulty under the cursor.
func (m MenuModel) Selected() config.Difficulty {
	if len(m.items) == 0 {
		return config.DifficultyVeteran
	}
	return m.items[m.cursor].Difficulty
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("93"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("H E R A L D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your trial", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		best := "-"
		if item.BestWave > 0 {
			best = fmt.Sprintf("wave %d", item.BestWave)
		}
		line := fmt.Sprintf("%s%-10s  hp x%.2f  dmg x%.2f  spawn x%.2f  best %s",
			cursor, item.Difficulty.Label(), item.Mods.EnemyHP, item.Mods.EnemyDamage, item.Mods.SpawnInterval, best)
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
