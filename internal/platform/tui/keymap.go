package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/herald/internal/core"
)

// HoldWindow is how long a key press keeps its intent active. Terminals
// report presses and auto-repeats but never releases.
const HoldWindow = 120 * time.Millisecond

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Attack    key.Binding
	Dash      key.Binding
	Reanimate key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Attack, k.Dash, k.Reanimate, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Attack, k.Dash, k.Reanimate},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d", "right"),
		),
		Attack: key.NewBinding(
			key.WithKeys(" ", "j"),
			key.WithHelp("space/j", "attack"),
		),
		Dash: key.NewBinding(
			key.WithKeys("k", "shift+up", "shift+down", "shift+left", "shift+right"),
			key.WithHelp("k", "dash"),
		),
		Reanimate: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "arise"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuKeyMap defines the key bindings for menus.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Board  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Board, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Board, k.Quit}}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Board: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "runs"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HeldInput turns discrete key presses into per-frame intents. Each press
// keeps its intent live until HoldWindow after the latest press.
type HeldInput struct {
	up, down, left, right time.Time
	attack, dash, arise   time.Time
}

// NewHeldInput creates an empty input state.
func NewHeldInput() *HeldInput {
	return &HeldInput{}
}

// Press records a key press at now. It reports whether the key was a
// gameplay key.
func (h *HeldInput) Press(msg tea.KeyMsg, keys KeyMap, now time.Time) bool {
	switch {
	case key.Matches(msg, keys.Dash):
		h.dash = now
		// Shifted arrows dash in their own direction
		switch msg.String() {
		case "shift+up":
			h.up = now
		case "shift+down":
			h.down = now
		case "shift+left":
			h.left = now
		case "shift+right":
			h.right = now
		}
	case key.Matches(msg, keys.Up):
		h.up = now
	case key.Matches(msg, keys.Down):
		h.down = now
	case key.Matches(msg, keys.Left):
		h.left = now
	case key.Matches(msg, keys.Right):
		h.right = now
	case key.Matches(msg, keys.Attack):
		h.attack = now
	case key.Matches(msg, keys.Reanimate):
		h.arise = now
	default:
		return false
	}
	return true
}

// Release drops every held intent.
func (h *HeldInput) Release() {
	*h = HeldInput{}
}

func held(t, now time.Time) bool {
	return !t.IsZero() && now.Sub(t) < HoldWindow
}

// Intents returns the intents live at now. Opposite directions cancel.
func (h *HeldInput) Intents(now time.Time) core.Intents {
	dx, dy := 0, 0
	if held(h.left, now) {
		dx--
	}
	if held(h.right, now) {
		dx++
	}
	if held(h.up, now) {
		dy--
	}
	if held(h.down, now) {
		dy++
	}
	return core.Intents{
		Move:      core.MoveFromAxes(dx, dy),
		Attack:    held(h.attack, now),
		Dash:      held(h.dash, now),
		Reanimate: held(h.arise, now),
	}
}
