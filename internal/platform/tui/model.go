package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/herald/internal/audio"
	"github.com/vovakirdan/herald/internal/config"
	"github.com/vovakirdan/herald/internal/core"
	"github.com/vovakirdan/herald/internal/sim"
	"github.com/vovakirdan/herald/internal/storage"
)

// Options configures a Model. Zero values are valid; invalid tuning falls
// back to the defaults.
type Options struct {
	Tuning     config.HeraldConfig
	Runtime    core.RuntimeConfig
	Difficulty config.Difficulty // Preselected in the menu
	Store      *storage.Store    // nil disables run history
	Logger     *log.Logger
	Player     string

	// OpenAudio is called once during LOADING. nil plays silently.
	OpenAudio func() audio.Sink
}

// loadedMsg reports that LOADING finished.
type loadedMsg struct {
	sink audio.Sink
}

// cueRelay forwards cues to a sink that only exists after LOADING.
type cueRelay struct {
	sink audio.Sink
}

func (r *cueRelay) Play(cue string, intensity float64) {
	if r.sink != nil {
		r.sink.Play(cue, intensity)
	}
}

func (r *cueRelay) Close() {
	if r.sink != nil {
		r.sink.Close()
	}
}

// Model is the Bubble Tea host of one simulation. It drives the phases
// LOADING -> INTRO -> MENU -> PLAYING -> GAMEOVER and steps the simulation
// once per tick.
type Model struct {
	sim      *sim.Simulation
	frame    sim.Frame
	screen   *core.Screen
	store    *storage.Store
	log      *log.Logger
	audio    *cueRelay
	open     func() audio.Sink
	config   core.RuntimeConfig
	player   string
	initial  config.Difficulty
	keys     KeyMap
	help     help.Model
	input    *HeldInput
	hud      HUD
	menu     MenuModel
	board    RunBoardModel
	inBoard  bool
	lastTick time.Time
	ticks    uint64
	paused   bool
	saved    bool // Run summary handled for the current game over
	recorded bool // Run summary written to the store
	quitting bool
}

// NewModel creates a model in the LOADING phase.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tuning := opts.Tuning
	if err := tuning.Validate(); err != nil {
		logger.Debug("using default tuning", "reason", err)
		tuning = config.DefaultHeraldConfig()
	}
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = config.DifficultyVeteran
	}

	relay := &cueRelay{}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sim: sim.New(tuning, sim.Options{
			Logger: logger,
			Audio:  relay,
			Seed:   cfg.Seed,
		}),
		screen:  core.NewScreen(cfg.ScreenW, worldRows(cfg.ScreenH)),
		store:   opts.Store,
		log:     logger,
		audio:   relay,
		open:    opts.OpenAudio,
		config:  cfg,
		player:  opts.Player,
		initial: difficulty,
		keys:    DefaultKeyMap(),
		help:    h,
		input:   NewHeldInput(),
		hud:     NewHUD(),
	}
}

// worldRows is the number of rows left for the world under the HUD and the
// help bar.
func worldRows(height int) int {
	return max(1, height-hudLines-1)
}

// Init starts loading and the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), tickCmd(m.config.TickRate))
}

// loadCmd opens the audio device off the update goroutine.
func (m Model) loadCmd() tea.Cmd {
	open := m.open
	return func() tea.Msg {
		if open == nil {
			return loadedMsg{sink: audio.Silent{}}
		}
		return loadedMsg{sink: open()}
	}
}

// Phase returns the simulation phase.
func (m Model) Phase() sim.Phase {
	return m.sim.Phase()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.audio.sink = msg.sink
		m.sim.SetPhase(sim.PhaseIntro)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey dispatches a key press by phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.sim.Phase() {
	case sim.PhaseIntro:
		m.openMenu()

	case sim.PhaseMenu:
		if m.inBoard {
			var (
				outcome boardOutcome
				cmd     tea.Cmd
			)
			m.board, outcome, cmd = m.board.Update(msg)
			switch outcome {
			case boardBack:
				m.openMenu()
			case boardQuit:
				return m.quit()
			}
			return m, cmd
		}

		var outcome menuOutcome
		m.menu, outcome = m.menu.Update(msg)
		switch outcome {
		case menuStart:
			m.startRun(m.menu.Selected())
		case menuBoard:
			m.board = NewRunBoardModel(m.store, m.config.ScreenW, m.config.ScreenH)
			m.inBoard = true
		case menuQuit:
			return m.quit()
		}

	case sim.PhasePlaying:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			m.input.Release()
		case key.Matches(msg, m.keys.Back):
			m.log.Debug("run abandoned", "wave", m.sim.Summary().Wave)
			m.openMenu()
		case msg.String() == "ctrl+s":
			m.saveScreenshot()
		case !m.paused:
			m.input.Press(msg, m.keys, time.Now())
		}

	case sim.PhaseGameOver:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Restart):
			m.startRun(m.sim.Difficulty())
		case key.Matches(msg, m.keys.Back):
			m.openMenu()
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, worldRows(msg.Height))
	m.help.Width = msg.Width
	m.menu.Resize(msg.Width)
	if m.inBoard {
		m.board.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick steps the simulation with the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now
	m.ticks++

	if !m.paused {
		m.frame = m.sim.Step(dt, m.input.Intents(now))
	}

	if m.sim.Phase() == sim.PhaseGameOver && !m.saved {
		m.recordRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// openMenu moves to MENU with fresh best waves.
func (m *Model) openMenu() {
	selected := m.initial
	if len(m.menu.items) > 0 {
		selected = m.menu.Selected()
	}
	m.menu = NewMenuModel(m.store, selected, m.config.ScreenW)
	m.inBoard = false
	m.paused = false
	m.input.Release()
	m.sim.SetPhase(sim.PhaseMenu)
}

// startRun begins a run on difficulty d.
func (m *Model) startRun(d config.Difficulty) {
	m.sim.Start(d)
	m.input.Release()
	m.paused = false
	m.saved = false
	m.recorded = false
	m.lastTick = time.Time{}
	m.log.Info("run started", "difficulty", d, "player", m.player)
}

// recordRun writes the summary of the finished run once.
func (m *Model) recordRun() {
	m.saved = true
	sum := m.sim.Summary()
	m.log.Info("run ended", "difficulty", sum.Difficulty, "wave", sum.Wave, "level", sum.Level, "kills", sum.Kills)
	if m.store == nil {
		return
	}

	id, err := m.store.SaveRun(storage.RunRecord{
		Player:     m.player,
		Difficulty: string(sum.Difficulty),
		Wave:       sum.Wave,
		Level:      sum.Level,
		Kills:      sum.Kills,
		Stage:      sum.Stage,
		Class:      sum.Class.String(),
		Elapsed:    time.Duration(sum.Elapsed * float64(time.Second)),
	})
	if err != nil {
		m.log.Error("could not record run", "err", err)
		return
	}
	m.recorded = true
	m.log.Debug("run recorded", "id", id)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// saveScreenshot saves the current world view to a file.
func (m *Model) saveScreenshot() {
	m.drawWorld()

	dir := filepath.Join(os.Getenv("HOME"), ".herald", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("could not create screenshot directory", "err", err)
		return
	}
	filename := fmt.Sprintf("herald_%s.txt", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("could not save screenshot", "err", err)
	}
}

// shakeOffset jitters the view by up to shake world units.
func shakeOffset(shake float64, tick uint64) core.Vec2 {
	if shake <= 0 {
		return core.Vec2{}
	}
	t := float64(tick)
	return core.V(math.Sin(t*1.7), math.Cos(t*2.3)).Scale(shake)
}

// drawWorld renders the latest frame into the screen buffer.
func (m *Model) drawWorld() {
	vp := Viewport{
		Width:  m.screen.Width(),
		Height: m.screen.Height(),
		Scale:  DefaultScale,
		Center: m.frame.Camera.Add(shakeOffset(m.frame.Shake, m.ticks)),
	}
	DrawWorld(m.screen, m.frame, vp)
	if m.paused {
		drawPauseBox(m.screen)
	}
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.sim.Phase() {
	case sim.PhaseLoading:
		return m.placeCenter(hudLabelStyle.Render("summoning..."))
	case sim.PhaseIntro:
		return m.placeCenter(introView())
	case sim.PhaseMenu:
		if m.inBoard {
			return m.board.View()
		}
		return m.menu.View()
	}

	hud := m.hud.View(m.frame.UI, m.config.ScreenW)
	if m.sim.Phase() == sim.PhaseGameOver {
		body := lipgloss.PlaceVertical(m.screen.Height(), lipgloss.Center,
			gameOverView(m.sim.Summary(), m.recorded, m.config.ScreenW))
		return hud + "\n" + body
	}

	m.drawWorld()
	world := RenderScreen(m.screen)
	footer := hudLabelStyle.Render(m.help.View(m.keys))
	if m.paused {
		footer = hudLabelStyle.Render("p: resume  b: menu  q: quit")
	}
	return hud + "\n" + world + "\n" + footer
}

func (m Model) placeCenter(s string) string {
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, s)
}

// introView is the title card.
func introView() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("93")).Render(strings.Join([]string{
		"█ █ █▀▀ █▀█ ▄▀█ █   █▀▄",
		"█▀█ ██▄ █▀▄ █▀█ █▄▄ █▄▀",
	}, "\n"))
	lore := hudLabelStyle.Render("The dead do not rest while the Herald walks.")
	prompt := hudQuestStyle.Render("press any key")
	return lipgloss.JoinVertical(lipgloss.Center, title, "", lore, "", prompt)
}

// Run starts the Bubble Tea program with a model built from opts.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.audio.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
