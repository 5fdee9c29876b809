package sim

import (
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/herald/internal/config"
	"github.com/vovakirdan/herald/internal/core"
)

// Audio cue names understood by AudioSink implementations.
const (
	CueHit     = "hit"
	CueDash    = "dash"
	CueSummon  = "summon"
	CueLevelUp = "levelup"
	CueQuest   = "quest"
)

// AudioSink plays named cues. intensity is in [0, 1].
type AudioSink interface {
	Play(cue string, intensity float64)
}

// Options configures a Simulation. Zero values are valid.
type Options struct {
	Logger *log.Logger
	Audio  AudioSink
	Seed   int64
}

// Simulation owns the whole world of one run. It is not safe for concurrent
// use; the host calls Step from a single goroutine.
type Simulation struct {
	base       config.HeraldConfig // As loaded
	cfg        config.HeraldConfig // With the difficulty applied
	difficulty config.Difficulty
	mods       config.Modifiers

	log   *log.Logger
	audio AudioSink
	rng   *rand.Rand

	phase  Phase
	lastID EntityID
	frame  uint64

	player  *Player
	enemies []*Enemy
	minions []*Minion
	corpses []*Corpse

	particles   *Pool[*Particle]
	projectiles *Pool[*Projectile]
	texts       *Pool[*FloatingText]
	afterImages *Pool[*AfterImage]

	grid     *Grid
	queryBuf []Body

	stats         Stats
	class         Class
	wave          int
	kills         int
	elapsed       float64
	missions      *MissionTracker
	notifications []string

	spawnTimer      float64
	afterImageTimer float64
	shake           float64
	camera          core.Vec2
}

// New creates a simulation in the LOADING phase. Call Start to begin a run.
func New(cfg config.HeraldConfig, opts Options) *Simulation {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	pc := cfg.Pools
	s := &Simulation{
		base:        cfg,
		cfg:         cfg,
		difficulty:  config.DifficultyVeteran,
		mods:        config.ModifiersFor(config.DifficultyVeteran),
		log:         logger,
		audio:       opts.Audio,
		rng:         rand.New(rand.NewSource(opts.Seed)), //#nosec G404 -- gameplay randomness
		phase:       PhaseLoading,
		particles:   NewPool(func() *Particle { return &Particle{} }, pc.Particles, pc.MaxSize),
		projectiles: NewPool(func() *Projectile { return &Projectile{} }, pc.Projectiles, pc.MaxSize),
		texts:       NewPool(func() *FloatingText { return &FloatingText{} }, pc.FloatingTexts, pc.MaxSize),
		afterImages: NewPool(func() *AfterImage { return &AfterImage{} }, pc.AfterImages, pc.MaxSize),
		grid:        NewGrid(cfg.Grid.CellSize),
		missions:    NewMissionTracker(cfg.Missions),
	}
	s.reset()
	return s
}

// Start sets the difficulty and (re)starts a run in the PLAYING phase.
func (s *Simulation) Start(d config.Difficulty) {
	s.difficulty = d
	s.mods = config.ModifiersFor(d)
	s.cfg = config.ApplyDifficulty(s.base, d)
	s.reset()
	s.installMission()
	s.SetPhase(PhasePlaying)
}

// reset clears all run state.
func (s *Simulation) reset() {
	s.frame = 0
	s.player = newPlayer(s.nextID(), s.cfg.Player.Radius)
	s.enemies = s.enemies[:0]
	s.minions = s.minions[:0]
	s.corpses = s.corpses[:0]
	s.particles.Reset()
	s.projectiles.Reset()
	s.texts.Reset()
	s.afterImages.Reset()
	s.grid.Clear()

	s.stats = NewStats(s.cfg.Player.StartStats)
	s.class = ClassNone
	s.wave = 1
	s.kills = 0
	s.elapsed = 0
	s.missions = NewMissionTracker(s.cfg.Missions)
	s.notifications = s.notifications[:0]
	s.spawnTimer = 0
	s.afterImageTimer = 0
	s.shake = 0
	s.camera = s.player.Pos
}

// SetPhase moves the lifecycle to p.
func (s *Simulation) SetPhase(p Phase) {
	if s.phase == p {
		return
	}
	s.log.Debug("phase change", "from", s.phase, "to", p)
	s.phase = p
}

// Phase returns the lifecycle phase.
func (s *Simulation) Phase() Phase { return s.phase }

// Difficulty returns the preset of the current run.
func (s *Simulation) Difficulty() config.Difficulty { return s.difficulty }

// Collect feeds n collected souls to the active mission.
func (s *Simulation) Collect(n int) {
	if s.phase != PhasePlaying || n <= 0 {
		return
	}
	s.progress(EventCollect, float64(n))
}

// Step advances the world by dt seconds with the given intents and returns
// the frame to present. Outside PLAYING the world is frozen.
func (s *Simulation) Step(dt float64, in core.Intents) Frame {
	if s.phase == PhasePlaying {
		s.update(dt, in.Sanitized())
	}
	return s.buildFrame()
}

func (s *Simulation) update(dt float64, in core.Intents) {
	dt = core.ClampF(dt, 0, s.cfg.Frame.MaxDelta)

	if s.stats.HP <= 0 {
		s.gameOver()
		return
	}
	s.frame++
	s.elapsed += dt

	s.grid.Clear()
	for _, e := range s.enemies {
		s.grid.Insert(e)
	}
	s.grid.Insert(s.player)

	if m := s.missions.Current(); m != nil && m.Type == MissionSurvive {
		s.progress(EventSurviveTick, dt)
	}
	if s.missions.Advance(dt) {
		s.installMission()
	}

	s.updateSpawner(dt)
	s.stats.Regenerate(dt)
	s.updatePlayer(dt, in)

	if in.Reanimate && s.class == ClassShadowWeaver {
		s.reanimate()
	}

	for _, m := range s.minions {
		s.updateMinion(m, dt)
	}
	for _, c := range s.corpses {
		c.update(dt)
	}

	s.updateDash(dt)

	s.projectiles.Each(func(p *Projectile) {
		p.update(dt)
		if !p.Active {
			return
		}
		if p.Overlaps(&s.player.Entity) && !s.player.Dashing {
			s.damagePlayer(p.Damage)
			p.Active = false
			p.Dead = true
			s.spawnParticles(p.Pos, p.Color, 5)
		}
	})

	for _, e := range s.enemies {
		if e.Dead {
			continue
		}
		s.updateEnemy(e, dt)
		if e.Overlaps(&s.player.Entity) && !s.player.Dashing {
			s.damagePlayer(e.Damage * dt)
		}
	}

	s.afterImages.Each(func(a *AfterImage) { a.update(dt) })
	s.particles.Each(func(p *Particle) { p.update(dt) })
	s.texts.Each(func(t *FloatingText) { t.update(dt) })

	s.enemies = slices.DeleteFunc(s.enemies, func(e *Enemy) bool { return e.Dead })
	s.minions = slices.DeleteFunc(s.minions, func(m *Minion) bool { return m.Dead })
	s.corpses = slices.DeleteFunc(s.corpses, func(c *Corpse) bool { return c.Dead })
	s.stats.MinionCount = len(s.minions)

	s.shake = max(0, s.shake-30*dt)
	s.camera = s.camera.Add(s.player.Pos.Sub(s.camera).Scale(min(1, 5*dt)))

	if s.stats.HP <= 0 {
		s.gameOver()
	}
}

func (s *Simulation) gameOver() {
	if s.phase == PhaseGameOver {
		return
	}
	s.log.Debug("game over", "wave", s.wave, "level", s.stats.Level, "kills", s.kills, "elapsed", s.elapsed)
	s.SetPhase(PhaseGameOver)
}

// progress routes an event to the mission tracker and applies rewards.
func (s *Simulation) progress(ev Event, value float64) {
	if !s.missions.Progress(ev, value) {
		return
	}
	done := *s.missions.Current()
	sc := s.missions.StageConfig(done.Stage)

	s.gainXP(done.RewardXP)
	s.notify("QUEST COMPLETED.")
	s.playCue(CueQuest, 1)
	for _, n := range sc.CompleteNotice {
		s.notify(n)
	}
	if sc.UnlocksClass {
		s.class = ClassShadowWeaver
		s.stats.MinionCap = s.stats.ClassMinionCap()
	}
	if s.missions.IsEndgame(done.Stage) {
		s.wave++
	}
	s.log.Debug("mission completed", "stage", done.Stage, "title", done.Title, "wave", s.wave)
}

func (s *Simulation) installMission() {
	sc := s.missions.StageConfig(s.missions.Stage())
	m := s.missions.Install(s.wave)
	for _, n := range sc.InstallNotices {
		s.notify(n)
	}
	s.notify("NEW QUEST: " + m.Title)
	s.log.Debug("mission installed", "stage", m.Stage, "title", m.Title, "target", m.Target)
}

func (s *Simulation) gainXP(amount float64) {
	if !s.stats.GainXP(amount, s.cfg.Progression.XPGrowth, s.cfg.Progression.PerLevel) {
		return
	}
	s.notify(fmt.Sprintf("LEVEL UP: RANK %d", s.stats.Level))
	s.notify("STATS INCREASED: MIGHT & PRECISION")
	s.spawnParticles(s.player.Pos, core.ColorWhite, 50)
	s.playCue(CueLevelUp, 1)
	s.log.Debug("level up", "level", s.stats.Level)
}

// notify appends to the notification queue, evicting the oldest past the cap.
func (s *Simulation) notify(text string) {
	s.notifications = append(s.notifications, text)
	if over := len(s.notifications) - s.cfg.Progression.NotificationCap; over > 0 {
		s.notifications = slices.Delete(s.notifications, 0, over)
	}
}

func (s *Simulation) playCue(cue string, intensity float64) {
	if s.audio != nil {
		s.audio.Play(cue, intensity)
	}
}

func (s *Simulation) nextID() EntityID {
	s.lastID++
	return s.lastID
}
