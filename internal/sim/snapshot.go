package sim

import (
	"cmp"
	"math"
	"slices"

	"github.com/vovakirdan/herald/internal/config"
	"github.com/vovakirdan/herald/internal/core"
)

// Frame is everything a presentation layer needs for one rendered frame.
// It shares no memory with the live simulation.
type Frame struct {
	UI        UISnapshot
	Camera    core.Vec2 // World point at the center of the view
	Drawables []Drawable
	Shake     float64
}

// UISnapshot is the HUD state of a frame.
type UISnapshot struct {
	Stats         Stats
	Notifications []string
	Phase         Phase
	Difficulty    config.Difficulty
	Wave          int
	Mission       *Mission // nil when none is installed
	Class         Class
	Kills         int
	Elapsed       float64
}

// Drawable is one entity as presented. Drawables are ordered back to front.
type Drawable struct {
	ID       EntityID
	Kind     Kind
	Variant  EnemyVariant
	Pos      core.Vec2
	Radius   float64
	Rotation float64
	Scale    float64
	Sprite   string
	Color    core.Color
	Text     string
	Alpha    float64
	Boss     bool

	// Player only
	Facing     float64
	Attacking  bool
	Dashing    bool
	ComboIndex int

	HPFrac float64 // Enemies only
}

// Draw layers, back to front.
const (
	layerCorpse = iota
	layerAfterImage
	layerParticle
	layerActor
	layerProjectile
	layerText
)

func layerOf(k Kind) int {
	switch k {
	case KindCorpse:
		return layerCorpse
	case KindAfterImage:
		return layerAfterImage
	case KindParticle:
		return layerParticle
	case KindProjectile:
		return layerProjectile
	case KindFloatingText:
		return layerText
	default:
		return layerActor
	}
}

func drawableOf(e *Entity) Drawable {
	return Drawable{
		ID:       e.ID,
		Kind:     e.Kind,
		Pos:      e.Pos,
		Radius:   e.Radius,
		Rotation: e.Rotation,
		Scale:    e.Scale,
		Sprite:   e.Sprite,
		Color:    e.Color,
		Alpha:    1,
	}
}

func (s *Simulation) buildFrame() Frame {
	n := 1 + len(s.enemies) + len(s.minions) + len(s.corpses) +
		s.particles.ActiveCount() + s.projectiles.ActiveCount() +
		s.texts.ActiveCount() + s.afterImages.ActiveCount()
	ds := make([]Drawable, 0, n)

	for _, c := range s.corpses {
		if c.Dead {
			continue
		}
		d := drawableOf(&c.Entity)
		d.Alpha = core.ClampF(c.Life/s.cfg.Corpses.Lifespan, 0, 1)
		ds = append(ds, d)
	}
	s.afterImages.Each(func(a *AfterImage) {
		d := drawableOf(&a.Entity)
		d.Alpha = a.Alpha()
		d.Facing = a.Facing
		ds = append(ds, d)
	})
	s.particles.Each(func(p *Particle) {
		d := drawableOf(&p.Entity)
		d.Alpha = core.ClampF(p.Life, 0, 1)
		ds = append(ds, d)
	})
	for _, e := range s.enemies {
		if e.Dead {
			continue
		}
		d := drawableOf(&e.Entity)
		d.Variant = e.Variant
		d.Boss = e.Boss
		d.HPFrac = e.HPFraction()
		ds = append(ds, d)
	}
	for _, m := range s.minions {
		if m.Dead {
			continue
		}
		ds = append(ds, drawableOf(&m.Entity))
	}

	pl := s.player
	pd := drawableOf(&pl.Entity)
	pd.Facing = pl.Facing
	pd.Attacking = pl.AttackTimer > 0
	pd.Dashing = pl.Dashing
	pd.ComboIndex = pl.ComboIndex
	pd.HPFrac = core.ClampF(s.stats.HP/s.stats.MaxHP, 0, 1)
	ds = append(ds, pd)

	s.projectiles.Each(func(p *Projectile) {
		ds = append(ds, drawableOf(&p.Entity))
	})
	s.texts.Each(func(t *FloatingText) {
		d := drawableOf(&t.Entity)
		d.Text = t.Text
		d.Alpha = t.Alpha()
		ds = append(ds, d)
	})

	slices.SortFunc(ds, func(a, b Drawable) int {
		if c := cmp.Compare(layerOf(a.Kind), layerOf(b.Kind)); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Pos.Y, b.Pos.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return Frame{
		UI:        s.uiSnapshot(),
		Camera:    s.camera,
		Drawables: ds,
		Shake:     s.shake,
	}
}

func (s *Simulation) uiSnapshot() UISnapshot {
	ui := UISnapshot{
		Stats:         s.stats,
		Notifications: slices.Clone(s.notifications),
		Phase:         s.phase,
		Difficulty:    s.difficulty,
		Wave:          s.wave,
		Class:         s.class,
		Kills:         s.kills,
		Elapsed:       s.elapsed,
	}
	if m := s.missions.Current(); m != nil {
		cp := *m
		ui.Mission = &cp
	}
	return ui
}

// Summary describes a finished (or running) run for the history table.
type Summary struct {
	Difficulty config.Difficulty
	Wave       int
	Level      int
	Kills      int
	Stage      int
	Elapsed    float64
	Class      Class
}

// Summary returns the run's headline numbers.
func (s *Simulation) Summary() Summary {
	return Summary{
		Difficulty: s.difficulty,
		Wave:       s.wave,
		Level:      s.stats.Level,
		Kills:      s.kills,
		Stage:      s.missions.Stage(),
		Elapsed:    s.elapsed,
		Class:      s.class,
	}
}

// Snapshot contains quantized simulation state for determinism checks.
// Uses primitive types only.
type Snapshot struct {
	Frame   uint64
	Phase   int
	HP      int // Hundredths
	Stamina int
	Mana    int
	XP      int
	Level   int
	Wave    int
	Kills   int
	Stage   int
	Class   int
	PlayerX int
	PlayerY int

	MissionCurrent int // Hundredths; -1 when none

	// Each enemy is 5 ints: ID, Variant, X, Y, HP (hundredths)
	EnemyData []int
	// Each minion is 4 ints: ID, X, Y, Target
	MinionData []int
	// Each projectile is 2 ints: X, Y
	ProjectileData []int

	Corpses   int
	Particles int
	Texts     int
}

func q(v float64) int {
	return int(math.Round(v * 100))
}

// Snapshot returns the current state as a Snapshot.
func (s *Simulation) Snapshot() Snapshot {
	enemyData := make([]int, 0, len(s.enemies)*5)
	for _, e := range s.enemies {
		enemyData = append(enemyData, int(e.ID), int(e.Variant), q(e.Pos.X), q(e.Pos.Y), q(e.HP)) //#nosec G115 -- ids stay far below MaxInt
	}
	minionData := make([]int, 0, len(s.minions)*4)
	for _, m := range s.minions {
		minionData = append(minionData, int(m.ID), q(m.Pos.X), q(m.Pos.Y), int(m.Target)) //#nosec G115 -- ids stay far below MaxInt
	}
	var projData []int
	s.projectiles.Each(func(p *Projectile) {
		projData = append(projData, q(p.Pos.X), q(p.Pos.Y))
	})

	mc := -1
	if m := s.missions.Current(); m != nil {
		mc = q(m.Current)
	}

	return Snapshot{
		Frame:          s.frame,
		Phase:          int(s.phase),
		HP:             q(s.stats.HP),
		Stamina:        q(s.stats.Stamina),
		Mana:           q(s.stats.Mana),
		XP:             q(s.stats.XP),
		Level:          s.stats.Level,
		Wave:           s.wave,
		Kills:          s.kills,
		Stage:          s.missions.Stage(),
		Class:          int(s.class),
		PlayerX:        q(s.player.Pos.X),
		PlayerY:        q(s.player.Pos.Y),
		MissionCurrent: mc,
		EnemyData:      enemyData,
		MinionData:     minionData,
		ProjectileData: projData,
		Corpses:        len(s.corpses),
		Particles:      s.particles.ActiveCount(),
		Texts:          s.texts.ActiveCount(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	for _, v := range []int{
		snap.Phase, snap.HP, snap.Stamina, snap.Mana, snap.XP, snap.Level,
		snap.Wave, snap.Kills, snap.Stage, snap.Class, snap.PlayerX, snap.PlayerY,
		snap.MissionCurrent, snap.Corpses, snap.Particles, snap.Texts,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, data := range [][]int{snap.EnemyData, snap.MinionData, snap.ProjectileData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	return h
}
