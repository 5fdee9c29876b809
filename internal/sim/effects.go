package sim

import (
	"math"

	"github.com/vovakirdan/herald/internal/core"
)

// Particle is a short-lived spark.
type Particle struct {
	Entity
	Life  float64 // 1 at spawn, released at 0
	Decay float64 // Life lost per second
}

// update integrates and ages the particle, releasing it when spent.
func (p *Particle) update(dt float64) {
	p.Integrate(dt)
	p.Life -= p.Decay * dt
	if p.Life <= 0 {
		p.Dead = true
		p.Active = false
	}
}

// Projectile is an enemy bolt that damages the player on overlap.
type Projectile struct {
	Entity
	Damage float64
	Life   float64
}

func (p *Projectile) update(dt float64) {
	p.Integrate(dt)
	p.Life -= dt
	if p.Life <= 0 {
		p.Dead = true
		p.Active = false
	}
}

// FloatingText is a rising damage number or callout.
type FloatingText struct {
	Entity
	Text string
	Life float64
}

const floatingTextLife = 0.8

func (t *FloatingText) update(dt float64) {
	t.Integrate(dt)
	t.Life -= dt
	if t.Life <= 0 {
		t.Dead = true
		t.Active = false
	}
}

// Alpha fades the text over its life.
func (t *FloatingText) Alpha() float64 {
	return core.ClampF(t.Life/floatingTextLife, 0, 1)
}

// AfterImage is a fading copy of the player left behind while dashing.
type AfterImage struct {
	Entity
	Facing  float64
	Life    float64
	MaxLife float64
}

func (a *AfterImage) update(dt float64) {
	a.Life -= dt
	if a.Life <= 0 {
		a.Dead = true
		a.Active = false
	}
}

// Alpha fades the image over its life.
func (a *AfterImage) Alpha() float64 {
	if a.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(a.Life/a.MaxLife, 0, 1)
}

// Acquire-site initializers. Each overwrites every field of the slot.

func (s *Simulation) spawnParticles(pos core.Vec2, color core.Color, count int) {
	for range count {
		p := s.particles.Acquire()
		angle := s.rng.Float64() * math.Pi * 2
		speed := s.rng.Float64()*150 + 50
		*p = Particle{
			Entity: Entity{
				ID:     s.nextID(),
				Kind:   KindParticle,
				Pos:    pos,
				Vel:    core.FromAngle(angle).Scale(speed),
				Radius: s.rng.Float64()*3 + 1,
				Scale:  1,
				Color:  color,
				Active: true,
			},
			Life:  1,
			Decay: s.rng.Float64()*2 + 1,
		}
	}
}

func (s *Simulation) spawnProjectile(pos, vel core.Vec2, damage float64, color core.Color) {
	p := s.projectiles.Acquire()
	*p = Projectile{
		Entity: Entity{
			ID:       s.nextID(),
			Kind:     KindProjectile,
			Pos:      pos,
			Vel:      vel,
			Radius:   s.cfg.Enemies.Projectile.Radius,
			Rotation: vel.Angle(),
			Scale:    1,
			Color:    color,
			Active:   true,
		},
		Damage: damage,
		Life:   s.cfg.Enemies.Projectile.Life,
	}
}

func (s *Simulation) spawnFloatingText(pos core.Vec2, text string, color core.Color) {
	t := s.texts.Acquire()
	*t = FloatingText{
		Entity: Entity{
			ID:     s.nextID(),
			Kind:   KindFloatingText,
			Pos:    pos,
			Vel:    core.V((s.rng.Float64()-0.5)*20, -60),
			Scale:  1,
			Color:  color,
			Active: true,
		},
		Text: text,
		Life: floatingTextLife,
	}
}

func (s *Simulation) spawnAfterImage(pl *Player) {
	a := s.afterImages.Acquire()
	life := s.cfg.Dash.AfterImageLife
	*a = AfterImage{
		Entity: Entity{
			ID:       s.nextID(),
			Kind:     KindAfterImage,
			Pos:      pl.Pos,
			Radius:   pl.Radius,
			Rotation: pl.Facing,
			Scale:    1,
			Sprite:   pl.Sprite,
			Color:    pl.Color,
			Active:   true,
		},
		Facing:  pl.Facing,
		Life:    life,
		MaxLife: life,
	}
}
