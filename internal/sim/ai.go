package sim

import (
	"math"

	"github.com/vovakirdan/herald/internal/core"
)

// updateEnemy runs the variant's policy for one frame.
func (s *Simulation) updateEnemy(e *Enemy, dt float64) {
	switch e.Variant {
	case VariantCrawler:
		s.crawlerAI(e, dt)
	case VariantSpitter:
		s.spitterAI(e, dt)
	case VariantBat:
		s.batAI(e, dt)
	}
}

// crawlerAI chases the player, or a minion that comes close enough to threaten it.
func (s *Simulation) crawlerAI(e *Enemy, dt float64) {
	e.applyPushback(dt, s.cfg.Enemies.PushbackDecay)

	target := &s.player.Entity
	minDist := core.Dist(e.Pos, target.Pos)
	for _, m := range s.minions {
		if m.Dead {
			continue
		}
		if d := core.Dist(e.Pos, m.Pos); d < minDist && d < s.cfg.Enemies.MinionThreatRange {
			target = &m.Entity
			minDist = d
		}
	}

	d := target.Pos.Sub(e.Pos)
	dist := d.Len()
	e.Rotation = d.Angle()

	if dist < e.AggroRange && dist > e.Radius+target.Radius {
		e.Vel = d.Scale(e.Speed / dist)
	} else {
		e.Vel = core.Vec2{}
	}
	e.Integrate(dt)
}

// spitterAI holds a distance band around the player and fires when in range.
func (s *Simulation) spitterAI(e *Enemy, dt float64) {
	sc := s.cfg.Enemies.Spitter
	e.applyPushback(dt, s.cfg.Enemies.PushbackDecay)

	d := s.player.Pos.Sub(e.Pos)
	dist := d.Len()
	dir := d.Normalize()
	e.Rotation = d.Angle()

	switch {
	case dist < sc.RetreatDistance:
		e.Vel = dir.Scale(-e.Speed)
	case dist > sc.RetreatDistance+sc.Buffer:
		e.Vel = dir.Scale(e.Speed)
	default:
		e.Vel = dir.Perp().Scale(-sc.OrbitSpeed)
	}
	e.Integrate(dt)

	e.ShootCooldown -= dt
	if e.ShootCooldown <= 0 && dist < sc.FireRange {
		e.ShootCooldown = sc.CooldownMin + s.rng.Float64()*sc.CooldownJitter
		vel := dir.Scale(s.cfg.Enemies.Projectile.Speed)
		s.spawnProjectile(e.Pos, vel, e.Damage, core.ColorBrightCyan)
	}
}

// batAI flies at the player along a sine weave and never stops.
func (s *Simulation) batAI(e *Enemy, dt float64) {
	bc := s.cfg.Enemies.Bat
	e.Phase += dt * bc.WeaveFrequency

	dir := s.player.Pos.Sub(e.Pos).Normalize()
	weave := math.Sin(e.Phase) * bc.WeaveAmplitude
	e.Vel = dir.Scale(e.Speed).Add(dir.Perp().Scale(weave))
	e.Rotation = e.Vel.Angle()

	e.applyPushback(dt, s.cfg.Enemies.PushbackDecay)
	e.Integrate(dt)
}

// updateMinion ages the minion, keeps its target valid, pursues it, and
// applies damage over time in melee range.
func (s *Simulation) updateMinion(m *Minion, dt float64) {
	mc := s.cfg.Minions
	m.Lifetime -= dt
	if m.Lifetime <= 0 {
		m.Dead = true
		return
	}

	target := s.enemyByID(m.Target)
	if target == nil {
		target = s.nearestEnemy(m.Pos, mc.AcquireRange)
		m.Target = 0
		if target != nil {
			m.Target = target.ID
		}
	}

	if target != nil {
		d := target.Pos.Sub(m.Pos)
		dist := d.Len()
		if dist > mc.StopDistance {
			m.Vel = d.Scale(m.Speed / dist)
			m.Rotation = d.Angle()
		} else {
			m.Vel = core.Vec2{}
		}
	} else {
		m.Vel = m.Vel.Scale(0.9)
	}
	m.Integrate(dt)

	if target != nil && core.Dist(target.Pos, m.Pos) < mc.MeleeRange {
		if target.TakeDamage(m.Damage*dt*mc.DPSFactor, m.Pos, s.cfg.Melee.Pushback) {
			s.onEnemyDeath(target)
		}
	}
}
