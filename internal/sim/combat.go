package sim

import (
	"math"
	"strconv"

	"github.com/vovakirdan/herald/internal/core"
)

// ComputeDamage is the melee damage of one hit.
func ComputeDamage(might, level, precision int, crit bool) float64 {
	dmg := float64(might)*2 + float64(level)*2
	if crit {
		dmg *= CritMultiplier(precision)
	}
	return dmg
}

// CritMultiplier scales a critical hit.
func CritMultiplier(precision int) float64 {
	return 1.5 + float64(precision)*0.05
}

// CritChance is the probability of a critical hit. Values of 1 or more always crit.
func CritChance(precision int) float64 {
	return float64(precision) * 0.02
}

// RollCrit decides a crit from a uniform roll in [0, 1).
func RollCrit(precision int, roll float64) bool {
	return roll < CritChance(precision)
}

// Mitigate reduces incoming damage by fortitude.
func Mitigate(amount float64, fortitude int) float64 {
	return amount * 100 / (100 + float64(fortitude)*2)
}

// InArc reports whether target lies within reach of origin and within
// halfAngle of facing.
func InArc(origin core.Vec2, facing float64, target core.Vec2, reach, halfAngle float64) bool {
	d := target.Sub(origin)
	if d.Len() >= reach {
		return false
	}
	return core.AngleDiff(d.Angle(), facing) < halfAngle
}

// resolveMelee applies one swing to enemies near the player.
func (s *Simulation) resolveMelee(reach float64) {
	pl := s.player
	s.queryBuf = s.grid.QueryEntity(pl, s.queryBuf[:0])

	hit := false
	for _, b := range s.queryBuf {
		e, ok := b.(*Enemy)
		if !ok || e.Dead {
			continue
		}
		if !InArc(pl.Pos, pl.Facing, e.Pos, reach, s.cfg.Melee.ArcHalfAngle) {
			continue
		}
		if !hit {
			hit = true
			s.addShake(3)
			s.playCue(CueHit, 1)
		}

		crit := RollCrit(s.stats.Precision, s.rng.Float64())
		dmg := ComputeDamage(s.stats.Might, s.stats.Level, s.stats.Precision, crit)
		color := core.ColorWhite
		if crit {
			s.addShake(5)
			color = core.ColorRed
		}

		died := e.TakeDamage(dmg, pl.Pos, s.cfg.Melee.Pushback)
		s.spawnFloatingText(e.Pos, strconv.Itoa(int(math.Floor(dmg))), color)
		s.spawnParticles(e.Pos, core.ColorMagenta, s.cfg.Melee.HitParticles)
		if died {
			s.onEnemyDeath(e)
		}
	}
}

// damagePlayer is the single entry point for damage against the player.
func (s *Simulation) damagePlayer(amount float64) {
	s.stats.HP -= Mitigate(amount, s.stats.Fortitude)
	s.addShake(4)
}

// onEnemyDeath runs once per enemy, on the frame its hp reached zero.
func (s *Simulation) onEnemyDeath(e *Enemy) {
	s.kills++
	s.gainXP(e.XP)
	s.spawnParticles(e.Pos, core.ColorWhite, 10)

	if e.Boss {
		s.progress(EventBossKill, 1)
	} else {
		s.progress(EventKill, 1)
	}

	if s.class == ClassShadowWeaver {
		s.spawnCorpse(e)
	}
}

func (s *Simulation) addShake(amount float64) {
	s.shake = amount
}
