package sim

import (
	"github.com/vovakirdan/herald/internal/core"
)

// Minion is a reanimated ally. Target is a weak reference, re-validated
// every frame against the live enemy list.
type Minion struct {
	Entity
	Target   EntityID // 0 = none
	Damage   float64
	Speed    float64
	Lifetime float64
}

// Corpse remains after an enemy dies once the reanimation class is unlocked.
type Corpse struct {
	Entity
	Life         float64
	SourceSprite string // Sprite the minion will wear
}

func (c *Corpse) update(dt float64) {
	c.Life -= dt
	if c.Life <= 0 {
		c.Dead = true
	}
}

func (s *Simulation) spawnCorpse(e *Enemy) {
	s.corpses = append(s.corpses, &Corpse{
		Entity: Entity{
			ID:     s.nextID(),
			Kind:   KindCorpse,
			Pos:    e.Pos,
			Radius: s.cfg.Corpses.Radius,
			Scale:  1,
			Sprite: "corpse",
			Color:  core.ColorDarkGray,
			Active: true,
		},
		Life:         s.cfg.Corpses.Lifespan,
		SourceSprite: e.Sprite,
	})
}

func (s *Simulation) spawnMinion(c *Corpse) *Minion {
	mc := s.cfg.Minions
	m := &Minion{
		Entity: Entity{
			ID:     s.nextID(),
			Kind:   KindMinion,
			Pos:    c.Pos,
			Radius: mc.Radius,
			Scale:  1,
			Sprite: c.SourceSprite,
			Color:  core.ColorCyan,
			Active: true,
		},
		Damage:   s.stats.MinionDamage(),
		Speed:    mc.Speed,
		Lifetime: mc.Lifetime,
	}
	s.minions = append(s.minions, m)
	return m
}

// reanimate consumes corpses near the player while capacity and mana allow.
func (s *Simulation) reanimate() {
	mc := s.cfg.Minions
	for _, c := range s.corpses {
		if c.Dead || core.Dist(c.Pos, s.player.Pos) >= mc.ReanimateRange {
			continue
		}
		if s.stats.MinionCount >= s.stats.MinionCap || s.stats.Mana < mc.ManaCost {
			continue
		}
		s.stats.Mana -= mc.ManaCost
		s.stats.MinionCount++
		c.Dead = true

		s.spawnMinion(c)
		s.spawnParticles(c.Pos, core.ColorCyan, 20)
		s.spawnFloatingText(c.Pos, "ARISE", core.ColorCyan)
		s.playCue(CueSummon, 0.8)
		s.progress(EventCollect, 1)
	}
}

// enemyByID resolves a weak reference. Dead enemies do not resolve.
func (s *Simulation) enemyByID(id EntityID) *Enemy {
	if id == 0 {
		return nil
	}
	for _, e := range s.enemies {
		if e.ID == id {
			if e.Dead {
				return nil
			}
			return e
		}
	}
	return nil
}

// nearestEnemy returns the closest live enemy strictly within maxDist.
func (s *Simulation) nearestEnemy(pos core.Vec2, maxDist float64) *Enemy {
	var best *Enemy
	bestDist := maxDist
	for _, e := range s.enemies {
		if e.Dead {
			continue
		}
		if d := core.Dist(pos, e.Pos); d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best
}
