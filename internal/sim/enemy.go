package sim

import (
	"math"

	"github.com/vovakirdan/herald/internal/config"
	"github.com/vovakirdan/herald/internal/core"
)

// EnemyVariant selects an enemy's behavior policy.
type EnemyVariant uint8

const (
	VariantCrawler EnemyVariant = iota // Melee chaser
	VariantSpitter                     // Ranged kiter
	VariantBat                         // Weaving flyer
)

func (v EnemyVariant) String() string {
	switch v {
	case VariantCrawler:
		return "crawler"
	case VariantSpitter:
		return "spitter"
	case VariantBat:
		return "bat"
	default:
		return "unknown"
	}
}

// Enemy is a hostile actor. Variant-specific state lives in the same struct;
// the behavior is chosen by a switch on Variant.
type Enemy struct {
	Entity
	Variant    EnemyVariant
	Boss       bool
	HP         float64
	MaxHP      float64
	Speed      float64
	Damage     float64
	XP         float64
	AggroRange float64
	Pushback   core.Vec2

	ShootCooldown float64 // Spitter
	Phase         float64 // Bat weave
}

// TakeDamage subtracts hp and knocks the enemy away from the source.
// It returns true only on the hit that kills, so death handling runs once.
func (e *Enemy) TakeDamage(amount float64, from core.Vec2, pushback float64) bool {
	if e.Dead {
		return false
	}
	e.HP -= amount
	e.Pushback = e.Pos.Sub(from).Normalize().Scale(pushback)
	if e.HP <= 0 {
		e.Dead = true
		return true
	}
	return false
}

// HPFraction returns remaining hp in [0, 1].
func (e *Enemy) HPFraction() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return core.ClampF(e.HP/e.MaxHP, 0, 1)
}

// applyPushback moves by the knockback and decays it toward zero.
func (e *Enemy) applyPushback(dt, decay float64) {
	e.Pos = e.Pos.Add(e.Pushback.Scale(dt))
	e.Pushback = e.Pushback.Scale(decay)
}

func variantColor(v EnemyVariant) core.Color {
	switch v {
	case VariantSpitter:
		return core.ColorBrightCyan
	case VariantBat:
		return core.ColorOrange
	default:
		return core.ColorPurple
	}
}

// newEnemy builds an enemy from variant tuning, scaled for the wave.
func (s *Simulation) newEnemy(v EnemyVariant, pos core.Vec2) *Enemy {
	var ec config.EnemyConfig
	switch v {
	case VariantSpitter:
		ec = s.cfg.Enemies.Spitter.EnemyConfig
	case VariantBat:
		ec = s.cfg.Enemies.Bat.EnemyConfig
	default:
		ec = s.cfg.Enemies.Crawler
	}

	scale := 1 + float64(s.wave)*s.cfg.Enemies.WaveScaling
	e := &Enemy{
		Entity: Entity{
			ID:     s.nextID(),
			Kind:   KindEnemy,
			Pos:    pos,
			Radius: ec.Radius,
			Scale:  1,
			Sprite: ec.Sprite,
			Color:  variantColor(v),
			Active: true,
		},
		Variant:    v,
		HP:         ec.HP * scale,
		MaxHP:      ec.HP * scale,
		Speed:      ec.Speed,
		Damage:     ec.Damage * scale,
		XP:         ec.XP,
		AggroRange: ec.AggroRange,
	}
	if v == VariantBat {
		e.Phase = s.rng.Float64() * math.Pi * 2
	}
	return e
}

// newBoss scales a crawler into the class-change boss.
func (s *Simulation) newBoss(pos core.Vec2) *Enemy {
	bc := s.cfg.Enemies.Boss
	e := s.newEnemy(VariantCrawler, pos)
	e.Boss = true
	e.HP *= bc.HPScale
	e.MaxHP = e.HP
	e.Radius *= bc.RadiusScale
	e.Damage *= bc.DamageScale
	e.XP = bc.XP
	e.Sprite = bc.Sprite
	e.Color = core.ColorBrightRed
	return e
}
