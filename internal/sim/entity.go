// Package sim implements the simulation core: entity model, object pools,
// spatial grid, combat, enemy and minion behavior, progression, and the
// per-frame orchestrator. A Simulation is single-threaded; one goroutine owns it.
package sim

import (
	"github.com/vovakirdan/herald/internal/core"
)

// EntityID identifies an entity for the lifetime of a run.
// IDs come from a per-simulation counter and are never reused.
type EntityID uint64

// Kind tags what an entity is.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindMinion
	KindParticle
	KindProjectile
	KindAfterImage
	KindFloatingText
	KindCorpse
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindMinion:
		return "minion"
	case KindParticle:
		return "particle"
	case KindProjectile:
		return "projectile"
	case KindAfterImage:
		return "after_image"
	case KindFloatingText:
		return "floating_text"
	case KindCorpse:
		return "corpse"
	default:
		return "unknown"
	}
}

// Entity is the state shared by everything in the world.
type Entity struct {
	ID       EntityID
	Kind     Kind
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	Rotation float64
	Scale    float64
	Sprite   string
	Color    core.Color
	Active   bool // Pool slot in use
	Dead     bool // Removed at the end of the frame
}

func (e *Entity) base() *Entity { return e }

// Integrate advances position by velocity.
func (e *Entity) Integrate(dt float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// Overlaps reports whether two circles intersect.
func (e *Entity) Overlaps(o *Entity) bool {
	return core.Dist(e.Pos, o.Pos) < e.Radius+o.Radius
}

// Alive reports whether the entity still participates in the frame.
func (e *Entity) Alive() bool {
	return e.Active && !e.Dead
}
