package sim

import (
	"math"

	"github.com/vovakirdan/herald/internal/config"
)

// Class is the player's unlocked class.
type Class uint8

const (
	ClassNone Class = iota
	ClassShadowWeaver
)

func (c Class) String() string {
	if c == ClassShadowWeaver {
		return "SHADOW_WEAVER"
	}
	return "NONE"
}

// Stats is the player's resource and attribute block.
type Stats struct {
	HP, MaxHP           float64
	Stamina, MaxStamina float64
	XP, MaxXP           float64
	Level               int
	Mana, MaxMana       float64

	Might     int
	Fortitude int
	Celerity  int
	Acuity    int
	Precision int

	MinionCount int
	MinionCap   int
}

// NewStats builds the starting block of a run.
func NewStats(c config.StatsConfig) Stats {
	return Stats{
		HP: c.HP, MaxHP: c.HP,
		Stamina: c.Stamina, MaxStamina: c.Stamina,
		XP: 0, MaxXP: c.MaxXP,
		Level: 1,
		Mana:  c.Mana, MaxMana: c.Mana,
		Might:     c.Might,
		Fortitude: c.Fortitude,
		Celerity:  c.Celerity,
		Acuity:    c.Acuity,
		Precision: c.Precision,
		MinionCap: c.MinionCap,
	}
}

// Derived numbers. All are pure functions of the stat block.

func (s Stats) MoveSpeed() float64 {
	return 250 + float64(s.Celerity)*5
}

func (s Stats) DashCooldown() float64 {
	return math.Max(0.3, 0.8-float64(s.Celerity)*0.01)
}

func (s Stats) AttackCooldown() float64 {
	return math.Max(0.1, 0.35-float64(s.Celerity)*0.005)
}

func (s Stats) StaminaRegen() float64 {
	return 10 + float64(s.Fortitude)
}

func (s Stats) ManaRegen() float64 {
	return 2 + float64(s.Acuity)*0.5
}

func (s Stats) MinionDamage() float64 {
	return 10 + float64(s.Acuity)*2
}

// ClassMinionCap is the minion capacity granted by the class change.
func (s Stats) ClassMinionCap() int {
	return 10 + int(math.Floor(float64(s.Acuity)*0.5))
}

// Regenerate refills stamina and mana while below max, clamped to max.
func (s *Stats) Regenerate(dt float64) {
	if s.Stamina < s.MaxStamina {
		s.Stamina = math.Min(s.MaxStamina, s.Stamina+s.StaminaRegen()*dt)
	}
	if s.Mana < s.MaxMana {
		s.Mana = math.Min(s.MaxMana, s.Mana+s.ManaRegen()*dt)
	}
}

// GainXP adds experience and reports whether a level was gained.
// Overflow past the threshold is discarded.
func (s *Stats) GainXP(amount float64, growth float64, gain config.AttributeGain) bool {
	s.XP += amount
	if s.XP < s.MaxXP {
		return false
	}
	s.Level++
	s.XP = 0
	s.MaxXP *= growth

	s.Might += gain.Might
	s.Fortitude += gain.Fortitude
	s.Celerity += gain.Celerity
	s.Acuity += gain.Acuity
	s.Precision += gain.Precision

	s.HP = s.MaxHP
	s.Mana = s.MaxMana
	return true
}
