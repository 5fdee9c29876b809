package config

import (
	"fmt"
	"strings"
)

// Difficulty represents a named difficulty preset.
type Difficulty string

const (
	DifficultyScavenger Difficulty = "scavenger"
	DifficultyVeteran   Difficulty = "veteran"
	DifficultyMaster    Difficulty = "master"
	DifficultyApex      Difficulty = "apex"
)

// Difficulties lists presets in menu order.
var Difficulties = []Difficulty{
	DifficultyScavenger,
	DifficultyVeteran,
	DifficultyMaster,
	DifficultyApex,
}

// Modifiers scale enemy numbers and the spawn cadence for a preset.
type Modifiers struct {
	EnemyHP       float64
	EnemyDamage   float64
	SpawnInterval float64 // Multiplier on the spawn interval; below 1 spawns faster
}

// ParseDifficulty parses a preset name case-insensitively.
// An empty name selects the veteran preset.
func ParseDifficulty(name string) (Difficulty, error) {
	if name == "" {
		return DifficultyVeteran, nil
	}
	d := Difficulty(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Difficulties {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want scavenger, veteran, master or apex)", name)
}

// Label returns the upper-case display name.
func (d Difficulty) Label() string {
	return strings.ToUpper(string(d))
}

// ModifiersFor returns the scaling for a preset. Unknown presets behave as veteran.
func ModifiersFor(d Difficulty) Modifiers {
	switch d {
	case DifficultyScavenger:
		return Modifiers{EnemyHP: 0.75, EnemyDamage: 0.6, SpawnInterval: 1.25}
	case DifficultyMaster:
		return Modifiers{EnemyHP: 1.3, EnemyDamage: 1.25, SpawnInterval: 0.85}
	case DifficultyApex:
		return Modifiers{EnemyHP: 1.6, EnemyDamage: 1.5, SpawnInterval: 0.7}
	default:
		return Modifiers{EnemyHP: 1, EnemyDamage: 1, SpawnInterval: 1}
	}
}

// ApplyDifficulty returns a copy of cfg with enemy hp and damage scaled for the
// preset. The spawn multiplier is applied by the spawner since the interval
// also depends on the current wave.
func ApplyDifficulty(cfg HeraldConfig, d Difficulty) HeraldConfig {
	m := ModifiersFor(d)
	scale := func(e *EnemyConfig) {
		e.HP *= m.EnemyHP
		e.Damage *= m.EnemyDamage
	}
	scale(&cfg.Enemies.Crawler)
	scale(&cfg.Enemies.Spitter.EnemyConfig)
	scale(&cfg.Enemies.Bat.EnemyConfig)
	return cfg
}
