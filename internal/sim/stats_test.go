package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/herald/internal/config"
)

func defaultStats() Stats {
	return NewStats(config.DefaultHeraldConfig().Player.StartStats)
}

func TestNewStats(t *testing.T) {
	s := defaultStats()
	if s.HP != 150 || s.MaxHP != 150 || s.Stamina != 100 || s.Mana != 50 {
		t.Errorf("unexpected starting resources: %+v", s)
	}
	if s.Level != 1 || s.XP != 0 || s.MaxXP != 100 {
		t.Errorf("unexpected starting progression: %+v", s)
	}
	if s.MinionCap != 3 || s.MinionCount != 0 {
		t.Errorf("unexpected minion counts: %+v", s)
	}
}

func TestDerivedStats(t *testing.T) {
	s := defaultStats()
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"move speed", s.MoveSpeed(), 300},
		{"dash cooldown", s.DashCooldown(), 0.7},
		{"attack cooldown", s.AttackCooldown(), 0.3},
		{"stamina regen", s.StaminaRegen(), 20},
		{"mana regen", s.ManaRegen(), 7},
		{"minion damage", s.MinionDamage(), 30},
	}
	for _, tc := range tests {
		if math.Abs(tc.got-tc.want) > 1e-9 {
			t.Errorf("%s = %f, expected %f", tc.name, tc.got, tc.want)
		}
	}

	fast := s
	fast.Celerity = 100
	if fast.DashCooldown() != 0.3 || fast.AttackCooldown() != 0.1 {
		t.Errorf("cooldowns should floor, got dash=%f attack=%f", fast.DashCooldown(), fast.AttackCooldown())
	}

	odd := s
	odd.Acuity = 13
	if odd.ClassMinionCap() != 16 {
		t.Errorf("ClassMinionCap() = %d, expected 16", odd.ClassMinionCap())
	}
}

func TestGainXPLevelsUp(t *testing.T) {
	cfg := config.DefaultHeraldConfig().Progression
	s := defaultStats()
	s.HP = 10
	s.Mana = 1

	if s.GainXP(60, cfg.XPGrowth, cfg.PerLevel) {
		t.Fatal("60 of 100 xp should not level")
	}
	if !s.GainXP(70, cfg.XPGrowth, cfg.PerLevel) {
		t.Fatal("130 of 100 xp should level")
	}

	if s.Level != 2 {
		t.Errorf("Level = %d, expected 2", s.Level)
	}
	if s.XP != 0 {
		t.Errorf("overflow should be discarded, XP = %f", s.XP)
	}
	if math.Abs(s.MaxXP-120) > 1e-9 {
		t.Errorf("MaxXP = %f, expected 120", s.MaxXP)
	}
	if s.Might != 12 || s.Fortitude != 11 || s.Celerity != 11 || s.Acuity != 11 || s.Precision != 12 {
		t.Errorf("attributes not raised: %+v", s)
	}
	if s.HP != s.MaxHP || s.Mana != s.MaxMana {
		t.Error("level up should restore hp and mana")
	}
}

func TestRegenerateClampsToMax(t *testing.T) {
	s := defaultStats()
	s.Stamina = 99.9
	s.Mana = 49.99
	s.Regenerate(0.05)

	if s.Stamina != s.MaxStamina {
		t.Errorf("Stamina = %f, expected clamp to %f", s.Stamina, s.MaxStamina)
	}
	if s.Mana != s.MaxMana {
		t.Errorf("Mana = %f, expected clamp to %f", s.Mana, s.MaxMana)
	}

	s.Stamina = 50
	s.Regenerate(0.5)
	if math.Abs(s.Stamina-60) > 1e-9 {
		t.Errorf("Stamina = %f, expected 60", s.Stamina)
	}
}
