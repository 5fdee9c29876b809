package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/herald/internal/core"
)

func TestComputeDamage(t *testing.T) {
	tests := []struct {
		name      string
		might     int
		level     int
		precision int
		crit      bool
		want      float64
	}{
		{"base", 10, 1, 10, false, 22},
		{"crit precision 10", 10, 1, 10, true, 44},
		{"higher level", 12, 3, 12, false, 30},
		{"crit precision 0", 10, 1, 0, true, 33},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeDamage(tc.might, tc.level, tc.precision, tc.crit)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("ComputeDamage(%d, %d, %d, %v) = %f, expected %f",
					tc.might, tc.level, tc.precision, tc.crit, got, tc.want)
			}
		})
	}
}

func TestMitigate(t *testing.T) {
	got := Mitigate(100, 10)
	if math.Abs(got-83.3333333) > 1e-6 {
		t.Errorf("Mitigate(100, 10) = %f, expected 83.333...", got)
	}
	if Mitigate(50, 0) != 50 {
		t.Error("zero fortitude should not mitigate")
	}
}

func TestRollCrit(t *testing.T) {
	if !RollCrit(10, 0.19) {
		t.Error("roll below 0.2 should crit at precision 10")
	}
	if RollCrit(10, 0.2) {
		t.Error("roll of exactly 0.2 should not crit at precision 10")
	}
	if !RollCrit(50, 0.9999) {
		t.Error("precision 50 gives chance 1 and should always crit")
	}
}

func TestInArc(t *testing.T) {
	origin := core.V(0, 0)
	tests := []struct {
		name   string
		facing float64
		target core.Vec2
		want   bool
	}{
		{"straight ahead", 0, core.V(100, 0), true},
		{"out of reach", 0, core.V(150, 0), false},
		{"behind", 0, core.V(-50, 0), false},
		{"edge of arc", 0, core.FromAngle(1.25).Scale(80), true},
		{"just outside arc", 0, core.FromAngle(1.35).Scale(80), false},
		{"wraps across pi", math.Pi - 0.1, core.FromAngle(-math.Pi + 0.1).Scale(80), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InArc(origin, tc.facing, tc.target, 110, 1.3); got != tc.want {
				t.Errorf("InArc(facing=%f, target=%v) = %v, expected %v", tc.facing, tc.target, got, tc.want)
			}
		})
	}
}

func TestEnemyTakeDamageFiresDeathOnce(t *testing.T) {
	e := &Enemy{Entity: Entity{Pos: core.V(10, 0), Active: true}, HP: 20, MaxHP: 20}

	if e.TakeDamage(15, core.V(0, 0), 350) {
		t.Error("non-lethal hit reported a kill")
	}
	if !e.TakeDamage(15, core.V(0, 0), 350) {
		t.Error("lethal hit should report a kill")
	}
	if !e.Dead {
		t.Error("enemy with hp <= 0 must be dead")
	}
	if e.TakeDamage(15, core.V(0, 0), 350) {
		t.Error("a dead enemy must not report a second kill")
	}
}

func TestPushbackDecaysWithoutReversing(t *testing.T) {
	e := &Enemy{Entity: Entity{Pos: core.V(10, 0), Active: true}, HP: 100, MaxHP: 100}
	e.TakeDamage(1, core.V(0, 0), 350)

	if math.Abs(e.Pushback.X-350) > 1e-9 || e.Pushback.Y != 0 {
		t.Fatalf("pushback should point away from the source at 350, got %v", e.Pushback)
	}

	prev := e.Pushback.X
	for range 100 {
		e.applyPushback(1.0/60, 0.9)
		if e.Pushback.X < 0 {
			t.Fatal("pushback reversed sign")
		}
		if e.Pushback.X >= prev {
			t.Fatalf("pushback did not decay: %f -> %f", prev, e.Pushback.X)
		}
		prev = e.Pushback.X
	}
}

func TestMeleeKillsEnemyInArc(t *testing.T) {
	s := newTestSim(t, 3)
	quiet(s)

	front := s.addEnemy(VariantCrawler, core.V(60, 0))
	front.HP = 5
	behind := s.addEnemy(VariantCrawler, core.V(-60, 0))
	behind.HP = 5

	s.Step(1.0/60, core.Intents{Attack: true})

	if !front.Dead {
		t.Error("enemy in front of the player should die")
	}
	if behind.Dead {
		t.Error("enemy behind the player is outside the arc")
	}
	if s.kills != 1 {
		t.Errorf("kills = %d, expected 1", s.kills)
	}
	if s.missions.Current().Current != 1 {
		t.Errorf("mission progress = %f, expected 1", s.missions.Current().Current)
	}
	if s.stats.XP != 10 {
		t.Errorf("XP = %f, expected 10", s.stats.XP)
	}
	if s.player.ComboIndex != 1 {
		t.Errorf("first swing should advance combo to 1, got %d", s.player.ComboIndex)
	}
	if s.shake <= 0 {
		t.Error("a hit should shake the camera")
	}
	for _, e := range s.enemies {
		if e == front {
			t.Error("dead enemy should be filtered at the end of the frame")
		}
	}
}

func TestComboResetsAfterWindow(t *testing.T) {
	s := newTestSim(t, 3)
	quiet(s)

	s.Step(1.0/60, core.Intents{Attack: true})
	if s.player.ComboIndex != 1 {
		t.Fatalf("combo = %d after first swing", s.player.ComboIndex)
	}

	// Let the 0.8 s window lapse without attacking
	for range 60 {
		s.Step(1.0/60, core.Intents{})
	}
	if s.player.ComboIndex != 0 {
		t.Errorf("combo should reset after the window, got %d", s.player.ComboIndex)
	}
}

func TestProjectileHitsPlayer(t *testing.T) {
	s := newTestSim(t, 3)
	quiet(s)

	s.spawnProjectile(core.V(5, 0), core.Vec2{}, 10, core.ColorCyan)
	hp := s.stats.HP
	s.Step(1.0/60, core.Intents{})

	want := hp - Mitigate(10, s.stats.Fortitude)
	if math.Abs(s.stats.HP-want) > 1e-9 {
		t.Errorf("HP = %f, expected %f", s.stats.HP, want)
	}
	if s.projectiles.ActiveCount() != 0 {
		t.Error("projectile should be consumed on hit")
	}
}
