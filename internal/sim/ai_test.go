package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/herald/internal/core"
)

const aiDT = 1.0 / 60

func nearVec(a, b core.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

func newAISim(t *testing.T) *Simulation {
	t.Helper()
	s := newTestSim(t, 21)
	quiet(s)
	s.player.Pos = core.V(0, 0)
	return s
}

func TestCrawlerTargeting(t *testing.T) {
	tests := []struct {
		name    string
		crawler core.Vec2
		minion  *core.Vec2
		wantVel core.Vec2
	}{
		{"chases player", core.V(400, 0), nil, core.V(-100, 0)},
		{"switches to close minion", core.V(400, 0), &core.Vec2{X: 400, Y: 150}, core.V(0, 100)},
		{"ignores minion beyond threat range", core.V(400, 0), &core.Vec2{X: 400, Y: -350}, core.V(-100, 0)},
		{"ignores minion farther than player", core.V(250, 0), &core.Vec2{X: 250, Y: 280}, core.V(-100, 0)},
		{"holds inside combined radii", core.V(30, 0), nil, core.Vec2{}},
		{"idle beyond aggro range", core.V(900, 0), nil, core.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newAISim(t)
			if tt.minion != nil {
				s.spawnMinion(&Corpse{Entity: Entity{Pos: *tt.minion}, SourceSprite: "enemy_crawler"})
			}
			e := s.addEnemy(VariantCrawler, tt.crawler)

			s.crawlerAI(e, aiDT)
			if !nearVec(e.Vel, tt.wantVel) {
				t.Errorf("Vel = %v, expected %v", e.Vel, tt.wantVel)
			}
		})
	}
}

func TestSpitterKeepsDistanceBand(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		want core.Vec2 // Spitter sits on +X, so the player is in direction (-1, 0)
	}{
		{"backs away when close", 200, core.V(120, 0)},
		{"closes in when far", 400, core.V(-120, 0)},
		{"orbits inside the band", 320, core.V(0, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newAISim(t)
			e := s.addEnemy(VariantSpitter, core.V(tt.dist, 0))
			e.ShootCooldown = 10

			s.spitterAI(e, aiDT)
			if !nearVec(e.Vel, tt.want) {
				t.Errorf("Vel = %v, expected %v", e.Vel, tt.want)
			}
		})
	}
}

func TestSpitterFiring(t *testing.T) {
	tests := []struct {
		name  string
		dist  float64
		fires bool
	}{
		{"inside fire range", 600, true},
		{"outside fire range", 750, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newAISim(t)
			e := s.addEnemy(VariantSpitter, core.V(tt.dist, 0))
			e.ShootCooldown = 0
			before := s.projectiles.ActiveCount()

			s.spitterAI(e, aiDT)
			fired := s.projectiles.ActiveCount() - before
			if tt.fires {
				if fired != 1 {
					t.Fatalf("expected one projectile, got %d", fired)
				}
				if e.ShootCooldown < 2 || e.ShootCooldown >= 3 {
					t.Errorf("ShootCooldown = %v, expected in [2, 3)", e.ShootCooldown)
				}
				return
			}
			if fired != 0 {
				t.Errorf("expected no projectile out of range, got %d", fired)
			}
		})
	}
}

func TestSpitterCooldownBlocksFiring(t *testing.T) {
	s := newAISim(t)
	e := s.addEnemy(VariantSpitter, core.V(320, 0))
	e.ShootCooldown = 1
	before := s.projectiles.ActiveCount()

	s.spitterAI(e, aiDT)
	if got := s.projectiles.ActiveCount(); got != before {
		t.Errorf("spitter fired during cooldown: %d projectiles, expected %d", got, before)
	}
}

func TestBatWeave(t *testing.T) {
	phases := []float64{0, 0.5, math.Pi/2 - 3*aiDT, math.Pi, 4.2}

	for _, phase := range phases {
		s := newAISim(t)
		e := s.addEnemy(VariantBat, core.V(400, 0))
		e.Phase = phase

		s.batAI(e, aiDT)

		wantPhase := phase + aiDT*3
		if math.Abs(e.Phase-wantPhase) > 1e-9 {
			t.Errorf("Phase = %v, expected %v", e.Phase, wantPhase)
		}
		// Toward the player is (-1, 0); its perpendicular is (0, -1).
		want := core.V(-220, -math.Sin(wantPhase)*120)
		if !nearVec(e.Vel, want) {
			t.Errorf("phase %v: Vel = %v, expected %v", phase, e.Vel, want)
		}
		if e.Vel.Len() < 220 {
			t.Errorf("phase %v: bat slowed to %v", phase, e.Vel.Len())
		}
	}
}

func TestBatNeverStopsInContact(t *testing.T) {
	s := newAISim(t)
	e := s.addEnemy(VariantBat, core.V(10, 0))

	s.batAI(e, aiDT)
	if e.Vel.Len() < 220 {
		t.Errorf("bat in contact should keep flying, speed %v", e.Vel.Len())
	}
}
