package sim

import (
	"testing"

	"github.com/vovakirdan/herald/internal/core"
)

func newParticlePool(capacity, maxSize int) *Pool[*Particle] {
	return NewPool(func() *Particle { return &Particle{} }, capacity, maxSize)
}

func TestPoolAcquireMarksActive(t *testing.T) {
	p := newParticlePool(4, 0)
	if p.ActiveCount() != 0 {
		t.Fatalf("new pool should have no active slots, got %d", p.ActiveCount())
	}

	item := p.Acquire()
	if !item.Active || item.Dead {
		t.Errorf("acquired slot should be active and not dead, got active=%v dead=%v", item.Active, item.Dead)
	}
	if p.ActiveCount() != 1 {
		t.Errorf("ActiveCount() = %d, expected 1", p.ActiveCount())
	}
}

func TestPoolReusesReleasedSlots(t *testing.T) {
	p := newParticlePool(2, 0)
	a := p.Acquire()
	a.Active = false
	a.Dead = true

	b := p.Acquire()
	if a != b {
		t.Error("released slot should be reused before growing")
	}
	if b.Dead {
		t.Error("reused slot must be revived")
	}
	if p.Len() != 2 {
		t.Errorf("pool should not grow while a slot is free, Len() = %d", p.Len())
	}
}

func TestPoolGrowsWhenExhausted(t *testing.T) {
	p := newParticlePool(3, 0)
	for range 10 {
		p.Acquire()
	}
	if p.Len() != 10 {
		t.Errorf("Len() = %d, expected 10", p.Len())
	}
	if p.ActiveCount() != 10 {
		t.Errorf("ActiveCount() = %d, expected 10", p.ActiveCount())
	}
}

func TestPoolActiveCountTracksLiveUses(t *testing.T) {
	p := newParticlePool(5, 0)
	var held []*Particle
	for range 5 {
		held = append(held, p.Acquire())
	}
	held[1].Active = false
	held[3].Active = false

	if got := p.ActiveCount(); got != 3 {
		t.Errorf("ActiveCount() = %d, expected 3", got)
	}

	visited := 0
	p.Each(func(*Particle) { visited++ })
	if visited != 3 {
		t.Errorf("Each visited %d slots, expected 3", visited)
	}
}

func TestPoolSoftCapEvictsOldest(t *testing.T) {
	p := newParticlePool(2, 2)
	first := p.Acquire()
	second := p.Acquire()
	third := p.Acquire()

	if p.Len() != 2 {
		t.Errorf("capped pool grew to %d slots", p.Len())
	}
	if third != first {
		t.Error("capped pool should recycle the oldest slot")
	}
	fourth := p.Acquire()
	if fourth != second {
		t.Error("after recycling the first slot the second is the oldest")
	}
}

func TestPoolReset(t *testing.T) {
	p := newParticlePool(3, 0)
	for range 3 {
		p.Acquire()
	}
	p.Reset()
	if p.ActiveCount() != 0 {
		t.Errorf("after Reset ActiveCount() = %d, expected 0", p.ActiveCount())
	}
}

func TestReacquiredParticleIsFullyInitialized(t *testing.T) {
	s := newTestSim(t, 1)
	s.particles.Reset()

	s.spawnParticles(core.V(10, 10), core.ColorRed, 1)
	var first *Particle
	s.particles.Each(func(p *Particle) { first = p })
	firstID := first.ID

	// Leave garbage in the slot, then release it
	first.Life = -5
	first.Sprite = "stale"
	first.Rotation = 3
	first.Active = false
	first.Dead = true

	s.spawnParticles(core.V(-4, 2), core.ColorGreen, 1)
	var second *Particle
	s.particles.Each(func(p *Particle) { second = p })

	if second != first {
		t.Fatal("expected the released slot to be reused")
	}
	if second.ID == firstID {
		t.Error("re-acquired slot must get a fresh id")
	}
	if second.Life != 1 || second.Sprite != "" || second.Rotation != 0 || second.Dead {
		t.Errorf("slot not re-initialized: %+v", second)
	}
	if second.Pos != core.V(-4, 2) || second.Color != core.ColorGreen {
		t.Errorf("slot has stale position or color: %+v", second.Entity)
	}
	if second.Radius < 1 || second.Radius > 4 {
		t.Errorf("radius %f outside [1, 4]", second.Radius)
	}
}

func TestReacquiredTextIsFullyInitialized(t *testing.T) {
	s := newTestSim(t, 1)
	s.texts.Reset()

	s.spawnFloatingText(core.V(0, 0), "99", core.ColorRed)
	var slot *FloatingText
	s.texts.Each(func(ft *FloatingText) { slot = ft })
	slot.Life = 0
	slot.Active = false

	s.spawnFloatingText(core.V(5, 5), "ARISE", core.ColorCyan)
	if slot.Text != "ARISE" || slot.Life != floatingTextLife || slot.Vel.Y != -60 {
		t.Errorf("text slot not re-initialized: %+v", slot)
	}
}
