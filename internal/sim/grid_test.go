package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/herald/internal/core"
)

func TestGridNoFalseNegatives(t *testing.T) {
	const cellSize = 200.0
	rng := rand.New(rand.NewSource(7))
	g := NewGrid(cellSize)

	var bodies []*Enemy
	for i := range 400 {
		e := &Enemy{Entity: Entity{ID: EntityID(i + 1), Pos: core.V(rng.Float64()*2000-1000, rng.Float64()*2000-1000)}}
		bodies = append(bodies, e)
		g.Insert(e)
	}

	var buf []Body
	for range 200 {
		q := core.V(rng.Float64()*2000-1000, rng.Float64()*2000-1000)
		buf = g.Query(q, buf[:0])

		found := make(map[EntityID]bool, len(buf))
		for _, b := range buf {
			found[b.base().ID] = true
		}
		for _, e := range bodies {
			if core.Dist(q, e.Pos) <= cellSize && !found[e.ID] {
				t.Fatalf("body %d at %v within %v of %v missing from query", e.ID, e.Pos, cellSize, q)
			}
		}
	}
}

func TestGridNegativeCoordinates(t *testing.T) {
	g := NewGrid(200)
	e := &Enemy{Entity: Entity{ID: 1, Pos: core.V(-10, -10)}}
	g.Insert(e)

	// (-10, -10) floors to cell (-1, -1); (150, 150) is cell (0, 0), a neighbor.
	got := g.Query(core.V(150, 150), nil)
	if len(got) != 1 {
		t.Fatalf("expected neighbor across the origin, got %d bodies", len(got))
	}
}

func TestGridClearKeepsCapacity(t *testing.T) {
	g := NewGrid(100)
	for i := range 8 {
		g.Insert(&Enemy{Entity: Entity{ID: EntityID(i + 1), Pos: core.V(5, 5)}})
	}
	k := g.key(core.V(5, 5))
	before := cap(g.cells[k])

	g.Clear()
	if n := len(g.Query(core.V(5, 5), nil)); n != 0 {
		t.Errorf("query after Clear returned %d bodies", n)
	}
	if cap(g.cells[k]) != before {
		t.Errorf("Clear dropped bucket capacity: %d -> %d", before, cap(g.cells[k]))
	}
}

func TestGridQueryEntityIncludesSelf(t *testing.T) {
	g := NewGrid(200)
	pl := newPlayer(1, 20)
	g.Insert(pl)
	got := g.QueryEntity(pl, nil)
	if len(got) != 1 || got[0] != Body(pl) {
		t.Errorf("QueryEntity should include the body itself, got %v", got)
	}
}

func TestGridClearDropsStaleCells(t *testing.T) {
	g := NewGrid(200)
	e := &Enemy{Entity: Entity{ID: 1}}

	for i := range 5000 {
		g.Clear()
		e.Pos = core.V(float64(i)*200+100, 100)
		g.Insert(e)
	}

	if n := len(g.cells); n > 2 {
		t.Errorf("grid holds %d cells after a long walk, expected at most 2", n)
	}
	if got := g.Query(e.Pos, nil); len(got) != 1 {
		t.Errorf("expected the body in its current cell, got %d bodies", len(got))
	}
}
