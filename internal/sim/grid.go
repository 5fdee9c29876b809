package sim

import (
	"math"

	"github.com/vovakirdan/herald/internal/core"
)

// Body is anything stored in the spatial grid.
type Body interface {
	base() *Entity
}

type cellKey struct {
	X, Y int
}

// Grid is a uniform-cell broad phase. It is rebuilt every frame; a query
// returns the union of the 3x3 cells around a point, which contains every
// body within one cell size of it.
type Grid struct {
	cellSize float64
	cells    map[cellKey][]Body
}

// NewGrid creates a grid with the given cell size in world units.
func NewGrid(cellSize float64) *Grid {
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]Body),
	}
}

// CellSize returns the cell edge length.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

func (g *Grid) key(p core.Vec2) cellKey {
	return cellKey{
		X: int(math.Floor(p.X / g.cellSize)),
		Y: int(math.Floor(p.Y / g.cellSize)),
	}
}

// Clear empties every cell. Cells used since the last Clear keep their slice
// capacity for the next rebuild; cells left empty for a whole frame are dropped.
func (g *Grid) Clear() {
	for k, bucket := range g.cells {
		if len(bucket) == 0 {
			delete(g.cells, k)
			continue
		}
		clear(bucket)
		g.cells[k] = bucket[:0]
	}
}

// Insert adds a body at its current position.
func (g *Grid) Insert(b Body) {
	k := g.key(b.base().Pos)
	g.cells[k] = append(g.cells[k], b)
}

// Query appends every body in the 3x3 neighborhood of pos to buf.
func (g *Grid) Query(pos core.Vec2, buf []Body) []Body {
	c := g.key(pos)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			buf = append(buf, g.cells[cellKey{X: c.X + dx, Y: c.Y + dy}]...)
		}
	}
	return buf
}

// QueryEntity is Query around a body's own position. The body itself is included.
func (g *Grid) QueryEntity(b Body, buf []Body) []Body {
	return g.Query(b.base().Pos, buf)
}
