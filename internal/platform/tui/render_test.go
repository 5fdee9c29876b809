package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/herald/internal/core"
	"github.com/vovakirdan/herald/internal/sim"
)

func testViewport() Viewport {
	return Viewport{Width: 40, Height: 20, Scale: DefaultScale}
}

func TestViewportToCell(t *testing.T) {
	vp := testViewport()
	vp.Center = core.V(100, 50)

	tests := []struct {
		name   string
		p      core.Vec2
		wx, wy int
	}{
		{"center", core.V(100, 50), 20, 10},
		{"one column right", core.V(112, 50), 21, 10},
		{"one row down is two scales", core.V(100, 74), 20, 11},
		{"left of center floors", core.V(99, 50), 19, 10},
		{"off grid", core.V(-1000, 50), -80, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := vp.ToCell(tt.p)
			if x != tt.wx || y != tt.wy {
				t.Errorf("ToCell(%v) = (%d, %d), expected (%d, %d)", tt.p, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	vp := testViewport()
	vp.Center = core.V(-37, 210)

	for y := range vp.Height {
		for x := range vp.Width {
			cx, cy := vp.ToCell(vp.ToWorld(x, y).Add(core.V(1, 1)))
			if cx != x || cy != y {
				t.Fatalf("cell (%d, %d) mapped back to (%d, %d)", x, y, cx, cy)
			}
		}
	}
}

func TestDrawWorldPlayerAtCenter(t *testing.T) {
	s := core.NewScreen(40, 20)
	f := sim.Frame{
		Drawables: []sim.Drawable{
			{Kind: sim.KindPlayer, Pos: core.V(0, 0), Color: core.ColorBrightWhite, Alpha: 1},
		},
	}
	DrawWorld(s, f, testViewport())

	if got := s.Get(20, 10); got != '@' {
		t.Errorf("expected player '@' at center, got %q", got)
	}
	if got := s.Get(21, 10); got != '→' {
		t.Errorf("expected facing arrow right of the player, got %q", got)
	}
}

func TestDrawWorldFollowsCamera(t *testing.T) {
	s := core.NewScreen(40, 20)
	vp := testViewport()
	vp.Center = core.V(500, 500)
	f := sim.Frame{
		Camera: vp.Center,
		Drawables: []sim.Drawable{
			{Kind: sim.KindEnemy, Variant: sim.VariantBat, Pos: core.V(500, 500), Alpha: 1, HPFrac: 1},
		},
	}
	DrawWorld(s, f, vp)

	if got := s.Get(20, 10); got != 'w' {
		t.Errorf("expected bat at view center, got %q", got)
	}
}

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		name string
		d    sim.Drawable
		want rune
	}{
		{"crawler", sim.Drawable{Kind: sim.KindEnemy, Variant: sim.VariantCrawler, HPFrac: 1, Alpha: 1}, 'X'},
		{"wounded crawler", sim.Drawable{Kind: sim.KindEnemy, Variant: sim.VariantCrawler, HPFrac: 0.2, Alpha: 1}, 'x'},
		{"spitter", sim.Drawable{Kind: sim.KindEnemy, Variant: sim.VariantSpitter, HPFrac: 1, Alpha: 1}, 'S'},
		{"bat", sim.Drawable{Kind: sim.KindEnemy, Variant: sim.VariantBat, HPFrac: 1, Alpha: 1}, 'w'},
		{"minion", sim.Drawable{Kind: sim.KindMinion, Alpha: 1}, 'm'},
		{"fresh corpse", sim.Drawable{Kind: sim.KindCorpse, Alpha: 1}, '%'},
		{"fading corpse", sim.Drawable{Kind: sim.KindCorpse, Alpha: 0.1}, ','},
		{"projectile", sim.Drawable{Kind: sim.KindProjectile, Alpha: 1}, 'o'},
		{"particle", sim.Drawable{Kind: sim.KindParticle, Alpha: 1}, '*'},
		{"after-image", sim.Drawable{Kind: sim.KindAfterImage, Alpha: 0.6}, '@'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := glyphFor(tt.d); got != tt.want {
				t.Errorf("glyphFor() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestDrawWorldBossAndText(t *testing.T) {
	s := core.NewScreen(40, 20)
	f := sim.Frame{
		Drawables: []sim.Drawable{
			{Kind: sim.KindEnemy, Boss: true, Pos: core.V(0, -80), HPFrac: 1, Alpha: 1},
			{Kind: sim.KindFloatingText, Pos: core.V(0, 120), Text: "22", Alpha: 1},
		},
	}
	DrawWorld(s, f, testViewport())

	if row := s.Row(6); !strings.Contains(row, "<W>") {
		t.Errorf("expected boss glyph on row 6, got %q", row)
	}
	if row := s.Row(15); !strings.Contains(row, "22") {
		t.Errorf("expected damage number on row 15, got %q", row)
	}
}

func TestOctant(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '→'},
		{1.5708, '↓'},
		{3.1416, '←'},
		{-1.5708, '↑'},
		{-0.7854, '↗'},
	}
	for _, tt := range tests {
		if got := facingRunes[octant(tt.angle)]; got != tt.want {
			t.Errorf("facing for %v = %q, expected %q", tt.angle, got, tt.want)
		}
	}
}

func TestDrawPauseBox(t *testing.T) {
	s := core.NewScreen(40, 20)
	drawPauseBox(s)

	if row := s.Row(10); !strings.Contains(row, "PAUSED") {
		t.Errorf("expected PAUSED on the middle row, got %q", row)
	}
	if got := s.Get(13, 9); got != '┌' {
		t.Errorf("expected box corner at (13, 9), got %q", got)
	}
}
