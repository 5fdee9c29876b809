package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/herald/internal/core"
	"github.com/vovakirdan/herald/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorPurple:        lipgloss.NewStyle().Foreground(lipgloss.Color("93")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DefaultScale is world units per column. Rows cover twice as much since
// terminal cells are about twice as tall as wide.
const DefaultScale = 12.0

// groundSpacing is the world distance between floor marks.
const groundSpacing = 96.0

// Viewport maps world coordinates onto the cell grid.
type Viewport struct {
	Width, Height int
	Scale         float64
	Center        core.Vec2 // World point at the middle of the grid
}

// ToCell returns the cell containing world point p.
func (v Viewport) ToCell(p core.Vec2) (int, int) {
	x := (p.X-v.Center.X)/v.Scale + float64(v.Width)/2
	y := (p.Y-v.Center.Y)/(2*v.Scale) + float64(v.Height)/2
	return int(math.Floor(x)), int(math.Floor(y))
}

// ToWorld returns the world point at the top-left corner of a cell.
func (v Viewport) ToWorld(x, y int) core.Vec2 {
	return core.V(
		(float64(x)-float64(v.Width)/2)*v.Scale+v.Center.X,
		(float64(y)-float64(v.Height)/2)*2*v.Scale+v.Center.Y,
	)
}

// DrawWorld renders the frame's drawables, back to front, onto s.
func DrawWorld(s *core.Screen, f sim.Frame, vp Viewport) {
	s.Clear()
	drawGround(s, vp)
	for _, d := range f.Drawables {
		drawOne(s, vp, d)
	}
}

// drawGround scatters fixed floor marks so camera motion is visible.
func drawGround(s *core.Screen, vp Viewport) {
	for y := range s.Height() {
		for x := range s.Width() {
			w := vp.ToWorld(x, y)
			mx := math.Mod(math.Mod(w.X, groundSpacing)+groundSpacing, groundSpacing)
			my := math.Mod(math.Mod(w.Y, groundSpacing)+groundSpacing, groundSpacing)
			if mx < vp.Scale && my < 2*vp.Scale {
				s.SetCell(x, y, '.', core.ColorDarkGray)
			}
		}
	}
}

func drawOne(s *core.Screen, vp Viewport, d sim.Drawable) {
	x, y := vp.ToCell(d.Pos)
	switch d.Kind {
	case sim.KindFloatingText:
		c := d.Color
		if d.Alpha < 0.3 {
			c = core.ColorGray
		}
		s.DrawText(x-len([]rune(d.Text))/2, y, d.Text, c)
		return
	case sim.KindPlayer:
		drawPlayer(s, vp, d, x, y)
		return
	case sim.KindEnemy:
		if d.Boss {
			s.DrawText(x-1, y, "<W>", d.Color)
			drawHPBar(s, x-1, y-1, 3, d.HPFrac)
			return
		}
	}
	r, c := glyphFor(d)
	s.SetCell(x, y, r, c)
}

// glyphFor picks the rune and color for a non-text drawable.
func glyphFor(d sim.Drawable) (rune, core.Color) {
	dim := d.Alpha < 0.35
	switch d.Kind {
	case sim.KindEnemy:
		switch d.Variant {
		case sim.VariantSpitter:
			return 'S', d.Color
		case sim.VariantBat:
			return 'w', d.Color
		default:
			if d.HPFrac < 0.5 {
				return 'x', d.Color
			}
			return 'X', d.Color
		}
	case sim.KindMinion:
		return 'm', d.Color
	case sim.KindCorpse:
		if dim {
			return ',', core.ColorDarkGray
		}
		return '%', core.ColorGray
	case sim.KindAfterImage:
		if dim {
			return '.', core.ColorPurple
		}
		return '@', core.ColorPurple
	case sim.KindParticle:
		if dim {
			return '.', d.Color
		}
		return '*', d.Color
	case sim.KindProjectile:
		return 'o', d.Color
	case sim.KindPlayer:
		return '@', d.Color
	default:
		return '?', core.ColorDefault
	}
}

// facingRunes are arrows for eight octants starting at +X, clockwise on
// screen since world Y grows downward.
var facingRunes = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

func octant(angle float64) int {
	o := int(math.Round(angle/(math.Pi/4))) % 8
	if o < 0 {
		o += 8
	}
	return o
}

// slashRunes are swing glyphs per combo step.
var slashRunes = [3]rune{'-', '/', '\\'}

func drawPlayer(s *core.Screen, vp Viewport, d sim.Drawable, x, y int) {
	c := d.Color
	if d.Dashing {
		c = core.ColorBrightWhite
	}
	s.SetCell(x, y, '@', c)

	dir := core.FromAngle(d.Facing)
	ax, ay := vp.ToCell(d.Pos.Add(dir.Scale(vp.Scale * 1.5)))
	if ax == x && ay == y {
		ax += int(math.Round(dir.X))
	}
	s.SetCell(ax, ay, facingRunes[octant(d.Facing)], core.ColorGray)

	if d.Attacking {
		glyph := slashRunes[d.ComboIndex%len(slashRunes)]
		for _, spread := range []float64{-0.6, 0, 0.6} {
			p := d.Pos.Add(core.FromAngle(d.Facing + spread).Scale(60))
			sx, sy := vp.ToCell(p)
			s.SetCell(sx, sy, glyph, core.ColorBrightYellow)
		}
	}
}

func drawHPBar(s *core.Screen, x, y, width int, frac float64) {
	filled := int(math.Round(frac * float64(width)))
	for i := range width {
		if i < filled {
			s.SetCell(x+i, y, '▀', core.ColorBrightRed)
		} else {
			s.SetCell(x+i, y, '▀', core.ColorDarkGray)
		}
	}
}

// drawPauseBox frames a PAUSED banner in the middle of the world view.
func drawPauseBox(s *core.Screen) {
	w := core.Clamp(s.Width()/3, 12, s.Width())
	r := core.NewRect((s.Width()-w)/2, s.Height()/2-1, w, 3)
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetCell(x, r.Y+1, ' ', core.ColorDefault)
	}
	s.DrawBox(r, core.ColorBrightYellow)
	s.DrawTextCentered(r.Y+1, "PAUSED", core.ColorBrightYellow)
}
