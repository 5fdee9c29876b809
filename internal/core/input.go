package core

// Deadzone is the movement magnitude below which input is treated as idle.
const Deadzone = 0.2

// Intents is the per-frame gameplay input snapshot the simulation reads.
// Move is pre-normalized (magnitude <= 1) and deadzone-filtered; the
// simulation does not care how it was derived.
type Intents struct {
	Move      Vec2
	Attack    bool
	Dash      bool
	Reanimate bool
}

// Sanitized returns a copy with Move clamped to unit length and zeroed
// inside the deadzone.
func (in Intents) Sanitized() Intents {
	out := in
	out.Move = in.Move.ClampLen(1)
	if out.Move.Len() < Deadzone {
		out.Move = Vec2{}
	}
	return out
}

// MoveFromAxes builds a normalized movement vector from digital axes,
// where each of dx and dy is -1, 0 or 1.
func MoveFromAxes(dx, dy int) Vec2 {
	return V(float64(dx), float64(dy)).Normalize()
}
