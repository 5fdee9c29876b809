package sim

import (
	"github.com/vovakirdan/herald/internal/config"
	"github.com/vovakirdan/herald/internal/core"
)

// Player is the controlled hero.
type Player struct {
	Entity
	Facing float64

	Dashing      bool
	DashTimer    float64
	DashCooldown float64
	dashCharged  bool // Stamina already paid for the current dash

	AttackTimer float64
	ComboIndex  int // 0, 1, 2
	ComboWindow float64
}

func newPlayer(id EntityID, radius float64) *Player {
	return &Player{
		Entity: Entity{
			ID:     id,
			Kind:   KindPlayer,
			Radius: radius,
			Scale:  1,
			Sprite: "hero",
			Color:  core.ColorBrightCyan,
			Active: true,
		},
	}
}

// tickTimers runs the cooldowns. An expired combo window resets the chain.
func (p *Player) tickTimers(dt float64) {
	if p.DashCooldown > 0 {
		p.DashCooldown -= dt
	}
	if p.AttackTimer > 0 {
		p.AttackTimer -= dt
	}
	if p.ComboWindow > 0 {
		p.ComboWindow -= dt
	} else {
		p.ComboIndex = 0
	}
}

func (p *Player) startDash(dir core.Vec2, cooldown float64, cfg config.DashConfig) {
	p.Dashing = true
	p.dashCharged = false
	p.DashTimer = cfg.Duration
	p.DashCooldown = cooldown
	p.Vel = dir.Normalize().Scale(cfg.Speed)
}

// beginAttack advances the combo and returns the swing's reach.
func (p *Player) beginAttack(cooldown float64, cfg config.MeleeConfig) float64 {
	p.AttackTimer = cooldown
	p.ComboWindow = cfg.ComboWindow
	p.ComboIndex = (p.ComboIndex + 1) % 3
	return cfg.BaseReach + float64(p.ComboIndex)*cfg.ReachPerCombo
}

// updatePlayer runs movement, dash and attack for one frame.
func (s *Simulation) updatePlayer(dt float64, in core.Intents) {
	pl := s.player
	pl.tickTimers(dt)

	wantDash := in.Dash && s.stats.Stamina > s.cfg.Dash.StaminaThreshold
	switch {
	case pl.Dashing:
		pl.DashTimer -= dt
		if pl.DashTimer <= 0 {
			pl.Dashing = false
			pl.Vel = core.Vec2{}
		}
	case wantDash && pl.DashCooldown <= 0 && !in.Move.IsZero():
		pl.startDash(in.Move, s.stats.DashCooldown(), s.cfg.Dash)
	default:
		pl.Vel = in.Move.Scale(s.stats.MoveSpeed())
	}

	pl.Integrate(dt)

	if !in.Move.IsZero() {
		pl.Facing = in.Move.Angle()
	}
	pl.Rotation = pl.Facing

	if in.Attack && pl.AttackTimer <= 0 && !pl.Dashing {
		reach := pl.beginAttack(s.stats.AttackCooldown(), s.cfg.Melee)
		s.resolveMelee(reach)
	}
}

// updateDash leaves after-images and charges the dash cost once, inside the
// opening window of the dash.
func (s *Simulation) updateDash(dt float64) {
	pl := s.player
	if !pl.Dashing {
		s.afterImageTimer = 0
		return
	}

	s.afterImageTimer += dt
	if s.afterImageTimer > s.cfg.Dash.AfterImageInterval {
		s.spawnAfterImage(pl)
		s.afterImageTimer = 0
	}

	if !pl.dashCharged && pl.DashTimer > s.cfg.Dash.DrainWindow {
		pl.dashCharged = true
		s.stats.Stamina = max(0, s.stats.Stamina-s.cfg.Dash.StaminaCost)
		s.playCue(CueDash, 0.6)
	}
}
