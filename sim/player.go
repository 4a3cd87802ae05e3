package sim

import (
	"gscroll/geom"
	"gscroll/level"
)

type PlayerVisual string

const (
	PlayerIdle PlayerVisual = "idle"
	PlayerWalk PlayerVisual = "walk"
	PlayerJump PlayerVisual = "jump"
)

type Player struct {
	Box       geom.Rect
	VelY      float64
	Speed     float64
	JumpForce float64
	Gravity   float64
	Grounded  bool
	Walking   bool
	Facing    int // -1 for left, 1 for right
	Visual    PlayerVisual
}

func newPlayer(spec level.PlayerSpec) Player {
	return Player{
		Box:       spec.Start,
		Speed:     spec.Speed,
		JumpForce: spec.JumpForce,
		Gravity:   spec.Gravity,
		Facing:    1,
		Visual:    PlayerIdle,
	}
}

// Move applies horizontal input. Holding both directions cancels out but
// still counts as walking, and right wins the facing.
func (p *Player) Move(in Input, dt float64) {
	step := p.Speed * dt * TickRate

	p.Walking = false
	if in.Left {
		p.Box.X -= step
		p.Facing = -1
		p.Walking = true
	}
	if in.Right {
		p.Box.X += step
		p.Facing = 1
		p.Walking = true
	}

	// No left boundary beyond the world origin
	if p.Box.X < 0 {
		p.Box.X = 0
	}
}

// Jump starts a jump when requested while grounded. Holding the key re-jumps
// on every step the player is grounded again. The landing re-test uses the
// raw take-off velocity, so a zero dt step still leaves the ground.
func (p *Player) Jump(in Input, platforms []geom.Rect) bool {
	if !in.Jump || !p.Grounded {
		return false
	}
	p.VelY = -p.JumpForce
	p.Grounded = false
	p.land(p.Box, platforms, p.VelY)
	return true
}

// Fall integrates gravity and resolves landing on platforms, then on the
// ground plane, which takes priority.
func (p *Player) Fall(platforms []geom.Rect, groundY, dt float64) {
	p.VelY += p.Gravity * dt * TickRate
	dy := p.VelY * dt * TickRate

	// A take-off that has not moved yet stays airborne.
	if p.VelY < 0 && dy == 0 {
		p.Grounded = false
		return
	}

	prev := p.Box
	p.Box.Y += dy

	p.Grounded = false
	p.land(prev, platforms, dy)

	if p.Box.Bottom() >= groundY {
		p.snap(groundY)
	}
}

// land tests prev, the box before a vertical displacement of dy, against
// every platform top.
func (p *Player) land(prev geom.Rect, platforms []geom.Rect, dy float64) {
	for _, platform := range platforms {
		if geom.LandsOn(prev, dy, platform) {
			p.snap(platform.Y)
		}
	}
}

func (p *Player) snap(top float64) {
	p.Box.Y = top - p.Box.H
	p.VelY = 0
	p.Grounded = true
}

func (p *Player) SelectVisual() {
	switch {
	case !p.Grounded:
		p.Visual = PlayerJump
	case p.Walking:
		p.Visual = PlayerWalk
	default:
		p.Visual = PlayerIdle
	}
}
