// Package sim is the per-frame simulation of a side-scrolling platformer:
// player physics, projectiles, enemy lifecycles and win/lose evaluation.
//
// Nothing in this package blocks, reads a clock or performs I/O. Every motion
// is scaled by the caller-supplied elapsed time so a step is a deterministic
// function of (state, dt, input).
package sim

const (
	// TickRate converts per-tick tuning values into per-second motion.
	TickRate = 60.0

	// ShootCooldown is the minimum session time between accepted shots.
	ShootCooldown = 0.2

	// clockSlack absorbs rounding in the summed dt clock so a shot exactly
	// ShootCooldown later is accepted.
	clockSlack = 1e-9

	// ExplodeDuration is how long a hit enemy stays in the exploding state.
	ExplodeDuration = 0.3

	GravestoneWidth  = 48.0
	GravestoneHeight = 64.0

	ProjectileWidth  = 20.0
	ProjectileHeight = 10.0
	ProjectileSpeed  = 10.0
	ProjectileColor  = "orange"

	// KillScore is awarded when a projectile hits a patrolling enemy.
	KillScore = 10

	gunInset = 10.0 // muzzle distance from the leading edge
	gunDrop  = 38.0 // muzzle height above the player's vertical centre
)

// Input is the debounced logical input for one step.
type Input struct {
	Left    bool `json:"left" msgpack:"l"`
	Right   bool `json:"right" msgpack:"r"`
	Jump    bool `json:"jump" msgpack:"j"`
	Shoot   bool `json:"shoot" msgpack:"s"` // edge-triggered by the input collaborator
	Restart bool `json:"restart" msgpack:"x"`
}
