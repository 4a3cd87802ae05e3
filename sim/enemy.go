package sim

import (
	"gscroll/geom"
	"gscroll/level"
)

type EnemyState int

const (
	Patrolling EnemyState = iota
	Exploding
	Dead
)

func (s EnemyState) String() string {
	switch s {
	case Patrolling:
		return "patrolling"
	case Exploding:
		return "exploding"
	case Dead:
		return "dead"
	}
	return "unknown"
}

type EnemyVisual string

const (
	EnemyNormal     EnemyVisual = "normal"
	EnemyExploding  EnemyVisual = "exploding"
	EnemyGravestone EnemyVisual = "gravestone"
)

// Enemy patrols between StartX and EndX until shot, explodes briefly and
// leaves a gravestone behind.
type Enemy struct {
	Box    geom.Rect
	StartX float64
	EndX   float64
	Speed  float64
	Dir    int // -1 for left, 1 for right
	State  EnemyState
	Timer  float64 // explosion countdown in seconds
	Visual EnemyVisual
}

func newEnemy(spawn level.EnemySpawn) Enemy {
	return Enemy{
		Box:    spawn.Box,
		StartX: spawn.StartX,
		EndX:   spawn.EndX,
		Speed:  spawn.Speed,
		Dir:    1,
		State:  Patrolling,
		Visual: EnemyNormal,
	}
}

func spawnEnemies(spawns []level.EnemySpawn) []Enemy {
	enemies := make([]Enemy, 0, len(spawns))
	for _, spawn := range spawns {
		enemies = append(enemies, newEnemy(spawn))
	}
	return enemies
}

// Harmful reports whether the enemy can be shot or can touch the player.
func (e *Enemy) Harmful() bool {
	return e.State == Patrolling
}

// Hit starts the explosion. Only a patrolling enemy registers a hit.
func (e *Enemy) Hit() bool {
	if e.State != Patrolling {
		return false
	}
	e.State = Exploding
	e.Timer = ExplodeDuration
	e.Visual = EnemyExploding
	return true
}

// Update advances the enemy by dt and reports whether it died this step.
func (e *Enemy) Update(dt, groundY float64) bool {
	switch e.State {
	case Patrolling:
		e.Box.X += e.Speed * float64(e.Dir) * dt * TickRate
		if e.Box.X <= e.StartX {
			e.Box.X = e.StartX
			e.Dir = 1
		} else if e.Box.X >= e.EndX {
			e.Box.X = e.EndX
			e.Dir = -1
		}
	case Exploding:
		e.Timer -= dt
		if e.Timer <= 0 {
			e.die(groundY)
			return true
		}
	}
	return false
}

// die leaves a gravestone centred where the enemy stood, resting on the ground.
func (e *Enemy) die(groundY float64) {
	cx := e.Box.X + e.Box.W/2
	e.State = Dead
	e.Speed = 0
	e.Box = geom.Rect{
		X: cx - GravestoneWidth/2,
		Y: groundY - GravestoneHeight,
		W: GravestoneWidth,
		H: GravestoneHeight,
	}
	e.Visual = EnemyGravestone
}
