package sim

import (
	"gscroll/geom"
	"gscroll/level"
)

// State is one play session. It is owned by a single goroutine; the renderer
// and other observers read it through Snapshot.
type State struct {
	Level *level.Level

	Player      Player
	Projectiles []Projectile
	Enemies     []Enemy

	CameraX float64
	Won     bool
	Lost    bool
	Score   int

	// Tick counts steps and Clock sums their dt since the last reset.
	Tick  uint64
	Clock float64

	lastShot float64
	events   []Event
}

func New(lvl *level.Level) *State {
	s := &State{Level: lvl}
	s.Reset()
	return s
}

// Reset rebuilds the session from the level data. It is the only way out of
// a won or lost state.
func (s *State) Reset() {
	s.Player = newPlayer(s.Level.Player)
	s.Projectiles = nil
	s.Enemies = spawnEnemies(s.Level.Enemies)
	s.CameraX = 0
	s.Won = false
	s.Lost = false
	s.Score = 0
	s.Tick = 0
	s.Clock = 0
	s.lastShot = -ShootCooldown
}

// Terminal reports whether the session has been won or lost.
func (s *State) Terminal() bool {
	return s.Won || s.Lost
}

func (s *State) Platforms() []geom.Rect { return s.Level.Platforms }
func (s *State) Finish() geom.Rect      { return s.Level.Finish }
func (s *State) GroundY() float64       { return s.Level.World.GroundY() }
func (s *State) ViewportWidth() float64 { return s.Level.World.ViewportWidth }

// CanShoot reports whether the shot cooldown has elapsed.
func (s *State) CanShoot() bool {
	return s.Clock-s.lastShot+clockSlack >= ShootCooldown
}
