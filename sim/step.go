package sim

import (
	"math"

	"gscroll/geom"
)

// Step advances the session by dt seconds. The returned events are only valid
// until the next call.
//
// Phases run in a fixed order: camera, shooting, player movement, jump,
// gravity and landing, visual tag, projectiles, projectile hits, enemies,
// finish, enemy touch. Reaching the finish and touching an enemy in the same
// step therefore counts as a win.
func (s *State) Step(dt float64, in Input) []Event {
	s.events = s.events[:0]

	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		dt = 0
	}

	if s.Terminal() {
		if in.Restart {
			s.Reset()
			s.emit(EventRestart, -1)
		}
		return s.events
	}

	s.CameraX = math.Max(0, s.Player.Box.X-s.ViewportWidth()/2)

	if in.Shoot && s.CanShoot() {
		s.Projectiles = append(s.Projectiles, Spawn(&s.Player))
		s.lastShot = s.Clock
		s.emit(EventShot, -1)
	}

	platforms := s.Platforms()
	s.Player.Move(in, dt)
	s.Player.Jump(in, platforms)
	s.Player.Fall(platforms, s.GroundY(), dt)
	s.Player.SelectVisual()

	s.Projectiles = stepProjectiles(s.Projectiles, dt, s.CameraX, s.ViewportWidth())
	s.resolveHits()

	for i := range s.Enemies {
		if s.Enemies[i].Update(dt, s.GroundY()) {
			s.emit(EventEnemyDead, i)
		}
	}

	if geom.Overlaps(s.Player.Box, s.Finish()) {
		s.Won = true
		s.emit(EventWon, -1)
	} else if s.touchingEnemy() {
		s.Lost = true
		s.emit(EventLost, -1)
	}

	s.Clock += dt
	s.Tick++
	return s.events
}

// resolveHits removes every projectile that overlaps a patrolling enemy. A
// projectile hits at most one enemy.
func (s *State) resolveHits() {
	active := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		hit := false
		for i := range s.Enemies {
			e := &s.Enemies[i]
			if !e.Harmful() || !geom.Overlaps(p.Box, e.Box) {
				continue
			}
			e.Hit()
			s.Score += KillScore
			s.emit(EventEnemyHit, i)
			hit = true
			break
		}
		if !hit {
			active = append(active, p)
		}
	}
	s.Projectiles = active
}

func (s *State) touchingEnemy() bool {
	for i := range s.Enemies {
		if s.Enemies[i].Harmful() && geom.Overlaps(s.Player.Box, s.Enemies[i].Box) {
			return true
		}
	}
	return false
}

func (s *State) emit(kind EventKind, enemy int) {
	s.events = append(s.events, Event{Kind: kind, Enemy: enemy})
}
