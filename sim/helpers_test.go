package sim

import (
	"gscroll/geom"
	"gscroll/level"
)

const frame = 1.0 / 60.0

// testLevel is a flat strip of ground with one ledge, one patrolling enemy
// far to the right and a finish marker out of reach.
func testLevel() *level.Level {
	return &level.Level{
		Name: "test",
		World: level.World{
			ViewportWidth:   1280,
			ViewportHeight:  720,
			GroundThickness: 50,
		},
		Player: level.PlayerSpec{
			Start:     geom.Rect{X: 100, Y: 479, W: 205, H: 191},
			Speed:     6,
			JumpForce: 19,
			Gravity:   0.7,
		},
		Platforms: []geom.Rect{
			{X: 0, Y: 670, W: 10000, H: 50},
			{X: 1000, Y: 400, W: 300, H: 20},
		},
		Enemies: []level.EnemySpawn{
			{Box: geom.Rect{X: 2000, Y: 530, W: 120, H: 140}, StartX: 1900, EndX: 2200, Speed: 2},
		},
		Finish: geom.Rect{X: 5000, Y: 470, W: 80, H: 200},
	}
}

// groundedState returns a session whose player has settled on the ground.
func groundedState() *State {
	s := New(testLevel())
	s.Step(0, Input{})
	return s
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
