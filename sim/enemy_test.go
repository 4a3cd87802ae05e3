package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gscroll/geom"
)

func patroller() Enemy {
	return Enemy{
		Box:    geom.Rect{X: 0, Y: 530, W: 120, H: 140},
		StartX: 0,
		EndX:   60,
		Speed:  0.5, // 30 units per second at dt=1
		Dir:    1,
		State:  Patrolling,
		Visual: EnemyNormal,
	}
}

func TestPatrolReflectsAtBounds(t *testing.T) {
	e := patroller()

	want := []struct {
		x   float64
		dir int
	}{
		{30, 1},
		{60, -1},
		{30, -1},
		{0, 1},
		{30, 1},
	}
	for i, w := range want {
		e.Update(1, 670)
		assert.InDelta(t, w.x, e.Box.X, 1e-9, "step %d", i)
		assert.Equal(t, w.dir, e.Dir, "step %d", i)
	}
}

func TestPatrolClampsOvershoot(t *testing.T) {
	e := patroller()
	e.Box.X = 50

	e.Update(1, 670)

	assert.Equal(t, 60.0, e.Box.X)
	assert.Equal(t, -1, e.Dir)
}

func TestHitOnlyWhilePatrolling(t *testing.T) {
	e := patroller()

	assert.True(t, e.Hit())
	assert.Equal(t, Exploding, e.State)
	assert.Equal(t, EnemyExploding, e.Visual)
	assert.Equal(t, ExplodeDuration, e.Timer)
	assert.False(t, e.Harmful())

	assert.False(t, e.Hit(), "cannot be hit while exploding")
	assert.Equal(t, ExplodeDuration, e.Timer)
}

func TestExplosionCountsDownToDead(t *testing.T) {
	e := patroller()
	e.Box.X = 30
	e.Hit()

	assert.False(t, e.Update(0.1, 670))
	assert.Equal(t, Exploding, e.State)
	assert.Equal(t, 30.0, e.Box.X, "frozen while exploding")

	assert.True(t, e.Update(0.25, 670))
	assert.Equal(t, Dead, e.State)
	assert.Equal(t, EnemyGravestone, e.Visual)
	assert.Equal(t, 0.0, e.Speed)
	assert.Equal(t, geom.Rect{X: 66, Y: 606, W: GravestoneWidth, H: GravestoneHeight}, e.Box)

	assert.False(t, e.Update(0.1, 670), "dies only once")
}

func TestDeadEnemyIsFrozen(t *testing.T) {
	e := patroller()
	e.Hit()
	e.Update(1, 670)
	dead := e

	for i := 0; i < 100; i++ {
		e.Update(frame, 670)
	}
	assert.Equal(t, dead, e)
	assert.False(t, e.Hit())
	assert.False(t, e.Harmful())
}

func TestEnemyStateString(t *testing.T) {
	assert.Equal(t, "patrolling", Patrolling.String())
	assert.Equal(t, "exploding", Exploding.String())
	assert.Equal(t, "dead", Dead.String())
}
