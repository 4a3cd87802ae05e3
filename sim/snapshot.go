package sim

import "gscroll/geom"

// Snapshot is a read-only copy of everything a renderer needs. It shares no
// memory with the State it was taken from.
type Snapshot struct {
	Tick        uint64           `json:"tick"`
	CameraX     float64          `json:"cameraX"`
	Viewport    geom.Rect        `json:"viewport"`
	GroundY     float64          `json:"groundY"`
	Player      PlayerView       `json:"player"`
	Projectiles []ProjectileView `json:"projectiles"`
	Enemies     []EnemyView      `json:"enemies"`
	Platforms   []geom.Rect      `json:"platforms"`
	Finish      geom.Rect        `json:"finish"`
	Won         bool             `json:"won"`
	Lost        bool             `json:"lost"`
	Score       int              `json:"score"`
}

type PlayerView struct {
	Box    geom.Rect    `json:"box"`
	Facing int          `json:"facing"`
	Visual PlayerVisual `json:"visual"`
}

type ProjectileView struct {
	Box   geom.Rect `json:"box"`
	Color string    `json:"color"`
}

type EnemyView struct {
	Box    geom.Rect   `json:"box"`
	State  string      `json:"state"`
	Visual EnemyVisual `json:"visual"`
}

func (s *State) Snapshot() Snapshot {
	world := s.Level.World
	snap := Snapshot{
		Tick:    s.Tick,
		CameraX: s.CameraX,
		Viewport: geom.Rect{
			X: s.CameraX,
			W: world.ViewportWidth,
			H: world.ViewportHeight,
		},
		GroundY: world.GroundY(),
		Player: PlayerView{
			Box:    s.Player.Box,
			Facing: s.Player.Facing,
			Visual: s.Player.Visual,
		},
		Projectiles: make([]ProjectileView, 0, len(s.Projectiles)),
		Enemies:     make([]EnemyView, 0, len(s.Enemies)),
		Platforms:   append([]geom.Rect(nil), s.Level.Platforms...),
		Finish:      s.Level.Finish,
		Won:         s.Won,
		Lost:        s.Lost,
		Score:       s.Score,
	}
	for _, p := range s.Projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{Box: p.Box, Color: p.Color})
	}
	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{Box: e.Box, State: e.State.String(), Visual: e.Visual})
	}
	return snap
}
