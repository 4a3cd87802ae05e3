// Package level loads static level-authoring data: platforms, enemy spawns,
// the finish marker and the player's tuning.
package level

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gscroll/geom"
)

//go:embed default.yaml
var defaultLevel []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid level")

type World struct {
	ViewportWidth   float64 `yaml:"viewport_width"`
	ViewportHeight  float64 `yaml:"viewport_height"`
	GroundThickness float64 `yaml:"ground_thickness"`
}

// GroundY is the world y of the ground plane's top edge.
func (w World) GroundY() float64 {
	return w.ViewportHeight - w.GroundThickness
}

// PlayerSpec describes the player's starting box and movement tuning.
// Speed, JumpForce and Gravity are expressed per 1/60 s tick.
type PlayerSpec struct {
	Start     geom.Rect `yaml:"start"`
	Speed     float64   `yaml:"speed"`
	JumpForce float64   `yaml:"jump_force"`
	Gravity   float64   `yaml:"gravity"`
}

type EnemySpawn struct {
	Box    geom.Rect `yaml:"box"`
	StartX float64   `yaml:"start_x"`
	EndX   float64   `yaml:"end_x"`
	Speed  float64   `yaml:"speed"`
}

type Level struct {
	Name      string       `yaml:"name"`
	World     World        `yaml:"world"`
	Player    PlayerSpec   `yaml:"player"`
	Platforms []geom.Rect  `yaml:"platforms"`
	Enemies   []EnemySpawn `yaml:"enemies"`
	Finish    geom.Rect    `yaml:"finish"`
}

func base() Level {
	return Level{
		World: World{
			ViewportWidth:   1280,
			ViewportHeight:  720,
			GroundThickness: 50,
		},
		Player: PlayerSpec{
			Start:     geom.Rect{X: 100, Y: 479, W: 205, H: 191},
			Speed:     6,
			JumpForce: 19,
			Gravity:   0.7,
		},
	}
}

// Default returns the level compiled into the binary.
func Default() *Level {
	lvl, err := Parse(defaultLevel)
	if err != nil {
		panic(fmt.Sprintf("embedded level: %v", err))
	}
	return lvl
}

// Load reads and validates a YAML level file.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lvl, nil
}

// Parse decodes YAML level data. World and player settings that the document
// leaves out keep their defaults.
func Parse(data []byte) (*Level, error) {
	lvl := base()
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate checks the preconditions the simulation assumes. An empty platform
// list is allowed; the player then only ever lands on the ground plane.
func (l *Level) Validate() error {
	if l.World.ViewportWidth <= 0 || l.World.ViewportHeight <= 0 {
		return fmt.Errorf("%w: viewport %gx%g", ErrInvalid, l.World.ViewportWidth, l.World.ViewportHeight)
	}
	if l.World.GroundThickness < 0 || l.World.GroundThickness > l.World.ViewportHeight {
		return fmt.Errorf("%w: ground thickness %g", ErrInvalid, l.World.GroundThickness)
	}

	p := l.Player
	if p.Start.W <= 0 || p.Start.H <= 0 {
		return fmt.Errorf("%w: player size %gx%g", ErrInvalid, p.Start.W, p.Start.H)
	}
	if p.Speed < 0 || p.JumpForce < 0 || p.Gravity < 0 {
		return fmt.Errorf("%w: negative player tuning", ErrInvalid)
	}

	for i, r := range l.Platforms {
		if r.W < 0 || r.H < 0 {
			return fmt.Errorf("%w: platform %d size %gx%g", ErrInvalid, i, r.W, r.H)
		}
	}
	for i, e := range l.Enemies {
		if e.Box.W <= 0 || e.Box.H <= 0 {
			return fmt.Errorf("%w: enemy %d size %gx%g", ErrInvalid, i, e.Box.W, e.Box.H)
		}
		if e.StartX > e.EndX {
			return fmt.Errorf("%w: enemy %d patrol start %g after end %g", ErrInvalid, i, e.StartX, e.EndX)
		}
		if e.Speed < 0 {
			return fmt.Errorf("%w: enemy %d speed %g", ErrInvalid, i, e.Speed)
		}
	}
	if l.Finish.W < 0 || l.Finish.H < 0 {
		return fmt.Errorf("%w: finish size %gx%g", ErrInvalid, l.Finish.W, l.Finish.H)
	}
	return nil
}
