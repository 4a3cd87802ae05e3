// Package replay records the input stream of a session and plays it back.
// Because a step is a pure function of (state, dt, input), replaying the
// frames against a fresh session reproduces it exactly.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"gscroll/sim"
)

const Version = 1

var (
	ErrVersion       = errors.New("unsupported replay version")
	ErrLevelMismatch = errors.New("replay recorded on a different level")
)

type Frame struct {
	Dt    float64   `msgpack:"dt"`
	Input sim.Input `msgpack:"in"`
}

type Recording struct {
	Version int     `msgpack:"v"`
	Level   string  `msgpack:"level"`
	Frames  []Frame `msgpack:"frames"`
}

type Recorder struct {
	rec Recording
}

func NewRecorder(levelName string) *Recorder {
	return &Recorder{rec: Recording{Version: Version, Level: levelName}}
}

func (r *Recorder) Record(dt float64, in sim.Input) {
	r.rec.Frames = append(r.rec.Frames, Frame{Dt: dt, Input: in})
}

func (r *Recorder) Len() int { return len(r.rec.Frames) }

func (r *Recorder) Recording() *Recording { return &r.rec }

func Save(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}
	return nil
}

func Load(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	if rec.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	return &rec, nil
}

func SaveFile(path string, rec *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create replay: %w", err)
	}
	if err := Save(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func LoadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Play re-drives s with every recorded frame. onEvent, if not nil, sees each
// event in order.
func Play(s *sim.State, rec *Recording, onEvent func(tick int, ev sim.Event)) error {
	if rec.Level != s.Level.Name {
		return fmt.Errorf("%w: recorded %q, playing %q", ErrLevelMismatch, rec.Level, s.Level.Name)
	}
	for i, f := range rec.Frames {
		events := s.Step(f.Dt, f.Input)
		if onEvent == nil {
			continue
		}
		for _, ev := range events {
			onEvent(i, ev)
		}
	}
	return nil
}
