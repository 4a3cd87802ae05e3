package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"gscroll/sim"
)

// Terminals report key presses and repeats but never releases, so a direction
// counts as held until keyTimeout passes without another event for it.
const keyTimeout = 150 * time.Millisecond

type action int

const (
	actLeft action = iota
	actRight
	actJump
)

// controls debounces raw key events into one sim.Input per frame.
type controls struct {
	held    map[action]time.Time
	shoot   bool // latched until the next frame consumes it
	restart bool
}

func newControls() *controls {
	return &controls{held: make(map[action]time.Time)}
}

// handleKey records a key event and reports whether it asks to quit.
func (c *controls) handleKey(ev *tcell.EventKey, now time.Time) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		c.held[actLeft] = now
	case tcell.KeyRight:
		c.held[actRight] = now
	case tcell.KeyUp:
		c.held[actJump] = now
	case tcell.KeyEnter:
		c.restart = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			c.held[actLeft] = now
		case 'd', 'D':
			c.held[actRight] = now
		case 'w', 'W':
			c.held[actJump] = now
		case ' ':
			c.shoot = true
		case 'r', 'R':
			c.restart = true
		case 'q', 'Q':
			return true
		}
	}
	return false
}

func (c *controls) active(a action, now time.Time) bool {
	last, ok := c.held[a]
	return ok && now.Sub(last) < keyTimeout
}

// Input builds the snapshot for this frame and clears the one-shot requests.
func (c *controls) Input(now time.Time) sim.Input {
	in := sim.Input{
		Left:    c.active(actLeft, now),
		Right:   c.active(actRight, now),
		Jump:    c.active(actJump, now),
		Shoot:   c.shoot,
		Restart: c.restart,
	}
	c.shoot = false
	c.restart = false
	return in
}

// reset forgets held keys, used after a restart so a stale press does not
// carry into the new session.
func (c *controls) reset() {
	c.held = make(map[action]time.Time)
	c.shoot = false
	c.restart = false
}
