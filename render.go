package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"gscroll/geom"
	"gscroll/sim"
)

var (
	darkGray = tcell.Color(240) // Dark gray in 256-color palette
	cyan     = tcell.Color(51)  // Cyan in 256-color palette
)

// renderer paints snapshots onto a terminal. The viewport is scaled to fill
// the screen, so one cell covers several world units on each axis.
type renderer struct {
	screen tcell.Screen
	width  int
	height int
	sx, sy float64 // world units per cell
	camera float64
}

func newRenderer(screen tcell.Screen) *renderer {
	return &renderer{screen: screen}
}

func (r *renderer) draw(snap sim.Snapshot) {
	r.width, r.height = r.screen.Size()
	if r.width == 0 || r.height == 0 {
		return
	}
	r.sx = snap.Viewport.W / float64(r.width)
	r.sy = snap.Viewport.H / float64(r.height)
	r.camera = snap.CameraX

	r.screen.Clear()

	r.drawGround(snap.GroundY)
	r.drawPlatforms(snap.Platforms)
	r.drawFinish(snap.Finish)
	for i := range snap.Enemies {
		r.drawEnemy(&snap.Enemies[i])
	}
	for i := range snap.Projectiles {
		r.drawProjectile(&snap.Projectiles[i], snap.Tick)
	}
	r.drawPlayer(&snap.Player)
	r.drawScore(snap.Score)

	switch {
	case snap.Won:
		r.drawBanner("YOU WIN", tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	case snap.Lost:
		r.drawBanner("GAME OVER", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}

	r.screen.Show()
}

// cells maps a world rectangle to the half-open cell range it covers. Every
// visible rectangle covers at least one cell.
func (r *renderer) cells(box geom.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor((box.X - r.camera) / r.sx))
	x1 = int(math.Ceil((box.Right() - r.camera) / r.sx))
	y0 = int(math.Floor(box.Y / r.sy))
	y1 = int(math.Ceil(box.Bottom() / r.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func (r *renderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *renderer) fill(box geom.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := r.cells(box)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.set(x, y, ch, style)
		}
	}
}

func (r *renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.set(x+i, y, ch, style)
	}
}

func (r *renderer) drawGround(groundY float64) {
	// Use horizontal line character for ground (less tall than full block)
	style := tcell.StyleDefault.Foreground(darkGray)
	y := int(math.Floor(groundY / r.sy))
	for x := 0; x < r.width; x++ {
		r.set(x, y, '━', style)
		for below := y + 1; below < r.height; below++ {
			r.set(x, below, '░', style)
		}
	}
}

func (r *renderer) drawPlatforms(platforms []geom.Rect) {
	style := tcell.StyleDefault.Foreground(cyan)
	for _, p := range platforms {
		x0, y0, x1, _ := r.cells(p)
		for x := x0; x < x1; x++ {
			r.set(x, y0, '━', style)
		}
	}
}

func (r *renderer) drawFinish(finish geom.Rect) {
	if finish.W == 0 || finish.H == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	x0, y0, _, y1 := r.cells(finish)
	for y := y0; y < y1; y++ {
		r.set(x0, y, '┃', style)
	}
	r.set(x0+1, y0, '▶', style)
}

// drawPlayer paints the body shaded by visual state, with the headband and
// face on the side the player is facing.
func (r *renderer) drawPlayer(p *sim.PlayerView) {
	style := tcell.StyleDefault.Foreground(tcell.ColorBlue)

	body := '▓'
	switch p.Visual {
	case sim.PlayerWalk:
		body = '▒'
	case sim.PlayerJump:
		body = '░'
	}
	r.fill(p.Box, body, style)

	x0, y0, x1, _ := r.cells(p.Box)
	if p.Facing >= 0 {
		r.set(x1-2, y0, '0', style)
		r.set(x0, y0, '~', style)
	} else {
		r.set(x0+1, y0, '0', style)
		r.set(x1-1, y0, '~', style)
	}
}

func (r *renderer) drawEnemy(e *sim.EnemyView) {
	switch e.Visual {
	case sim.EnemyExploding:
		r.fill(e.Box, '*', tcell.StyleDefault.Foreground(tcell.ColorYellow))
	case sim.EnemyGravestone:
		style := tcell.StyleDefault.Foreground(darkGray)
		r.fill(e.Box, '▒', style)
		x0, y0, x1, _ := r.cells(e.Box)
		r.set((x0+x1)/2, y0, '┼', style)
	default:
		style := tcell.StyleDefault.Foreground(tcell.ColorLightGray)
		r.fill(e.Box, '▒', style)
		x0, y0, x1, _ := r.cells(e.Box)
		r.set((x0+x1)/2, y0, 'O', style)
	}
}

func (r *renderer) drawProjectile(p *sim.ProjectileView, tick uint64) {
	style := tcell.StyleDefault.Foreground(tcell.ColorOrange)
	// Animate between '-' and '+'
	ch := '-'
	if tick%2 == 1 {
		ch = '+'
	}
	r.fill(p.Box, ch, style)
}

func (r *renderer) drawScore(score int) {
	r.text(0, 0, fmt.Sprintf("Score: %d", score), tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// drawBanner writes the end-of-game text near the top, leaving the scene visible.
func (r *renderer) drawBanner(title string, style tcell.Style) {
	startY := 2
	r.text((r.width-len(title))/2, startY, title, style)

	instructions := []string{
		"Press ENTER to restart",
		"Press ESC or Q to exit",
	}
	plain := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range instructions {
		r.text((r.width-len(line))/2, startY+2+i, line, plain)
	}
}
