package sim

import "gscroll/geom"

type Projectile struct {
	Box   geom.Rect
	Speed float64
	Dir   int // -1 for left, 1 for right
	Color string
}

// Spawn creates a projectile at the shooter's muzzle, travelling the way the
// shooter faces.
func Spawn(shooter *Player) Projectile {
	x := shooter.Box.Right() - gunInset
	if shooter.Facing < 0 {
		x = shooter.Box.X + gunInset - ProjectileWidth
	}
	dir := 1
	if shooter.Facing < 0 {
		dir = -1
	}

	return Projectile{
		Box: geom.Rect{
			X: x,
			Y: shooter.Box.Y + shooter.Box.H/2 - gunDrop,
			W: ProjectileWidth,
			H: ProjectileHeight,
		},
		Speed: ProjectileSpeed,
		Dir:   dir,
		Color: ProjectileColor,
	}
}

// Offscreen reports whether the projectile lies entirely outside the visible
// window starting at cameraX.
func (p *Projectile) Offscreen(cameraX, viewportW float64) bool {
	return p.Box.Right() < cameraX || p.Box.X > cameraX+viewportW
}

// stepProjectiles advances every projectile and drops the ones that left the
// visible window, reusing the backing array.
func stepProjectiles(projectiles []Projectile, dt, cameraX, viewportW float64) []Projectile {
	active := projectiles[:0]
	for i := range projectiles {
		p := projectiles[i]
		p.Box.X += p.Speed * float64(p.Dir) * dt * TickRate
		if p.Offscreen(cameraX, viewportW) {
			continue
		}
		active = append(active, p)
	}
	return active
}
