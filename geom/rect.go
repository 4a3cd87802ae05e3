// Package geom holds the axis-aligned rectangle tests shared by every entity.
package geom

// LandingEpsilon is how far a box bottom may already sit below a platform top
// and still be caught by LandsOn.
const LandingEpsilon = 10.0

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether a and b intersect. Edges that only touch do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// LandsOn is the one-sided "falling onto the top surface" test. box is the
// mover before this step's vertical displacement and velY that displacement.
// Side and underside contact are never reported.
func LandsOn(box Rect, velY float64, platform Rect) bool {
	if box.X >= platform.Right() || box.Right() <= platform.X {
		return false
	}
	bottom := box.Bottom()
	return bottom <= platform.Y+LandingEpsilon && bottom+velY >= platform.Y
}
