package rectray

// HitboxShape selects the hit-test region within a node's rectangle.
type HitboxShape uint8

const (
	HitboxRect HitboxShape = iota
	HitboxEllipse
)

// Hitbox is the cursor hit-test region of a node, expressed as a shape
// scaled within the node's resolved rectangle. The zero value is a
// degenerate rectangle; use FullHitbox for "the whole rect".
type Hitbox struct {
	Shape HitboxShape
	// Scale shrinks or grows the region relative to the rect. (1, 1)
	// covers it exactly.
	Scale Vec2
}

// FullHitbox covers the node's whole rectangle.
func FullHitbox() Hitbox {
	return Hitbox{Shape: HitboxRect, Scale: Vec2{1, 1}}
}

// EllipseHitbox covers the ellipse inscribed in the node's rectangle.
func EllipseHitbox() Hitbox {
	return Hitbox{Shape: HitboxEllipse, Scale: Vec2{1, 1}}
}

// Contains reports whether the screen point hits the region within the
// given resolved rectangle.
func (h Hitbox) Contains(r RotatedRect, p Vec2) bool {
	l := r.Local(p)
	switch h.Shape {
	case HitboxRect:
		return l.X >= -0.5*h.Scale.X && l.X <= 0.5*h.Scale.X &&
			l.Y >= -0.5*h.Scale.Y && l.Y <= 0.5*h.Scale.Y
	case HitboxEllipse:
		if h.Scale.X == 0 || h.Scale.Y == 0 {
			return false
		}
		x := l.X / (0.5 * h.Scale.X)
		y := l.Y / (0.5 * h.Scale.Y)
		return x*x+y*y <= 1
	}
	panic("rectray: unknown HitboxShape")
}
