package rectray

// Anchor is a normalized point on a rectangle, with both components in
// [-0.5, 0.5]. (0, 0) is the center; since the coordinate system is
// Y-down, (-0.5, -0.5) is the top-left corner and (0.5, 0.5) the
// bottom-right.
//
// An Anchor names both "which point of me" (Transform2D.Anchor) and
// "which point of my parent I attach to" (Transform2D.ParentAnchor).
// The zero value is the Inherit sentinel: it resolves to another anchor
// through Or. Use the named presets or AnchorAt for concrete anchors.
type Anchor struct {
	X, Y float64

	set bool
}

// Named anchor presets (Y-down screen convention).
var (
	AnchorInherit      = Anchor{}
	AnchorTopLeft      = Anchor{-0.5, -0.5, true}
	AnchorTopCenter    = Anchor{0, -0.5, true}
	AnchorTopRight     = Anchor{0.5, -0.5, true}
	AnchorCenterLeft   = Anchor{-0.5, 0, true}
	AnchorCenter       = Anchor{0, 0, true}
	AnchorCenterRight  = Anchor{0.5, 0, true}
	AnchorBottomLeft   = Anchor{-0.5, 0.5, true}
	AnchorBottomCenter = Anchor{0, 0.5, true}
	AnchorBottomRight  = Anchor{0.5, 0.5, true}
)

// AnchorAt returns a concrete anchor at the given fractions, each in
// [-0.5, 0.5]. Values outside that range are permitted and place the
// point outside the rectangle.
func AnchorAt(x, y float64) Anchor {
	return Anchor{x, y, true}
}

// IsInherit reports whether a is the Inherit sentinel.
func (a Anchor) IsInherit() bool {
	return !a.set
}

// Or returns a, or fallback if a is Inherit.
func (a Anchor) Or(fallback Anchor) Anchor {
	if a.set {
		return a
	}
	return fallback
}

// Vec returns the anchor's offset from the rectangle center for a
// rectangle of the given full size.
func (a Anchor) Vec(size Vec2) Vec2 {
	return Vec2{a.X * size.X, a.Y * size.Y}
}

// Fraction returns the raw normalized components.
func (a Anchor) Fraction() Vec2 {
	return Vec2{a.X, a.Y}
}
