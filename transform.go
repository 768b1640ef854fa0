package rectray

// --- Transform ---

// Transform2D positions a node relative to its parent's rectangle. The
// node's Anchor is pinned to the parent's ParentAnchor, displaced by
// Offset; rotation and scale are applied around Center.
//
// Zero values mean: Anchor falls back to AnchorCenter, ParentAnchor
// falls back to Anchor, Center falls back to Anchor, and a zero Scale
// is normalized to (1, 1) by Spawn.
type Transform2D struct {
	// Anchor is the point of this node that is being positioned.
	Anchor Anchor
	// ParentAnchor is the point of the parent the node attaches to.
	// Inherit means "same as Anchor", which keeps a node's TopLeft on
	// its parent's TopLeft and so on.
	ParentAnchor Anchor
	// Center is the pivot for this node's own Rotation and Scale.
	// Inherit means "same as Anchor".
	Center Anchor

	// Offset displaces the anchor point, resolved against the parent's
	// size. It is applied in the parent's local frame, so it rotates
	// and scales with the parent.
	Offset Size2

	// Rotation in radians, clockwise on screen (Y-down), applied on
	// top of the parent's rotation.
	Rotation float64
	// Scale multiplies the parent's scale component-wise.
	Scale Vec2

	// Z offsets this subtree's depth relative to the parent. Depth
	// accumulates down the tree and orders both drawing and cursor
	// hit priority.
	Z float64
}

// IdentityTransform returns a Transform2D with unit scale and all
// anchors inheriting.
func IdentityTransform() Transform2D {
	return Transform2D{Scale: Vec2{1, 1}}
}

// At returns t with Offset set to the given pixel offset.
func (t Transform2D) At(x, y float64) Transform2D {
	t.Offset = Pixels(x, y)
	return t
}

func (t Transform2D) anchor() Anchor       { return t.Anchor.Or(AnchorCenter) }
func (t Transform2D) parentAnchor() Anchor { return t.ParentAnchor.Or(t.anchor()) }
func (t Transform2D) center() Anchor       { return t.Center.Or(t.anchor()) }

// --- Rotated rectangle ---

// RotatedRect is a node's fully resolved screen-space rectangle: an
// oriented box plus the accumulated scale and depth. It is the output
// of transform propagation and the input to hit testing and drawing.
type RotatedRect struct {
	// Center of the box in screen pixels.
	Center Vec2
	// HalfExtent is half the box size, with accumulated scale applied.
	HalfExtent Vec2
	// Rotation is the accumulated rotation in radians.
	Rotation float64
	// Scale is the accumulated scale.
	Scale Vec2
	// Z is the accumulated depth.
	Z float64
}

// Anchor returns the screen position of the given anchor on the box.
func (r RotatedRect) Anchor(a Anchor) Vec2 {
	local := a.Vec(r.HalfExtent.Scale(2))
	return r.Center.Add(local.Rotate(r.Rotation))
}

// Size returns the full box size (2 * HalfExtent).
func (r RotatedRect) Size() Vec2 {
	return r.HalfExtent.Scale(2)
}

// Local maps a screen point into the box's normalized frame, where the
// box spans [-0.5, 0.5] on both axes.
func (r RotatedRect) Local(p Vec2) Vec2 {
	d := p.Sub(r.Center).Rotate(-r.Rotation)
	size := r.Size()
	if size.X != 0 {
		d.X /= size.X
	}
	if size.Y != 0 {
		d.Y /= size.Y
	}
	return d
}

// Contains reports whether the screen point is inside the box.
func (r RotatedRect) Contains(p Vec2) bool {
	l := r.Local(p)
	return l.X >= -0.5 && l.X <= 0.5 && l.Y >= -0.5 && l.Y <= 0.5
}

// --- Resolution ---

// resolveRect computes a child rectangle from its parent's rectangle,
// its transform, and its resolved size in pixels. parentSize is the
// parent's unscaled size, the context for Offset resolution.
func resolveRect(parent RotatedRect, t Transform2D, dim Vec2, parentSize Vec2, em, rem float64) RotatedRect {
	base := parent.Anchor(t.parentAnchor())
	offset := t.Offset.AsPixels(parentSize, em, rem)
	return buildRect(parent, t, dim, base, offset)
}

// resolveRectAt is resolveRect with the anchor base point supplied by a
// layout: base is the parent's top-left corner and offset the layout's
// placement of the child's anchor, in the parent's unscaled frame.
func resolveRectAt(parent RotatedRect, t Transform2D, dim Vec2, offset Vec2) RotatedRect {
	base := parent.Anchor(AnchorTopLeft)
	return buildRect(parent, t, dim, base, offset)
}

func buildRect(parent RotatedRect, t Transform2D, dim Vec2, base, offset Vec2) RotatedRect {
	af := t.anchor()
	cf := t.center()

	// Pivot: the node's center-anchor point, placed in the parent's
	// frame so it inherits the parent's rotation and scale.
	local := offset.Add(cf.Vec(dim).Sub(af.Vec(dim)))
	pivot := base.Add(local.Mul(parent.Scale).Rotate(parent.Rotation))

	rot := parent.Rotation + t.Rotation
	scale := parent.Scale.Mul(t.Scale)

	// The box center relative to the pivot, under the node's own
	// rotation and the accumulated scale.
	centerOff := cf.Vec(dim).Scale(-1).Mul(scale).Rotate(rot)

	return RotatedRect{
		Center:     pivot.Add(centerOff),
		HalfExtent: dim.Mul(scale).Scale(0.5),
		Rotation:   rot,
		Scale:      scale,
		Z:          parent.Z + t.Z,
	}
}
