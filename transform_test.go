package rectray

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func screenRect(w, h float64) RotatedRect {
	return RotatedRect{
		Center:     Vec2{w / 2, h / 2},
		HalfExtent: Vec2{w / 2, h / 2},
		Scale:      Vec2{1, 1},
	}
}

// --- RotatedRect ---

func TestRotatedRectAnchors(t *testing.T) {
	r := RotatedRect{Center: Vec2{100, 50}, HalfExtent: Vec2{40, 10}, Scale: Vec2{1, 1}}
	assertVec(t, "top-left", r.Anchor(AnchorTopLeft), Vec2{60, 40})
	assertVec(t, "bottom-right", r.Anchor(AnchorBottomRight), Vec2{140, 60})
	assertVec(t, "center", r.Anchor(AnchorCenter), Vec2{100, 50})
}

func TestRotatedRectAnchorRotated(t *testing.T) {
	// Rotated 90 degrees clockwise on screen: the unrotated right
	// edge points down.
	r := RotatedRect{Center: Vec2{0, 0}, HalfExtent: Vec2{10, 5}, Rotation: math.Pi / 2, Scale: Vec2{1, 1}}
	assertVec(t, "right", r.Anchor(AnchorCenterRight), Vec2{0, 10})
	assertVec(t, "bottom", r.Anchor(AnchorBottomCenter), Vec2{-5, 0})
}

func TestRotatedRectContains(t *testing.T) {
	r := RotatedRect{Center: Vec2{50, 50}, HalfExtent: Vec2{20, 10}, Scale: Vec2{1, 1}}
	if !r.Contains(Vec2{50, 50}) {
		t.Error("center should be inside")
	}
	if !r.Contains(Vec2{70, 60}) {
		t.Error("corner should be inside")
	}
	if r.Contains(Vec2{71, 50}) {
		t.Error("outside right edge should be outside")
	}
	// Rotate 90 degrees: the box now spans 20 tall, 40 wide becomes
	// 40 tall, 20 wide.
	r.Rotation = math.Pi / 2
	if !r.Contains(Vec2{50, 68}) {
		t.Error("point inside rotated box should be inside")
	}
	if r.Contains(Vec2{68, 50}) {
		t.Error("point outside rotated box should be outside")
	}
}

// --- resolveRect ---

func TestResolveRectDefaultsCenterOnCenter(t *testing.T) {
	parent := screenRect(200, 200)
	rect := resolveRect(parent, IdentityTransform(), Vec2{100, 40}, parent.Size(), 16, 16)
	assertVec(t, "center", rect.Center, Vec2{100, 100})
	assertVec(t, "half", rect.HalfExtent, Vec2{50, 20})
	assertNear(t, "rotation", rect.Rotation, 0)
}

func TestResolveRectAnchorToParentAnchor(t *testing.T) {
	parent := screenRect(200, 200)
	tr := IdentityTransform()
	tr.Anchor = AnchorTopLeft
	// ParentAnchor inherits Anchor: the child's top-left sits on the
	// parent's top-left.
	rect := resolveRect(parent, tr, Vec2{40, 40}, parent.Size(), 16, 16)
	assertVec(t, "top-left pinned", rect.Anchor(AnchorTopLeft), Vec2{0, 0})
	assertVec(t, "center", rect.Center, Vec2{20, 20})
}

func TestResolveRectCrossAnchor(t *testing.T) {
	parent := screenRect(200, 200)
	tr := IdentityTransform()
	tr.Anchor = AnchorTopCenter
	tr.ParentAnchor = AnchorBottomCenter
	// Hangs below the parent.
	rect := resolveRect(parent, tr, Vec2{60, 30}, parent.Size(), 16, 16)
	assertVec(t, "center", rect.Center, Vec2{100, 215})
}

func TestResolveRectOffsetUnits(t *testing.T) {
	parent := screenRect(200, 100)
	tr := IdentityTransform()
	tr.Anchor = AnchorTopLeft
	tr.Offset = NewSize2(Size{UnitPercent, 0.1}, Size{UnitEm, 1})
	rect := resolveRect(parent, tr, Vec2{10, 10}, parent.Size(), 20, 16)
	// 10% of 200 horizontally, one 20px em vertically.
	assertVec(t, "top-left", rect.Anchor(AnchorTopLeft), Vec2{20, 20})
}

func TestResolveRectScaleInherits(t *testing.T) {
	parent := screenRect(200, 200)
	parent.Scale = Vec2{2, 2}
	tr := IdentityTransform()
	tr.Scale = Vec2{1.5, 1}
	rect := resolveRect(parent, tr, Vec2{10, 10}, Vec2{100, 100}, 16, 16)
	assertVec(t, "scale", rect.Scale, Vec2{3, 2})
	assertVec(t, "half", rect.HalfExtent, Vec2{15, 10})
}

func TestResolveRectZAccumulates(t *testing.T) {
	parent := screenRect(100, 100)
	parent.Z = 2
	tr := IdentityTransform()
	tr.Z = 0.5
	rect := resolveRect(parent, tr, Vec2{10, 10}, parent.Size(), 16, 16)
	assertNear(t, "z", rect.Z, 2.5)
}

// TestResolveRectJointStaysFixed models an articulated chain link:
// the child's CenterLeft rides the parent's CenterRight and is also
// the rotation center, so spinning the child must not move the joint.
func TestResolveRectJointStaysFixed(t *testing.T) {
	parent := RotatedRect{Center: Vec2{100, 100}, HalfExtent: Vec2{50, 10}, Scale: Vec2{1, 1}}
	joint := parent.Anchor(AnchorCenterRight)

	for _, rot := range []float64{0, math.Pi / 6, math.Pi / 2, math.Pi, -math.Pi / 3} {
		tr := IdentityTransform()
		tr.Anchor = AnchorCenterLeft
		tr.ParentAnchor = AnchorCenterRight
		tr.Center = AnchorCenterLeft
		tr.Rotation = rot

		rect := resolveRect(parent, tr, Vec2{100, 20}, parent.Size(), 16, 16)
		assertVec(t, "joint", rect.Anchor(AnchorCenterLeft), joint)
		assertNear(t, "rotation", rect.Rotation, rot)
	}
}

// TestResolveRectCenterPivot verifies rotation spins around Center,
// not Anchor, when they differ.
func TestResolveRectCenterPivot(t *testing.T) {
	parent := screenRect(200, 200)
	tr := IdentityTransform()
	tr.Anchor = AnchorTopLeft
	tr.Center = AnchorCenter
	tr.Rotation = math.Pi

	rect := resolveRect(parent, tr, Vec2{40, 20}, parent.Size(), 16, 16)
	// The box center is where it would be unrotated; a half turn
	// around it swaps the corners.
	assertVec(t, "center", rect.Center, Vec2{20, 10})
	assertVec(t, "former top-left", rect.Anchor(AnchorTopLeft), Vec2{40, 20})
}

func TestResolveRectParentRotationCarriesChild(t *testing.T) {
	parent := RotatedRect{Center: Vec2{0, 0}, HalfExtent: Vec2{50, 50}, Rotation: math.Pi / 2, Scale: Vec2{1, 1}}
	tr := IdentityTransform()
	tr.Offset = Pixels(10, 0)

	rect := resolveRect(parent, tr, Vec2{10, 10}, Vec2{100, 100}, 16, 16)
	// The +X offset in the parent frame points down on screen.
	assertVec(t, "center", rect.Center, Vec2{0, 10})
	assertNear(t, "rotation", rect.Rotation, math.Pi/2)
}

func TestResolveRectAtPlacesAnchorFromTopLeft(t *testing.T) {
	parent := screenRect(200, 200)
	tr := IdentityTransform()
	tr.Anchor = AnchorTopLeft
	rect := resolveRectAt(parent, tr, Vec2{40, 20}, Vec2{30, 50})
	assertVec(t, "top-left", rect.Anchor(AnchorTopLeft), Vec2{30, 50})
}
