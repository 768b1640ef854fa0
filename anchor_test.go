package rectray

import "testing"

func TestAnchorZeroValueInherits(t *testing.T) {
	var a Anchor
	if !a.IsInherit() {
		t.Fatal("zero Anchor should be Inherit")
	}
	if got := a.Or(AnchorBottomRight); got != AnchorBottomRight {
		t.Errorf("Or = %v, want BottomRight", got)
	}
}

func TestAnchorOrKeepsConcrete(t *testing.T) {
	if got := AnchorTopLeft.Or(AnchorCenter); got != AnchorTopLeft {
		t.Errorf("Or = %v, want TopLeft", got)
	}
	// An explicit center is not the same as inherit.
	if AnchorCenter.IsInherit() {
		t.Error("AnchorCenter should not be Inherit")
	}
}

func TestAnchorVecYDown(t *testing.T) {
	size := Vec2{100, 40}
	if got := AnchorTopLeft.Vec(size); got != (Vec2{-50, -20}) {
		t.Errorf("TopLeft.Vec = %v, want {-50 -20}", got)
	}
	if got := AnchorBottomRight.Vec(size); got != (Vec2{50, 20}) {
		t.Errorf("BottomRight.Vec = %v, want {50 20}", got)
	}
	if got := AnchorCenter.Vec(size); got != (Vec2{}) {
		t.Errorf("Center.Vec = %v, want zero", got)
	}
}

func TestAnchorAtOutOfRange(t *testing.T) {
	a := AnchorAt(1.5, 0)
	if a.IsInherit() {
		t.Fatal("AnchorAt result should be concrete")
	}
	if got := a.Vec(Vec2{100, 100}); got != (Vec2{150, 0}) {
		t.Errorf("Vec = %v, want {150 0}", got)
	}
}
