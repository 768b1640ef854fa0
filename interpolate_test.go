package rectray

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestInterpolateStartsArrived(t *testing.T) {
	ip := NewInterpolate(ease.Linear, 5.0, 1.0)
	if !ip.Arrived() {
		t.Fatal("fresh interpolation should be arrived")
	}
	assertNear(t, "value", ip.Get(), 5)
}

func TestInterpolateLinearHalfway(t *testing.T) {
	ip := NewInterpolate(ease.Linear, 0.0, 1.0)
	ip.InterpolateTo(10)
	ip.update(0.5)
	assertNear(t, "halfway", ip.Get(), 5)
	if ip.Arrived() {
		t.Error("should not be arrived at half duration")
	}
	ip.update(0.5)
	assertNear(t, "done", ip.Get(), 10)
	if !ip.Arrived() {
		t.Error("should be arrived after full duration")
	}
}

func TestInterpolateNilEasingIsLinear(t *testing.T) {
	ip := NewInterpolate[float64](nil, 0, 2.0)
	ip.InterpolateTo(8)
	ip.update(0.5)
	assertNear(t, "quarter", ip.Get(), 2)
}

// Retargeting mid-flight must continue from the current value, not
// the original source, so interrupted animations never jump.
func TestInterpolateRetargetIsContinuous(t *testing.T) {
	ip := NewInterpolate(ease.Linear, 0.0, 1.0)
	ip.InterpolateTo(10)
	ip.update(0.5)
	before := ip.Get()

	ip.InterpolateTo(-10)
	assertNear(t, "value right after retarget", ip.Get(), before)

	ip.update(0.5)
	assertNear(t, "halfway to new target", ip.Get(), before+(-10-before)*0.5)
}

func TestInterpolateRetargetToSameTargetIsNoOp(t *testing.T) {
	ip := NewInterpolate(ease.Linear, 0.0, 1.0)
	ip.InterpolateTo(10)
	ip.update(0.5)
	ip.InterpolateTo(10)
	assertNear(t, "unchanged", ip.Get(), 5)
}

func TestInterpolateSetJumps(t *testing.T) {
	ip := NewInterpolate(ease.Linear, 0.0, 1.0)
	ip.InterpolateTo(10)
	ip.update(0.25)
	ip.Set(3)
	if !ip.Arrived() {
		t.Error("Set should settle immediately")
	}
	assertNear(t, "value", ip.Get(), 3)
}

func TestInterpolateZeroDurationSnaps(t *testing.T) {
	ip := NewInterpolate(ease.Linear, 0.0, 0)
	ip.InterpolateTo(7)
	assertNear(t, "value", ip.Get(), 7)
}

func TestInterpolateVec2AndColor(t *testing.T) {
	v := NewInterpolate(ease.Linear, Vec2{}, 1.0)
	v.InterpolateTo(Vec2{10, 20})
	v.update(0.5)
	assertVec(t, "vec", v.Get(), Vec2{5, 10})

	c := NewInterpolate(ease.Linear, Color{R: 1, A: 1}, 1.0)
	c.InterpolateTo(Color{G: 1, A: 0})
	c.update(0.5)
	got := c.Get()
	assertNear(t, "r", got.R, 0.5)
	assertNear(t, "g", got.G, 0.5)
	assertNear(t, "a", got.A, 0.5)
}

func TestRepeatCyclesIndices(t *testing.T) {
	ip := NewRepeat[int](nil, 0, 4, 1.0)
	if ip.Arrived() {
		t.Fatal("repeat should never start arrived")
	}
	ip.update(0.5)
	if got := ip.Get(); got != 2 {
		t.Errorf("midway index = %d, want 2", got)
	}
	// Wraps past the duration instead of settling.
	ip.update(0.75)
	if ip.Arrived() {
		t.Error("repeat should never arrive")
	}
	if got := ip.Get(); got != 1 {
		t.Errorf("wrapped index = %d, want 1", got)
	}
}
