package rectray

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestAttachOffsetTweenDrivesTransform(t *testing.T) {
	rt, _ := newTestRuntime(200, 200)
	e := rt.SpawnRoot(WithSize(10, 10))
	entry := rt.Entry(e)

	tw := AttachOffsetTween(entry, ease.Linear, 1.0)
	tw.InterpolateTo(Vec2{10, 0})

	rt.Update(0.5)
	assertVec(t, "halfway offset", TransformComponent.Get(entry).Offset.Raw, Vec2{5, 0})
	assertVec(t, "rect follows", rectOf(t, rt, e).Center, Vec2{105, 100})

	rt.Update(0.5)
	assertVec(t, "arrived offset", TransformComponent.Get(entry).Offset.Raw, Vec2{10, 0})
	if !tw.Arrived() {
		t.Error("tween should be arrived after full duration")
	}
}

func TestOffsetTweenPreservesUnits(t *testing.T) {
	rt, _ := newTestRuntime(200, 200)
	e := rt.SpawnRoot(WithSize(10, 10), WithTransform(Transform2D{
		Offset: Percent(0, 0),
		Scale:  Vec2{1, 1},
	}))
	entry := rt.Entry(e)

	tw := AttachOffsetTween(entry, ease.Linear, 1.0)
	tw.InterpolateTo(Vec2{0.25, 0})
	rt.Update(1.0)

	// The tween wrote raw values; the percent units still apply.
	assertVec(t, "center", rectOf(t, rt, e).Center, Vec2{150, 100})
}

func TestSetOffsetRoutesThroughTween(t *testing.T) {
	rt, _ := newTestRuntime(200, 200)
	e := rt.SpawnRoot(WithSize(10, 10))
	entry := rt.Entry(e)

	// Without a tween, the write is immediate.
	SetOffset(entry, Vec2{4, 0})
	assertVec(t, "direct write", TransformComponent.Get(entry).Offset.Raw, Vec2{4, 0})

	AttachOffsetTween(entry, ease.Linear, 1.0)
	SetOffset(entry, Vec2{14, 0})
	rt.Update(0.5)
	assertVec(t, "tweened write", TransformComponent.Get(entry).Offset.Raw, Vec2{9, 0})
}

func TestRotationAndScaleTweens(t *testing.T) {
	rt, _ := newTestRuntime(200, 200)
	e := rt.SpawnRoot(WithSize(10, 10))
	entry := rt.Entry(e)

	AttachRotationTween(entry, ease.Linear, 1.0).InterpolateTo(2)
	AttachScaleTween(entry, ease.Linear, 1.0).InterpolateTo(Vec2{3, 3})
	rt.Update(0.5)

	tr := TransformComponent.Get(entry)
	assertNear(t, "rotation", tr.Rotation, 1)
	assertVec(t, "scale", tr.Scale, Vec2{2, 2})
}

func TestDimensionTweenAnimatesOwnedSize(t *testing.T) {
	rt, _ := newTestRuntime(200, 200)
	e := rt.SpawnRoot(WithSize(10, 10))
	entry := rt.Entry(e)

	AttachDimensionTween(entry, ease.Linear, 1.0).InterpolateTo(Vec2{30, 10})
	rt.Update(0.5)
	assertVec(t, "half extent", rectOf(t, rt, e).HalfExtent, Vec2{10, 5})
}

func TestDimensionTweenRejectsNonOwned(t *testing.T) {
	rt, _ := newTestRuntime(200, 200)
	e := rt.SpawnRoot(WithDimension(Copied()))
	defer func() {
		if recover() == nil {
			t.Error("expected panic for copied dimension")
		}
	}()
	AttachDimensionTween(rt.Entry(e), ease.Linear, 1.0)
}

func TestAttachRequiresTargetComponent(t *testing.T) {
	rt, _ := newTestRuntime(200, 200)
	e := rt.SpawnRoot(WithSize(10, 10))
	defer func() {
		if recover() == nil {
			t.Error("expected panic without Coloring component")
		}
	}()
	AttachColorTween(rt.Entry(e), ease.Linear, 1.0)
}

func TestColorAndOpacityTweens(t *testing.T) {
	rt, _ := newTestRuntime(200, 200)
	e := rt.SpawnRoot(WithSize(10, 10), WithColor(ColorBlack), WithOpacity(0))
	entry := rt.Entry(e)

	AttachColorTween(entry, ease.Linear, 1.0).InterpolateTo(ColorWhite)
	AttachOpacityTween(entry, ease.Linear, 1.0).InterpolateTo(1)
	rt.Update(0.5)

	c := ColoringComponent.Get(entry).Color
	assertNear(t, "r", c.R, 0.5)
	assertNear(t, "opacity", OpacityComponent.Get(entry).Value, 0.5)
}

func TestIndexTweenFlipsSpriteFrames(t *testing.T) {
	rt, _ := newTestRuntime(200, 200)
	e := rt.SpawnRoot(WithSize(16, 16), WithSprite(Sprite{}))
	entry := rt.Entry(e)

	AttachIndexTween(entry, NewRepeat[int](nil, 0, 4, 1.0))
	rt.Update(0.5)
	if got := SpriteComponent.Get(entry).Index; got != 2 {
		t.Errorf("frame = %d, want 2", got)
	}
	rt.Update(0.75)
	if got := SpriteComponent.Get(entry).Index; got != 1 {
		t.Errorf("wrapped frame = %d, want 1", got)
	}
}
