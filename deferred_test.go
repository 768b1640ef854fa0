package rectray

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDeferredTaskPolledUntilDone(t *testing.T) {
	rt, _ := newTestRuntime(100, 100)

	polls := 0
	rt.Defer(TaskFunc(func() bool {
		polls++
		return polls >= 3
	}))

	rt.Update(0)
	rt.Update(0)
	if polls != 2 {
		t.Fatalf("polls = %d, want 2", polls)
	}
	rt.Update(0)
	rt.Update(0)
	if polls != 3 {
		t.Errorf("polls = %d, want 3 (dropped after completion)", polls)
	}
}

func TestTaskDeferredDuringPollSurvives(t *testing.T) {
	rt, _ := newTestRuntime(100, 100)

	var followUp bool
	rt.Defer(TaskFunc(func() bool {
		rt.Defer(TaskFunc(func() bool {
			followUp = true
			return true
		}))
		return true
	}))

	rt.Update(0)
	if followUp {
		t.Fatal("follow-up task must not run on the frame it was queued")
	}
	rt.Update(0)
	if !followUp {
		t.Error("task queued from inside Poll should run on the next frame")
	}
}

func TestImageRegistryResolve(t *testing.T) {
	reg := NewImageRegistry()
	if _, ok := reg.Resolve("missing"); ok {
		t.Error("unregistered path should not resolve")
	}
	img := ebiten.NewImage(8, 8)
	reg.Register("ui/frame", img)
	if got, ok := reg.Resolve("ui/frame"); !ok || got != img {
		t.Error("registered image should resolve")
	}
}

func TestAtlasTaskWaitsForAsset(t *testing.T) {
	rt, _ := newTestRuntime(100, 100)
	reg := NewImageRegistry()

	var got Atlas
	ready := false
	rt.Defer(&AtlasTask{
		Assets: reg,
		Path:   "sheet",
		Cols:   4,
		Rows:   2,
		OnReady: func(a Atlas) {
			got = a
			ready = true
		},
	})

	rt.Update(0)
	if ready {
		t.Fatal("task should wait for the asset")
	}

	reg.Register("sheet", ebiten.NewImage(64, 32))
	rt.Update(0)
	if !ready {
		t.Fatal("task should complete once the asset resolves")
	}
	if got.Len() != 8 {
		t.Errorf("frames = %d, want 8", got.Len())
	}
	assertVec(t, "frame size", got.FrameSize(), Vec2{16, 16})
}

func TestSliceAtlasWithPadding(t *testing.T) {
	// 2 columns with 2px padding: (34 - 2) / 2 = 16 per frame.
	img := ebiten.NewImage(34, 16)
	a := SliceAtlas(img, 2, 1, Vec2{2, 0})
	if a.Len() != 2 {
		t.Fatalf("frames = %d, want 2", a.Len())
	}
	assertVec(t, "frame size", a.FrameSize(), Vec2{16, 16})
	if a.Frames[1].Min.X != 18 {
		t.Errorf("second frame x = %d, want 18", a.Frames[1].Min.X)
	}
}

func TestAtlasAsSizeSource(t *testing.T) {
	var empty Atlas
	if _, ok := empty.NaturalSize(); ok {
		t.Error("empty atlas should not report a size")
	}

	a := SliceAtlas(ebiten.NewImage(64, 32), 4, 2, Vec2{})
	size, ok := a.NaturalSize()
	if !ok {
		t.Fatal("sliced atlas should report a size")
	}
	assertVec(t, "size", size, Vec2{16, 16})
}
