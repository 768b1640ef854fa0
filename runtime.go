package rectray

import (
	"math"

	"github.com/yohamta/donburi"
)

// --- Configuration ---

// RuntimeConfig tunes a Runtime. The zero value picks the defaults.
type RuntimeConfig struct {
	// Viewport is the layout root's size in pixels. The root rect
	// spans it exactly. Defaults to 640×480.
	Viewport Vec2
	// Rem is the root font size that Rem units and the root em
	// resolve against. Defaults to 16.
	Rem float64
	// DoubleClickWindow is the maximum seconds between two left
	// presses forming a double-click. Defaults to 0.3.
	DoubleClickWindow float64
	// Input supplies per-frame snapshots. Defaults to EbitenInput.
	Input InputSource
	// Debug enables stderr diagnostics.
	Debug bool
}

// --- Runtime ---

// Runtime owns the layout tree inside a host donburi world and drives
// the whole frame pipeline from a single Update call. All methods must
// run on the host's update goroutine; the Runtime is not safe for
// concurrent use.
type Runtime struct {
	world donburi.World
	root  donburi.Entity

	viewport          Vec2
	rem               float64
	doubleClickWindow float64

	input    InputSource
	cursor   CursorState
	time     float64
	deferred []Task
	debug    bool
}

// NewRuntime attaches a layout runtime to the given world and creates
// its root node.
func NewRuntime(world donburi.World, cfg RuntimeConfig) *Runtime {
	if cfg.Viewport == (Vec2{}) {
		cfg.Viewport = Vec2{640, 480}
	}
	if cfg.Rem == 0 {
		cfg.Rem = 16
	}
	if cfg.DoubleClickWindow == 0 {
		cfg.DoubleClickWindow = 0.3
	}
	if cfg.Input == nil {
		cfg.Input = EbitenInput{}
	}

	rt := &Runtime{
		world:             world,
		viewport:          cfg.Viewport,
		rem:               cfg.Rem,
		doubleClickWindow: cfg.DoubleClickWindow,
		input:             cfg.Input,
		debug:             cfg.Debug,
	}
	rt.cursor.clearLeftDowns()

	rt.root = world.Create(TransformComponent, DimensionComponent, ChildrenComponent)
	rootEntry := world.Entry(rt.root)
	TransformComponent.SetValue(rootEntry, IdentityTransform())
	DimensionComponent.SetValue(rootEntry, Owned(Full()))

	rt.debugf("runtime ready: viewport %gx%g rem %g", rt.viewport.X, rt.viewport.Y, rt.rem)
	return rt
}

// World returns the host world the runtime lives in.
func (rt *Runtime) World() donburi.World { return rt.world }

// Root returns the root entity all spawned trees hang from.
func (rt *Runtime) Root() donburi.Entity { return rt.root }

// Cursor exposes the retained cursor state.
func (rt *Runtime) Cursor() *CursorState { return &rt.cursor }

// Viewport returns the root size in pixels.
func (rt *Runtime) Viewport() Vec2 { return rt.viewport }

// SetViewport resizes the layout root, typically from the host's
// Layout callback. Percent-sized trees follow on the next Update.
func (rt *Runtime) SetViewport(v Vec2) {
	if v.X <= 0 || v.Y <= 0 || math.IsNaN(v.X) || math.IsNaN(v.Y) {
		panic("rectray: SetViewport: viewport must be positive")
	}
	rt.viewport = v
}

// Rem returns the root font size.
func (rt *Runtime) Rem() float64 { return rt.rem }

// SetRem changes the root font size.
func (rt *Runtime) SetRem(rem float64) {
	if rem <= 0 {
		panic("rectray: SetRem: rem must be positive")
	}
	rt.rem = rem
}

// Entry returns the donburi entry for an entity, a convenience for
// component access around Spawn and the Set* helpers.
func (rt *Runtime) Entry(e donburi.Entity) *donburi.Entry {
	return rt.world.Entry(e)
}

// --- Frame pipeline ---

// Update advances the runtime by dt seconds. Pass order within a
// frame: cursor state machine (with marker cleanup), deferred tasks,
// tween advance and write-back, measurement sync, layout and
// transform propagation, then event delivery. After Update returns,
// every RectComponent is consistent with this frame's state.
func (rt *Runtime) Update(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		panic("rectray: Update: dt must be non-negative")
	}
	rt.time += dt

	rt.runCursor(rt.input.Snapshot())
	rt.pollDeferred()
	rt.advanceTweens(dt)
	rt.applyTweens()
	rt.syncMeasurements()
	rt.layoutAndPropagate()

	CursorEvents.ProcessEvents(rt.world)
	WheelEvents.ProcessEvents(rt.world)
}

// Now returns the runtime's accumulated time in seconds.
func (rt *Runtime) Now() float64 { return rt.time }
