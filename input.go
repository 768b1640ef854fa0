package rectray

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Input snapshot ---

// InputSnapshot is one frame of cursor input, indexed by MouseButton.
// The cursor state machine consumes snapshots rather than reading the
// backend directly, so hosts can remap input and tests can script it.
type InputSnapshot struct {
	// CursorPresent is false when the pointer is absent, such as a
	// touch device between touches. No cursor processing happens
	// without it.
	CursorPresent bool
	// Cursor is the pointer position in screen pixels.
	Cursor Vec2

	Pressed      [numMouseButtons]bool
	JustPressed  [numMouseButtons]bool
	JustReleased [numMouseButtons]bool

	// Wheel is this frame's scroll delta.
	Wheel Vec2
}

// InputSource supplies one InputSnapshot per frame.
type InputSource interface {
	Snapshot() InputSnapshot
}

// InputFunc adapts a function to InputSource.
type InputFunc func() InputSnapshot

func (f InputFunc) Snapshot() InputSnapshot { return f() }

// --- Ebiten backend ---

var ebitenButtons = [numMouseButtons]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// EbitenInput reads the mouse through Ebitengine. It is the default
// input source of a Runtime.
type EbitenInput struct {
	// ScreenToWorld maps window coordinates into the runtime's
	// coordinate space, for hosts that letterbox or zoom. Nil means
	// identity.
	ScreenToWorld func(Vec2) Vec2
}

func (src EbitenInput) Snapshot() InputSnapshot {
	x, y := ebiten.CursorPosition()
	pos := Vec2{float64(x), float64(y)}
	if src.ScreenToWorld != nil {
		pos = src.ScreenToWorld(pos)
	}

	wx, wy := ebiten.Wheel()

	snap := InputSnapshot{
		CursorPresent: true,
		Cursor:        pos,
		Wheel:         Vec2{wx, wy},
	}
	for i, b := range ebitenButtons {
		snap.Pressed[i] = ebiten.IsMouseButtonPressed(b)
		snap.JustPressed[i] = inpututil.IsMouseButtonJustPressed(b)
		snap.JustReleased[i] = inpututil.IsMouseButtonJustReleased(b)
	}
	return snap
}
