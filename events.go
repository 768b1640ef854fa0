package rectray

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// --- Event flags ---

// EventFlags is a bitset that both opts a node into cursor events
// (stored in EventFlagsComponent) and names the event that fired
// (carried by CursorAction and ActionEvent).
type EventFlags uint32

const (
	// Hover fires while the cursor rests on the node with no button
	// held. Hover is only granted when nothing else claimed the
	// cursor this frame.
	Hover EventFlags = 1 << iota
	// LeftClick fires on left release over the node that was pressed.
	LeftClick
	// LeftDrag keeps the node focused while the left button is held,
	// even after the cursor leaves it.
	LeftDrag
	// DoubleClick fires in place of the second LeftClick (or DragEnd)
	// when the release lands within the double-click window.
	DoubleClick
	// RightClick fires on right release over the pressed node.
	RightClick
	// MidClick fires on middle release over the pressed node.
	MidClick
	// RightDrag keeps the node focused while the right button is held.
	RightDrag
	// MidDrag keeps the node focused while the middle button is held.
	MidDrag
	// Drop fires on the node under the cursor when a drag of some
	// other node ends on it.
	Drop
	// ClickOutside fires on release for every opted-in node that does
	// not contain the release point.
	ClickOutside
	// MouseWheel opts the node into wheel events.
	MouseWheel

	// Action-only flags, never matched against opt-in masks.

	// LeftDown fires on the frame the left button is pressed on the
	// node.
	LeftDown
	// RightDown fires on right press.
	RightDown
	// MidDown fires on middle press.
	MidDown
	// LeftPressed marks focus while the left button is held.
	LeftPressed
	// RightPressed marks focus while the right button is held.
	RightPressed
	// MidPressed marks focus while the middle button is held.
	MidPressed
	// DragEnd fires on the dragged node when its drag ends.
	DragEnd
)

// ClickFlags groups the opt-in flags for a plain clickable node.
const ClickFlags = Hover | LeftClick

// Contains reports whether all bits of o are set in f.
func (f EventFlags) Contains(o EventFlags) bool {
	return f&o == o
}

// Intersects reports whether any bit of o is set in f.
func (f EventFlags) Intersects(o EventFlags) bool {
	return f&o != 0
}

func downFlag(b MouseButton) EventFlags {
	switch b {
	case MouseButtonRight:
		return RightDown
	case MouseButtonMiddle:
		return MidDown
	}
	return LeftDown
}

func clickFlag(b MouseButton) EventFlags {
	switch b {
	case MouseButtonRight:
		return RightClick
	case MouseButtonMiddle:
		return MidClick
	}
	return LeftClick
}

func pressedFlag(b MouseButton) EventFlags {
	switch b {
	case MouseButtonRight:
		return RightPressed
	case MouseButtonMiddle:
		return MidPressed
	}
	return LeftPressed
}

func dragFlag(b MouseButton) EventFlags {
	switch b {
	case MouseButtonRight:
		return RightDrag
	case MouseButtonMiddle:
		return MidDrag
	}
	return LeftDrag
}

// pressMask is the opt-in mask consulted on a button press.
func pressMask(b MouseButton) EventFlags {
	switch b {
	case MouseButtonRight:
		return RightClick | RightDrag
	case MouseButtonMiddle:
		return MidClick | MidDrag
	}
	return LeftClick | LeftDrag | DoubleClick
}

// --- Per-frame markers ---

// CursorFocus marks the node holding the cursor's attention this
// frame: Hover, or one of the Pressed flags, or LeftDrag. Cleared at
// the start of every frame.
type CursorFocus struct {
	Flags EventFlags
}

// CursorAction marks discrete events that fired on the node this
// frame. Several flags may accumulate, such as LeftDown|MouseWheel when
// a press and a wheel tick land on the node in the same frame.
// Cleared at the start of every frame.
type CursorAction struct {
	Flags EventFlags
}

// --- Event bus ---

// ActionEvent mirrors every CursorAction marker onto the donburi event
// bus, for systems that prefer subscriptions over polling markers.
type ActionEvent struct {
	Entity donburi.Entity
	Action EventFlags
	// Pos is the cursor position when the event fired, in screen
	// pixels.
	Pos Vec2
}

// WheelEvent is published to the topmost MouseWheel node under the
// cursor when the wheel moves.
type WheelEvent struct {
	Entity donburi.Entity
	Delta  Vec2
	Pos    Vec2
}

var (
	CursorEvents = events.NewEventType[ActionEvent]()
	WheelEvents  = events.NewEventType[WheelEvent]()
)
