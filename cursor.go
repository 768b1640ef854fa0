package rectray

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// --- Cursor state ---

// CursorState is the cursor's retained state across frames. It is
// owned by the Runtime; read it through Runtime.Cursor.
type CursorState struct {
	// Pos is the cursor position in screen pixels, as of the last
	// processed frame.
	Pos Vec2
	// Blocked suspends all cursor processing while set, for modal
	// overlays outside this layer. Markers are still cleared.
	Blocked bool
	// Caught reports whether some node claimed the cursor this frame.
	// Hosts use it to decide whether to route input to the game world
	// instead.
	Caught bool
	// Dragging reports whether a drag is in flight.
	Dragging bool
	// DragButton is the button holding the drag, valid while Dragging.
	DragButton MouseButton

	dragTarget    donburi.Entity
	hasDragTarget bool

	focused    donburi.Entity
	hasFocused bool

	press    [numMouseButtons]donburi.Entity
	hasPress [numMouseButtons]bool

	// dragDoubleClick is latched when a left drag starts on a
	// double-click node, so the release can promote DragEnd.
	dragDoubleClick bool

	// The two most recent left-press timestamps. A double-click
	// compares against the older one, so triple-clicking does not
	// fire twice.
	leftDown [2]float64
}

// Focused returns the node holding cursor focus this frame.
func (st *CursorState) Focused() (donburi.Entity, bool) {
	return st.focused, st.hasFocused
}

// DragTarget returns the node being dragged.
func (st *CursorState) DragTarget() (donburi.Entity, bool) {
	if !st.Dragging {
		return 0, false
	}
	return st.dragTarget, st.hasDragTarget
}

func (st *CursorState) pushLeftDown(now float64) {
	st.leftDown[1] = st.leftDown[0]
	st.leftDown[0] = now
}

func (st *CursorState) prevLeftDown() float64 {
	return st.leftDown[1]
}

func (st *CursorState) clearLeftDowns() {
	st.leftDown[0] = math.Inf(-1)
	st.leftDown[1] = math.Inf(-1)
}

// forget drops any retained reference to a despawned entity.
func (st *CursorState) forget(e donburi.Entity) {
	if st.hasDragTarget && st.dragTarget == e {
		st.hasDragTarget = false
		st.Dragging = false
	}
	if st.hasFocused && st.focused == e {
		st.hasFocused = false
	}
	for b := range st.press {
		if st.hasPress[b] && st.press[b] == e {
			st.hasPress[b] = false
		}
	}
}

// --- Frame processing ---

var interactiveQuery = query.NewQuery(filter.Contains(EventFlagsComponent, RectComponent))

// runCursor advances the cursor state machine by one frame. Marker
// components from the previous frame are cleared first, so markers are
// visible for exactly one frame.
func (rt *Runtime) runCursor(in InputSnapshot) {
	rt.clearMarkers()

	st := &rt.cursor
	st.Caught = false
	st.hasFocused = false

	if st.Blocked {
		return
	}
	if !in.CursorPresent {
		return
	}
	st.Pos = in.Cursor
	pos := in.Cursor

	if st.Dragging {
		rt.cursorDrag(in, pos)
	} else {
		rt.cursorButtons(in, pos)
	}

	if !st.Caught && !st.hasFocused {
		if hover, ok := rt.pickTop(pos, Hover, 0, false); ok {
			rt.grantFocus(hover, Hover)
		}
	}

	if in.Wheel != (Vec2{}) {
		if target, ok := rt.pickTop(pos, MouseWheel, 0, false); ok {
			rt.mark(target, MouseWheel, pos)
			WheelEvents.Publish(rt.world, WheelEvent{
				Entity: target,
				Delta:  in.Wheel,
				Pos:    pos,
			})
			st.Caught = true
		}
	}
}

// cursorDrag handles frames with a drag in flight. The drag is sticky:
// the target keeps focus until the button is released, no matter where
// the cursor goes.
func (rt *Runtime) cursorDrag(in InputSnapshot, pos Vec2) {
	st := &rt.cursor
	b := st.DragButton

	target := st.dragTarget
	alive := st.hasDragTarget && rt.world.Valid(target)

	if in.Pressed[b] && !in.JustReleased[b] {
		if !alive {
			st.Dragging = false
			st.hasDragTarget = false
			return
		}
		rt.grantFocus(target, dragFlag(b))
		// Presses of the other buttons still reach the drag target
		// as plain Down actions.
		for i := 0; i < numMouseButtons; i++ {
			ob := MouseButton(i)
			if ob != b && in.JustPressed[ob] {
				rt.mark(target, downFlag(ob), pos)
			}
		}
		st.Caught = true
		return
	}

	// Drag released. A release within the double-click window of the
	// previous left press promotes DragEnd to DoubleClick.
	if alive {
		action := DragEnd
		if st.dragDoubleClick && rt.time-st.prevLeftDown() <= rt.doubleClickWindow {
			action = DoubleClick
			st.clearLeftDowns()
		}
		rt.mark(target, action, pos)
		rt.grantFocus(target, Hover)
		if drop, ok := rt.pickTop(pos, Drop, target, true); ok {
			rt.mark(drop, Drop, pos)
		}
		rt.clickOutside(pos, target, true)
	} else {
		rt.clickOutside(pos, 0, false)
	}
	st.Dragging = false
	st.hasDragTarget = false
	st.hasPress[b] = false
	st.Caught = true
}

// cursorButtons handles presses, held buttons, and releases while no
// drag is in flight.
func (rt *Runtime) cursorButtons(in InputSnapshot, pos Vec2) {
	st := &rt.cursor

	for i := 0; i < numMouseButtons; i++ {
		b := MouseButton(i)
		if !in.JustPressed[b] {
			continue
		}

		if b == MouseButtonLeft {
			st.pushLeftDown(rt.time)
		}

		target, ok := rt.pickTop(pos, pressMask(b), 0, false)
		if !ok {
			continue
		}
		entry := rt.world.Entry(target)
		flags := *EventFlagsComponent.Get(entry)

		rt.mark(target, downFlag(b), pos)

		st.press[b] = target
		st.hasPress[b] = true
		if flags.Contains(dragFlag(b)) {
			st.Dragging = true
			st.DragButton = b
			st.dragTarget = target
			st.hasDragTarget = true
			st.dragDoubleClick = b == MouseButtonLeft && flags.Contains(DoubleClick)
			rt.grantFocus(target, dragFlag(b))
		} else {
			rt.grantFocus(target, pressedFlag(b))
		}
		st.Caught = true
	}

	for i := 0; i < numMouseButtons; i++ {
		b := MouseButton(i)
		if in.Pressed[b] && !in.JustPressed[b] && st.hasPress[b] {
			if rt.world.Valid(st.press[b]) {
				rt.grantFocus(st.press[b], pressedFlag(b))
				st.Caught = true
			} else {
				st.hasPress[b] = false
			}
		}
	}

	for i := 0; i < numMouseButtons; i++ {
		b := MouseButton(i)
		if !in.JustReleased[b] {
			continue
		}
		if st.hasPress[b] {
			target := st.press[b]
			st.hasPress[b] = false
			if rt.world.Valid(target) {
				entry := rt.world.Entry(target)
				flags := *EventFlagsComponent.Get(entry)
				if flags.Contains(clickFlag(b)) && rt.hits(entry, pos) {
					// Two quick left clicks fold into a single
					// DoubleClick rather than a second LeftClick.
					action := clickFlag(b)
					if b == MouseButtonLeft && flags.Contains(DoubleClick) &&
						rt.time-st.prevLeftDown() <= rt.doubleClickWindow {
						action = DoubleClick
						st.clearLeftDowns()
					}
					rt.mark(target, action, pos)
				}
			}
		}
		rt.clickOutside(pos, 0, false)
	}
}

// --- Picking ---

// pickTop returns the topmost node whose opt-in flags intersect mask
// and whose hitbox contains pos. Depth ties break toward the later
// entity in iteration order; NaN depths sort below everything.
func (rt *Runtime) pickTop(pos Vec2, mask EventFlags, exclude donburi.Entity, hasExclude bool) (donburi.Entity, bool) {
	var (
		best  donburi.Entity
		bestZ float64
		found bool
	)
	interactiveQuery.Each(rt.world, func(entry *donburi.Entry) {
		e := entry.Entity()
		if hasExclude && e == exclude {
			return
		}
		if !EventFlagsComponent.Get(entry).Intersects(mask) {
			return
		}
		if !rt.hits(entry, pos) {
			return
		}
		z := RectComponent.Get(entry).Z
		if !found || !totalLess(z, bestZ) {
			best, bestZ, found = e, z, true
		}
	})
	return best, found
}

// hits tests pos against the node's hitbox within its resolved rect.
func (rt *Runtime) hits(entry *donburi.Entry, pos Vec2) bool {
	rect := *RectComponent.Get(entry)
	hitbox := FullHitbox()
	if entry.HasComponent(HitboxComponent) {
		hitbox = *HitboxComponent.Get(entry)
	}
	return hitbox.Contains(rect, pos)
}

// totalLess is a total order over float64 that sorts NaN below every
// number, so a NaN depth can never win a pick.
func totalLess(a, b float64) bool {
	if math.IsNaN(a) {
		return !math.IsNaN(b)
	}
	if math.IsNaN(b) {
		return false
	}
	return a < b
}

// --- Markers ---

func (rt *Runtime) grantFocus(e donburi.Entity, flags EventFlags) {
	st := &rt.cursor
	st.focused = e
	st.hasFocused = true
	entry := rt.world.Entry(e)
	if entry.HasComponent(CursorFocusComponent) {
		CursorFocusComponent.Get(entry).Flags |= flags
		return
	}
	donburi.Add(entry, CursorFocusComponent, &CursorFocus{Flags: flags})
}

func (rt *Runtime) mark(e donburi.Entity, action EventFlags, pos Vec2) {
	entry := rt.world.Entry(e)
	if entry.HasComponent(CursorActionComponent) {
		CursorActionComponent.Get(entry).Flags |= action
	} else {
		donburi.Add(entry, CursorActionComponent, &CursorAction{Flags: action})
	}
	CursorEvents.Publish(rt.world, ActionEvent{Entity: e, Action: action, Pos: pos})
}

// clickOutside marks every ClickOutside node that does not contain pos.
func (rt *Runtime) clickOutside(pos Vec2, exclude donburi.Entity, hasExclude bool) {
	var outside []donburi.Entity
	interactiveQuery.Each(rt.world, func(entry *donburi.Entry) {
		e := entry.Entity()
		if hasExclude && e == exclude {
			return
		}
		if !EventFlagsComponent.Get(entry).Contains(ClickOutside) {
			return
		}
		if rt.hits(entry, pos) {
			return
		}
		outside = append(outside, e)
	})
	for _, e := range outside {
		rt.mark(e, ClickOutside, pos)
	}
}

// clearMarkers strips last frame's focus and action markers.
func (rt *Runtime) clearMarkers() {
	clearComponent(rt.world, CursorFocusComponent)
	clearComponent(rt.world, CursorActionComponent)
}

func clearComponent[T any](w donburi.World, ct *donburi.ComponentType[T]) {
	var marked []*donburi.Entry
	query.NewQuery(filter.Contains(ct)).Each(w, func(entry *donburi.Entry) {
		marked = append(marked, entry)
	})
	for _, entry := range marked {
		entry.RemoveComponent(ct)
	}
}
