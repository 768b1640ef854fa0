// Package rectray is a retained-mode 2D layout and animation layer for
// Ebitengine games built on the donburi entity component system. It
// resolves a tree of anchored, unit-polymorphic rectangles into
// screen-space geometry every frame, animates their attributes through
// easing tweens, and runs a cursor state machine over them, leaving
// drawing entirely to the host.
//
// # Quick start
//
//	world := donburi.NewWorld()
//	rt := rectray.NewRuntime(world, rectray.RuntimeConfig{
//		Viewport: rectray.Vec2{X: 800, Y: 600},
//	})
//
//	button := rt.SpawnRoot(
//		rectray.WithTransform(rectray.Transform2D{
//			Anchor: rectray.AnchorCenter,
//		}),
//		rectray.WithSize(120, 40),
//		rectray.WithEventFlags(rectray.ClickFlags),
//	)
//
//	// Each frame, from the host's Update:
//	rt.Update(1.0 / float64(ebiten.TPS()))
//	rect := rectray.RectComponent.Get(rt.Entry(button))
//
// # Units and anchors
//
// Sizes and offsets are unit-tagged: pixels, ems (local font size),
// rems (root font size), percentages of the parent, and margin units
// that resolve relative to the parent's size. An Anchor names a
// normalized point on a rectangle; a node pins its Anchor to its
// parent's ParentAnchor, displaced by Offset, and rotates and scales
// around Center. Chaining anchors builds articulated structures
// without any explicit matrix math.
//
// # Layout
//
// A node with a Container positions its children by layout instead:
// compact stacks that fit the container to its content, fixed spans,
// and wrapping paragraphs. Children outside the container's ChildRange
// keep ordinary anchor placement.
//
// # Animation
//
// Interpolate values drive attributes toward targets over time with
// [gween]'s easing curves. Retargeting starts from the current value,
// so interrupted animations never jump. Tween components attach per
// attribute: offset, rotation, scale, size, color, opacity, and sprite
// index.
//
// # Interaction
//
// Nodes opt into cursor events through EventFlags. The runtime's state
// machine grants hover, press, drag, click, double-click, drop, and
// click-outside, marking nodes with one-frame components and
// mirroring each action onto donburi's event bus.
//
// All of the runtime is single-threaded and driven by one Update call
// per frame.
//
// [gween]: https://github.com/tanema/gween
package rectray
