package rectray

import (
	"github.com/yohamta/donburi"
)

// --- Spawning ---

// SpawnOption configures a node being spawned.
type SpawnOption func(*donburi.Entry)

// WithTransform sets the node's transform. A zero Scale is normalized
// to (1, 1).
func WithTransform(t Transform2D) SpawnOption {
	return func(e *donburi.Entry) {
		if (t.Scale == Vec2{}) {
			t.Scale = Vec2{1, 1}
		}
		TransformComponent.SetValue(e, t)
	}
}

// WithDimension sets how the node is sized.
func WithDimension(d Dimension) SpawnOption {
	return func(e *donburi.Entry) {
		DimensionComponent.SetValue(e, d)
	}
}

// WithSize is shorthand for an owned pixel size.
func WithSize(w, h float64) SpawnOption {
	return WithDimension(Owned(Pixels(w, h)))
}

// WithContainer makes the node a layout container.
func WithContainer(c Container) SpawnOption {
	return func(e *donburi.Entry) {
		donburi.Add(e, ContainerComponent, &c)
	}
}

// WithEventFlags opts the node into cursor events. A full-rect hitbox
// is added unless one was set already.
func WithEventFlags(f EventFlags) SpawnOption {
	return func(e *donburi.Entry) {
		donburi.Add(e, EventFlagsComponent, &f)
		if !e.HasComponent(HitboxComponent) {
			h := FullHitbox()
			donburi.Add(e, HitboxComponent, &h)
		}
	}
}

// WithHitbox sets the node's hit-test region.
func WithHitbox(h Hitbox) SpawnOption {
	return func(e *donburi.Entry) {
		if e.HasComponent(HitboxComponent) {
			HitboxComponent.SetValue(e, h)
			return
		}
		donburi.Add(e, HitboxComponent, &h)
	}
}

// WithSizeSource attaches a natural-size source for copied dimensions.
func WithSizeSource(src SizeSource) SpawnOption {
	return func(e *donburi.Entry) {
		donburi.Add(e, SizeSourceComponent, &SizeSourceRef{Source: src})
	}
}

// WithMeasure attaches a measurement callback for dynamic dimensions.
func WithMeasure(f func() (Vec2, bool)) SpawnOption {
	return func(e *donburi.Entry) {
		donburi.Add(e, MeasureComponent, &Measure{Func: f})
	}
}

// WithColor attaches an animatable tint.
func WithColor(c Color) SpawnOption {
	return func(e *donburi.Entry) {
		donburi.Add(e, ColoringComponent, &Coloring{Color: c})
	}
}

// WithOpacity attaches an animatable opacity.
func WithOpacity(v float64) SpawnOption {
	return func(e *donburi.Entry) {
		donburi.Add(e, OpacityComponent, &Opacity{Value: v})
	}
}

// WithSprite attaches an atlas sprite whose Index is animatable.
func WithSprite(s Sprite) SpawnOption {
	return func(e *donburi.Entry) {
		donburi.Add(e, SpriteComponent, &s)
	}
}

// Spawn creates a node under parent and returns its entity. The node
// always carries a transform and a dimension; defaults are identity
// transform and owned 0×0 size.
func (rt *Runtime) Spawn(parent donburi.Entity, opts ...SpawnOption) donburi.Entity {
	if !rt.world.Valid(parent) {
		panic("rectray: Spawn: parent entity is not alive")
	}
	e := rt.world.Create(TransformComponent, DimensionComponent)
	entry := rt.world.Entry(e)
	TransformComponent.SetValue(entry, IdentityTransform())
	DimensionComponent.SetValue(entry, Owned(Pixels(0, 0)))
	for _, opt := range opts {
		opt(entry)
	}
	rt.AppendChild(parent, e)
	return e
}

// SpawnRoot creates a node attached directly to the runtime root.
func (rt *Runtime) SpawnRoot(opts ...SpawnOption) donburi.Entity {
	return rt.Spawn(rt.root, opts...)
}

// SpawnLinebreak inserts a line-break pseudo-child into a paragraph
// container.
func (rt *Runtime) SpawnLinebreak(parent donburi.Entity, overhead Size2) donburi.Entity {
	e := rt.Spawn(parent)
	entry := rt.world.Entry(e)
	donburi.Add(entry, LinebreakComponent, &Linebreak{Overhead: overhead})
	return e
}

// --- Tree surgery ---

// AppendChild attaches child as the last child of parent, detaching it
// from its previous parent first.
func (rt *Runtime) AppendChild(parent, child donburi.Entity) {
	if parent == child {
		panic("rectray: AppendChild: cannot parent a node to itself")
	}
	rt.Detach(child)

	pe := rt.world.Entry(parent)
	if pe.HasComponent(ChildrenComponent) {
		c := ChildrenComponent.Get(pe)
		c.Entities = append(c.Entities, child)
	} else {
		donburi.Add(pe, ChildrenComponent, &Children{Entities: []donburi.Entity{child}})
	}

	ce := rt.world.Entry(child)
	if ce.HasComponent(ParentComponent) {
		ParentComponent.Get(ce).Entity = parent
	} else {
		donburi.Add(ce, ParentComponent, &Parent{Entity: parent})
	}
}

// Detach removes child from its parent's child list, leaving it
// parentless. Detached nodes are skipped by layout and propagation.
func (rt *Runtime) Detach(child donburi.Entity) {
	ce := rt.world.Entry(child)
	if !ce.HasComponent(ParentComponent) {
		return
	}
	parent := ParentComponent.Get(ce).Entity
	ce.RemoveComponent(ParentComponent)

	if !rt.world.Valid(parent) {
		return
	}
	pe := rt.world.Entry(parent)
	if !pe.HasComponent(ChildrenComponent) {
		return
	}
	c := ChildrenComponent.Get(pe)
	for i, e := range c.Entities {
		if e == child {
			c.Entities = append(c.Entities[:i], c.Entities[i+1:]...)
			break
		}
	}
}

// DespawnRecursive removes a node and its whole subtree from the
// world. Despawning the dragged or focused node releases it.
func (rt *Runtime) DespawnRecursive(entity donburi.Entity) {
	if entity == rt.root {
		panic("rectray: DespawnRecursive: cannot despawn the root")
	}
	rt.Detach(entity)
	rt.despawnSubtree(entity)
}

func (rt *Runtime) despawnSubtree(entity donburi.Entity) {
	if !rt.world.Valid(entity) {
		return
	}
	entry := rt.world.Entry(entity)
	if entry.HasComponent(ChildrenComponent) {
		children := ChildrenComponent.Get(entry).Entities
		for _, c := range children {
			rt.despawnSubtree(c)
		}
	}
	rt.cursor.forget(entity)
	rt.world.Remove(entity)
}

// Children returns the node's children in layout order. The returned
// slice is the live backing array; treat it as read-only.
func (rt *Runtime) Children(entity donburi.Entity) []donburi.Entity {
	entry := rt.world.Entry(entity)
	if !entry.HasComponent(ChildrenComponent) {
		return nil
	}
	return ChildrenComponent.Get(entry).Entities
}

// ParentOf returns the node's parent, or false for the root and
// detached nodes.
func (rt *Runtime) ParentOf(entity donburi.Entity) (donburi.Entity, bool) {
	entry := rt.world.Entry(entity)
	if !entry.HasComponent(ParentComponent) {
		return 0, false
	}
	return ParentComponent.Get(entry).Entity, true
}
