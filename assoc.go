package rectray

import (
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// Tween association: each tween component animates one attribute of a
// sibling component. Every frame the runtime advances all tweens and
// writes their current values back to the attributes, so the rest of
// the pipeline only ever sees plain values.

// --- Attaching ---

func requireComponent(entry *donburi.Entry, ct donburi.IComponentType, what string) {
	if !entry.HasComponent(ct) {
		panic("rectray: cannot attach " + what + " tween: entity is missing the target component")
	}
}

// AttachOffsetTween animates Transform2D.Offset. The tween carries raw
// offset values, so the offset's units are preserved.
func AttachOffsetTween(entry *donburi.Entry, easing ease.TweenFunc, duration float64) *Interpolate[Vec2] {
	requireComponent(entry, TransformComponent, "offset")
	ip := NewInterpolate(easing, TransformComponent.Get(entry).Offset.Raw, duration)
	donburi.Add(entry, OffsetTween, &ip)
	return OffsetTween.Get(entry)
}

// AttachRotationTween animates Transform2D.Rotation.
func AttachRotationTween(entry *donburi.Entry, easing ease.TweenFunc, duration float64) *Interpolate[float64] {
	requireComponent(entry, TransformComponent, "rotation")
	ip := NewInterpolate(easing, TransformComponent.Get(entry).Rotation, duration)
	donburi.Add(entry, RotationTween, &ip)
	return RotationTween.Get(entry)
}

// AttachScaleTween animates Transform2D.Scale.
func AttachScaleTween(entry *donburi.Entry, easing ease.TweenFunc, duration float64) *Interpolate[Vec2] {
	requireComponent(entry, TransformComponent, "scale")
	ip := NewInterpolate(easing, TransformComponent.Get(entry).Scale, duration)
	donburi.Add(entry, ScaleTween, &ip)
	return ScaleTween.Get(entry)
}

// AttachDimensionTween animates the raw owned size. Panics if the
// dimension is copied or dynamic: those sizes belong to their source,
// and animating them would fight the measurement every frame.
func AttachDimensionTween(entry *donburi.Entry, easing ease.TweenFunc, duration float64) *Interpolate[Vec2] {
	requireComponent(entry, DimensionComponent, "dimension")
	d := DimensionComponent.Get(entry)
	if d.Type != DimensionOwned {
		panic("rectray: cannot attach a dimension tween to a copied or dynamic dimension")
	}
	ip := NewInterpolate(easing, d.Owned.Raw, duration)
	donburi.Add(entry, DimensionTween, &ip)
	return DimensionTween.Get(entry)
}

// AttachColorTween animates Coloring.Color.
func AttachColorTween(entry *donburi.Entry, easing ease.TweenFunc, duration float64) *Interpolate[Color] {
	requireComponent(entry, ColoringComponent, "color")
	ip := NewInterpolate(easing, ColoringComponent.Get(entry).Color, duration)
	donburi.Add(entry, ColorTween, &ip)
	return ColorTween.Get(entry)
}

// AttachOpacityTween animates Opacity.Value.
func AttachOpacityTween(entry *donburi.Entry, easing ease.TweenFunc, duration float64) *Interpolate[float64] {
	requireComponent(entry, OpacityComponent, "opacity")
	ip := NewInterpolate(easing, OpacityComponent.Get(entry).Value, duration)
	donburi.Add(entry, OpacityTween, &ip)
	return OpacityTween.Get(entry)
}

// AttachIndexTween animates Sprite.Index. Combine with NewRepeat for
// looping flipbook animation.
func AttachIndexTween(entry *donburi.Entry, ip Interpolate[int]) *Interpolate[int] {
	requireComponent(entry, SpriteComponent, "index")
	donburi.Add(entry, IndexTween, &ip)
	return IndexTween.Get(entry)
}

// --- Attribute setters ---

// SetOffset writes a raw offset value, routing through the offset
// tween when one is attached.
func SetOffset(entry *donburi.Entry, v Vec2) {
	if entry.HasComponent(OffsetTween) {
		OffsetTween.Get(entry).InterpolateTo(v)
		return
	}
	TransformComponent.Get(entry).Offset.Raw = v
}

// SetRotation writes a rotation, routing through the tween if present.
func SetRotation(entry *donburi.Entry, v float64) {
	if entry.HasComponent(RotationTween) {
		RotationTween.Get(entry).InterpolateTo(v)
		return
	}
	TransformComponent.Get(entry).Rotation = v
}

// SetScale writes a scale, routing through the tween if present.
func SetScale(entry *donburi.Entry, v Vec2) {
	if entry.HasComponent(ScaleTween) {
		ScaleTween.Get(entry).InterpolateTo(v)
		return
	}
	TransformComponent.Get(entry).Scale = v
}

// SetOwnedSize writes the raw owned size, routing through the tween if
// present.
func SetOwnedSize(entry *donburi.Entry, v Vec2) {
	if entry.HasComponent(DimensionTween) {
		DimensionTween.Get(entry).InterpolateTo(v)
		return
	}
	DimensionComponent.Get(entry).Owned.Raw = v
}

// SetColor writes a tint color, routing through the tween if present.
func SetColor(entry *donburi.Entry, v Color) {
	if entry.HasComponent(ColorTween) {
		ColorTween.Get(entry).InterpolateTo(v)
		return
	}
	ColoringComponent.Get(entry).Color = v
}

// SetOpacity writes an opacity, routing through the tween if present.
func SetOpacity(entry *donburi.Entry, v float64) {
	if entry.HasComponent(OpacityTween) {
		OpacityTween.Get(entry).InterpolateTo(v)
		return
	}
	OpacityComponent.Get(entry).Value = v
}

// --- Frame systems ---

func advanceKind[T Tweenable](w donburi.World, ct *donburi.ComponentType[Interpolate[T]], dt float64) {
	query.NewQuery(filter.Contains(ct)).Each(w, func(entry *donburi.Entry) {
		ct.Get(entry).update(dt)
	})
}

func (rt *Runtime) advanceTweens(dt float64) {
	advanceKind(rt.world, OffsetTween, dt)
	advanceKind(rt.world, RotationTween, dt)
	advanceKind(rt.world, ScaleTween, dt)
	advanceKind(rt.world, DimensionTween, dt)
	advanceKind(rt.world, ColorTween, dt)
	advanceKind(rt.world, OpacityTween, dt)
	advanceKind(rt.world, IndexTween, dt)
}

func applyKind[T Tweenable](w donburi.World, ct *donburi.ComponentType[Interpolate[T]], apply func(*donburi.Entry, T)) {
	query.NewQuery(filter.Contains(ct)).Each(w, func(entry *donburi.Entry) {
		apply(entry, ct.Get(entry).Get())
	})
}

func (rt *Runtime) applyTweens() {
	applyKind(rt.world, OffsetTween, func(e *donburi.Entry, v Vec2) {
		if e.HasComponent(TransformComponent) {
			TransformComponent.Get(e).Offset.Raw = v
		}
	})
	applyKind(rt.world, RotationTween, func(e *donburi.Entry, v float64) {
		if e.HasComponent(TransformComponent) {
			TransformComponent.Get(e).Rotation = v
		}
	})
	applyKind(rt.world, ScaleTween, func(e *donburi.Entry, v Vec2) {
		if e.HasComponent(TransformComponent) {
			TransformComponent.Get(e).Scale = v
		}
	})
	applyKind(rt.world, DimensionTween, func(e *donburi.Entry, v Vec2) {
		if e.HasComponent(DimensionComponent) {
			DimensionComponent.Get(e).Owned.Raw = v
		}
	})
	applyKind(rt.world, ColorTween, func(e *donburi.Entry, v Color) {
		if e.HasComponent(ColoringComponent) {
			ColoringComponent.Get(e).Color = v
		}
	})
	applyKind(rt.world, OpacityTween, func(e *donburi.Entry, v float64) {
		if e.HasComponent(OpacityComponent) {
			OpacityComponent.Get(e).Value = v
		}
	})
	applyKind(rt.world, IndexTween, func(e *donburi.Entry, v int) {
		if e.HasComponent(SpriteComponent) {
			SpriteComponent.Get(e).Index = v
		}
	})
}
