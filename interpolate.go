package rectray

import (
	"math"

	"github.com/tanema/gween/ease"
)

// --- Tweenable values ---

// Tweenable is the set of value types the interpolation engine can
// animate. Integers step through rounded intermediate values, which
// makes them suitable for sprite-sheet indices.
type Tweenable interface {
	~float64 | ~int | Vec2 | Color
}

func lerpValue[T Tweenable](from, to T, t float64) T {
	switch a := any(from).(type) {
	case float64:
		b := any(to).(float64)
		return any(a + (b-a)*t).(T)
	case int:
		b := any(to).(int)
		return any(a + int(math.Round(float64(b-a)*t))).(T)
	case Vec2:
		b := any(to).(Vec2)
		return any(a.Add(b.Sub(a).Scale(t))).(T)
	case Color:
		b := any(to).(Color)
		return any(a.Lerp(b, t)).(T)
	}
	panic("rectray: unsupported tween type")
}

// --- Interpolate ---

// Interpolate drives one value from its current position toward a
// target over a fixed duration with an easing curve. Retargeting is
// continuous: InterpolateTo starts from the current eased value, so
// interrupting an animation never causes a visual jump.
//
// Easing functions come from gween's ease package; nil means linear.
type Interpolate[T Tweenable] struct {
	from     T
	target   T
	elapsed  float64
	duration float64
	easing   ease.TweenFunc
	repeat   bool
	arrived  bool
}

// NewInterpolate returns an arrived interpolation resting at initial.
func NewInterpolate[T Tweenable](easing ease.TweenFunc, initial T, duration float64) Interpolate[T] {
	return Interpolate[T]{
		from:     initial,
		target:   initial,
		duration: duration,
		easing:   easing,
		arrived:  true,
	}
}

// NewRepeat returns an interpolation that cycles from initial to
// target forever, restarting each time the duration elapses. Used with
// int for flipbook sprite animation.
func NewRepeat[T Tweenable](easing ease.TweenFunc, initial, target T, duration float64) Interpolate[T] {
	return Interpolate[T]{
		from:     initial,
		target:   target,
		duration: duration,
		easing:   easing,
		repeat:   true,
	}
}

func (ip *Interpolate[T]) progress() float64 {
	if ip.duration <= 0 {
		return 1
	}
	t := ip.elapsed / ip.duration
	if ip.repeat {
		t = t - math.Floor(t)
	} else if t > 1 {
		t = 1
	}
	if ip.easing != nil {
		t = float64(ip.easing(float32(t), 0, 1, 1))
	}
	return t
}

// Get returns the current value.
func (ip *Interpolate[T]) Get() T {
	if ip.arrived {
		return ip.target
	}
	return lerpValue(ip.from, ip.target, ip.progress())
}

// Target returns the value the interpolation is heading toward.
func (ip *Interpolate[T]) Target() T {
	return ip.target
}

// Arrived reports whether the interpolation has settled. Repeating
// interpolations never arrive.
func (ip *Interpolate[T]) Arrived() bool {
	return ip.arrived
}

// InterpolateTo retargets the animation toward v, starting from the
// current value. A no-op if v is already the target.
func (ip *Interpolate[T]) InterpolateTo(v T) {
	if !ip.repeat && ip.target == v {
		return
	}
	ip.from = ip.Get()
	ip.target = v
	ip.elapsed = 0
	ip.arrived = false
	ip.repeat = false
}

// Set jumps to v immediately, cancelling any animation in flight.
func (ip *Interpolate[T]) Set(v T) {
	ip.from = v
	ip.target = v
	ip.elapsed = 0
	ip.arrived = true
	ip.repeat = false
}

// SetDuration changes the duration for subsequent retargets.
func (ip *Interpolate[T]) SetDuration(d float64) {
	ip.duration = d
}

func (ip *Interpolate[T]) update(dt float64) {
	if ip.arrived {
		return
	}
	ip.elapsed += dt
	if !ip.repeat && ip.elapsed >= ip.duration {
		ip.arrived = true
	}
}
