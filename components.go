package rectray

import (
	"github.com/yohamta/donburi"
)

// Component types registered with the host donburi world. Entities
// spawned through Runtime.Spawn carry TransformComponent and
// DimensionComponent; the rest are opt-in.
var (
	TransformComponent     = donburi.NewComponentType[Transform2D]()
	DimensionComponent     = donburi.NewComponentType[Dimension]()
	DimensionDataComponent = donburi.NewComponentType[DimensionData]()
	RectComponent          = donburi.NewComponentType[RotatedRect]()

	ParentComponent    = donburi.NewComponentType[Parent]()
	ChildrenComponent  = donburi.NewComponentType[Children]()
	ContainerComponent = donburi.NewComponentType[Container]()
	LinebreakComponent = donburi.NewComponentType[Linebreak]()

	EventFlagsComponent   = donburi.NewComponentType[EventFlags]()
	HitboxComponent       = donburi.NewComponentType[Hitbox]()
	CursorFocusComponent  = donburi.NewComponentType[CursorFocus]()
	CursorActionComponent = donburi.NewComponentType[CursorAction]()

	SizeSourceComponent = donburi.NewComponentType[SizeSourceRef]()
	MeasureComponent    = donburi.NewComponentType[Measure]()

	ColoringComponent = donburi.NewComponentType[Coloring]()
	OpacityComponent  = donburi.NewComponentType[Opacity]()
	SpriteComponent   = donburi.NewComponentType[Sprite]()
)

// Tween components, one per animatable attribute. See assoc.go for the
// systems that advance them and write their values back.
var (
	OffsetTween    = donburi.NewComponentType[Interpolate[Vec2]]()
	RotationTween  = donburi.NewComponentType[Interpolate[float64]]()
	ScaleTween     = donburi.NewComponentType[Interpolate[Vec2]]()
	DimensionTween = donburi.NewComponentType[Interpolate[Vec2]]()
	ColorTween     = donburi.NewComponentType[Interpolate[Color]]()
	OpacityTween   = donburi.NewComponentType[Interpolate[float64]]()
	IndexTween     = donburi.NewComponentType[Interpolate[int]]()
)

// Parent links a node to its parent entity.
type Parent struct {
	Entity donburi.Entity
}

// Children holds a node's children in layout order. The slice is owned
// by the tree operations in tree.go; do not reorder it directly while
// a frame is in flight.
type Children struct {
	Entities []donburi.Entity
}

// SizeSourceRef attaches an external natural-size source to a node
// with a copied dimension.
type SizeSourceRef struct {
	Source SizeSource
}

// Measure attaches a measurement callback to a node with a dynamic
// dimension. The callback runs once per frame before layout.
type Measure struct {
	Func func() (Vec2, bool)
}

// Coloring is an animatable tint color.
type Coloring struct {
	Color Color
}

// Opacity is an animatable alpha multiplier in [0, 1].
type Opacity struct {
	Value float64
}

// Sprite selects a frame of a sliced atlas. Index is animatable
// through IndexTween for flipbook animation.
type Sprite struct {
	Atlas Atlas
	Index int
}
