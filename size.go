package rectray

// --- Units ---

// SizeUnit selects how a stored scalar is converted to pixels. The
// conversion context is the parent's resolved size on the same axis, the
// node's em (local font size), and the global rem (root font size).
type SizeUnit uint8

const (
	// UnitPixels resolves to the raw value.
	UnitPixels SizeUnit = iota
	// UnitEm resolves to value * em.
	UnitEm
	// UnitRem resolves to value * rem.
	UnitRem
	// UnitPercent resolves to value * parent, with value stored as a
	// fraction (Percent divides by 100 on construction).
	UnitPercent
	// UnitMarginPx resolves to parent + value.
	UnitMarginPx
	// UnitMarginEm resolves to parent + value*em.
	UnitMarginEm
	// UnitMarginRem resolves to parent + value*rem.
	UnitMarginRem
)

// AsPixels converts value under the unit using the given context.
func (u SizeUnit) AsPixels(value, parent, em, rem float64) float64 {
	switch u {
	case UnitPixels:
		return value
	case UnitEm:
		return value * em
	case UnitRem:
		return value * rem
	case UnitPercent:
		return value * parent
	case UnitMarginPx:
		return parent + value
	case UnitMarginEm:
		return parent + value*em
	case UnitMarginRem:
		return parent + value*rem
	}
	panic("rectray: unknown SizeUnit")
}

// --- Scalar size ---

// Size is a unit-tagged scalar length. The zero value is 0 pixels.
type Size struct {
	Unit  SizeUnit
	Value float64
}

func (s Size) AsPixels(parent, em, rem float64) float64 {
	return s.Unit.AsPixels(s.Value, parent, em, rem)
}

// --- 2D size ---

// Size2 is a unit-tagged 2D size or offset. Each axis carries its own
// unit so, for example, width can be a percentage while height is in
// ems. The zero value is 0×0 pixels.
type Size2 struct {
	XUnit, YUnit SizeUnit
	Raw          Vec2
}

// Pixels returns a Size2 of x by y pixels.
func Pixels(x, y float64) Size2 {
	return Size2{UnitPixels, UnitPixels, Vec2{x, y}}
}

// Ems returns a Size2 of x by y ems.
func Ems(x, y float64) Size2 {
	return Size2{UnitEm, UnitEm, Vec2{x, y}}
}

// Rems returns a Size2 of x by y rems.
func Rems(x, y float64) Size2 {
	return Size2{UnitRem, UnitRem, Vec2{x, y}}
}

// Percent returns a Size2 covering the given percentages of the parent,
// with arguments in [0, 100].
func Percent(x, y float64) Size2 {
	return Size2{UnitPercent, UnitPercent, Vec2{x / 100, y / 100}}
}

// Full returns a Size2 covering the whole parent.
func Full() Size2 {
	return Percent(100, 100)
}

// Margin returns a Size2 that resolves to the parent size shrunk by
// 2*x horizontally and 2*y vertically, in pixels.
func Margin(x, y float64) Size2 {
	return Size2{UnitMarginPx, UnitMarginPx, Vec2{-2 * x, -2 * y}}
}

// NewSize2 combines two unit-tagged scalars into a Size2.
func NewSize2(x, y Size) Size2 {
	return Size2{x.Unit, y.Unit, Vec2{x.Value, y.Value}}
}

// AsPixels resolves both axes against the parent size.
func (s Size2) AsPixels(parent Vec2, em, rem float64) Vec2 {
	return Vec2{
		X: s.XUnit.AsPixels(s.Raw.X, parent.X, em, rem),
		Y: s.YUnit.AsPixels(s.Raw.Y, parent.Y, em, rem),
	}
}

// --- Font size ---

// FontUnit selects how a FontSize resolves to a pixel em value.
type FontUnit uint8

const (
	// FontInherit uses the parent's em. This is the zero value.
	FontInherit FontUnit = iota
	// FontPixels uses the raw value.
	FontPixels
	// FontEms multiplies the parent's em.
	FontEms
	// FontRems multiplies the root font size.
	FontRems
)

// FontSize sets a node's local font size (its em), which child Em
// units resolve against. The zero value inherits the parent's em.
type FontSize struct {
	Unit  FontUnit
	Value float64
}

func FontPx(v float64) FontSize  { return FontSize{FontPixels, v} }
func FontEm(v float64) FontSize  { return FontSize{FontEms, v} }
func FontRem(v float64) FontSize { return FontSize{FontRems, v} }

// Resolve computes the node's em from the parent's em and the root rem.
func (f FontSize) Resolve(parentEm, rem float64) float64 {
	switch f.Unit {
	case FontInherit:
		return parentEm
	case FontPixels:
		return f.Value
	case FontEms:
		return f.Value * parentEm
	case FontRems:
		return f.Value * rem
	}
	panic("rectray: unknown FontUnit")
}
