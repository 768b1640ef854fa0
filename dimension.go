package rectray

// --- Dimension ---

// DimensionType selects where a node's size comes from.
type DimensionType uint8

const (
	// DimensionOwned sizes the node from its Size2 expression.
	DimensionOwned DimensionType = iota
	// DimensionCopied sizes the node from an external source, such as
	// an image's natural size.
	DimensionCopied
	// DimensionDynamic sizes the node from a measurement callback,
	// such as laid-out text extents.
	DimensionDynamic
)

// Dimension declares how a node's size is determined. The zero value
// is an owned 0×0 size.
type Dimension struct {
	Type DimensionType

	// Owned is the size expression for DimensionOwned.
	Owned Size2

	// FontSize sets this node's em, which its own Em units and its
	// children's inherited em resolve against. Zero inherits.
	FontSize FontSize

	// PreserveAspect derives one axis from the other using the last
	// measured natural size. Width drives height unless
	// HeightDrivesWidth is set. Only meaningful for DimensionOwned;
	// copied and dynamic sizes are natural already.
	PreserveAspect    bool
	HeightDrivesWidth bool

	measured    Vec2
	hasMeasured bool
}

// Owned returns an owned dimension with the given size expression.
func Owned(size Size2) Dimension {
	return Dimension{Type: DimensionOwned, Owned: size}
}

// Copied returns a dimension that tracks an external natural size.
func Copied() Dimension {
	return Dimension{Type: DimensionCopied}
}

// Dynamic returns a dimension sized by a measurement callback.
func Dynamic() Dimension {
	return Dimension{Type: DimensionDynamic}
}

// UpdateSize runs measure and records the result as the measured
// natural size. For owned dimensions without PreserveAspect the
// measurement is skipped entirely, so measure may be expensive.
func (d *Dimension) UpdateSize(measure func() (Vec2, bool)) {
	if d.Type == DimensionOwned && !d.PreserveAspect {
		return
	}
	if v, ok := measure(); ok {
		d.measured = v
		d.hasMeasured = true
	}
}

// SetMeasured records an externally measured natural size.
func (d *Dimension) SetMeasured(v Vec2) {
	d.measured = v
	d.hasMeasured = true
}

// Measured returns the last measured natural size, if any.
func (d *Dimension) Measured() (Vec2, bool) {
	return d.measured, d.hasMeasured
}

// --- Resolved data ---

// DimensionData is a node's resolved sizing context: its size in
// pixels and its em. Children resolve their own units against it.
type DimensionData struct {
	Size Vec2
	Em   float64
}

// Resolve computes the node's DimensionData from the parent's. For
// copied and dynamic dimensions the size is the measured natural size,
// which is zero until the first measurement lands.
func (d *Dimension) Resolve(parent DimensionData, rem float64) DimensionData {
	em := d.FontSize.Resolve(parent.Em, rem)

	var size Vec2
	switch d.Type {
	case DimensionOwned:
		size = d.Owned.AsPixels(parent.Size, em, rem)
		if d.PreserveAspect && d.hasMeasured && d.measured.X > 0 && d.measured.Y > 0 {
			if d.HeightDrivesWidth {
				size.X = size.Y * d.measured.X / d.measured.Y
			} else {
				size.Y = size.X * d.measured.Y / d.measured.X
			}
		}
	case DimensionCopied, DimensionDynamic:
		size = d.measured
	default:
		panic("rectray: unknown DimensionType")
	}

	return DimensionData{Size: size, Em: em}
}
