package rectray

// --- Container ---

// Direction is a layout's major axis.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

// ChildRange restricts which children, by index, participate in a
// container's layout. The zero value includes all children. Children
// outside the range keep ordinary anchor positioning.
type ChildRange struct {
	Min, Max int
}

// Bounds clamps the range against n children. A zero or negative Max
// means unbounded.
func (r ChildRange) Bounds(n int) (lo, hi int) {
	lo, hi = r.Min, r.Max
	if hi <= 0 || hi > n {
		hi = n
	}
	if lo < 0 {
		lo = 0
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

// Container turns a node into a layout container: participating
// children are positioned by Layout instead of their own anchors.
// Their Offset still applies on top of the laid-out position.
type Container struct {
	Layout Layout
	// Margin is the gap between adjacent children, resolved against
	// the container's size.
	Margin Size2
	// Padding insets the content box from the container's rectangle.
	Padding Size2
	// Range restricts which children participate.
	Range ChildRange
}

// Linebreak is a pseudo-child for paragraph layouts: it forces a line
// break and contributes no rectangle of its own. Overhead adds
// vertical space when breaking an empty line.
type Linebreak struct {
	Overhead Size2
}

// --- Layout interface ---

// LayoutEntry is one participating child as seen by a layout.
type LayoutEntry struct {
	// Size is the child's resolved size in pixels.
	Size Vec2
	// Anchor is the child's own anchor, used for cross-axis (and for
	// span layouts, major-axis) alignment.
	Anchor Anchor
	// Linebreak marks a line-break pseudo-child.
	Linebreak bool
	// Overhead is the resolved Linebreak overhead.
	Overhead Vec2
}

// LayoutInput is the context handed to a layout.
type LayoutInput struct {
	// Size is the container's content size (rect minus padding).
	Size Vec2
	// Margin is the resolved gap between children.
	Margin Vec2
	// Entries are the participating children in order.
	Entries []LayoutEntry
}

// LayoutOutput is a layout's placements.
type LayoutOutput struct {
	// Offsets positions each entry's anchor point relative to the
	// content box's top-left corner. Line-break entries get a zero
	// offset and are never positioned.
	Offsets []Vec2
	// Size is the content size the layout actually used. Compact
	// layouts report their fitted size here; the container's
	// resolved size follows it.
	Size Vec2
}

// Layout computes placements for a container's children. Place must be
// pure: same input, same output.
type Layout interface {
	Place(in LayoutInput) LayoutOutput
}

// --- Stack ---

// StackLayout packs children edge to edge along its axis and fits the
// container to them. Cross-axis placement follows each child's own
// anchor fraction.
type StackLayout struct {
	Direction Direction
}

// HStack is a horizontal compact stack.
func HStack() StackLayout { return StackLayout{Horizontal} }

// VStack is a vertical compact stack.
func VStack() StackLayout { return StackLayout{Vertical} }

func (l StackLayout) Place(in LayoutInput) LayoutOutput {
	out := LayoutOutput{Offsets: make([]Vec2, len(in.Entries))}

	var cursor, cross float64
	for _, e := range in.Entries {
		if e.Linebreak {
			continue
		}
		major, minor := axes(l.Direction, e.Size)
		cursor += major + majorAxis(l.Direction, in.Margin)
		if minor > cross {
			cross = minor
		}
	}
	if cursor > 0 {
		cursor -= majorAxis(l.Direction, in.Margin)
	}

	pos := 0.0
	for i, e := range in.Entries {
		if e.Linebreak {
			continue
		}
		major, _ := axes(l.Direction, e.Size)
		a := e.Anchor.Or(AnchorCenter)
		majorOff := pos + major/2 + anchorMajor(l.Direction, a)*major
		minorOff := (anchorMinor(l.Direction, a) + 0.5) * cross
		out.Offsets[i] = compose(l.Direction, majorOff, minorOff)
		pos += major + majorAxis(l.Direction, in.Margin)
	}

	out.Size = compose(l.Direction, cursor, cross)
	return out
}

// --- Span ---

// SpanLayout distributes children inside a fixed-size container.
// Children gravitate along the major axis by the sign of their anchor:
// negative packs toward the start, zero centers, positive packs toward
// the end. Cross-axis placement follows the anchor fraction.
type SpanLayout struct {
	Direction Direction
}

// HBox is a horizontal fixed-size span.
func HBox() SpanLayout { return SpanLayout{Horizontal} }

// VBox is a vertical fixed-size span.
func VBox() SpanLayout { return SpanLayout{Vertical} }

func (l SpanLayout) Place(in LayoutInput) LayoutOutput {
	out := LayoutOutput{Offsets: make([]Vec2, len(in.Entries)), Size: in.Size}

	total, _ := axes(l.Direction, in.Size)
	margin := majorAxis(l.Direction, in.Margin)
	_, crossTotal := axes(l.Direction, in.Size)

	// Group widths per gravity bucket.
	var width [3]float64
	var count [3]int
	for _, e := range in.Entries {
		if e.Linebreak {
			continue
		}
		major, _ := axes(l.Direction, e.Size)
		g := gravity(l.Direction, e.Anchor)
		width[g] += major
		count[g]++
	}
	for g := range width {
		if count[g] > 1 {
			width[g] += margin * float64(count[g]-1)
		}
	}

	start := [3]float64{
		0,
		(total - width[1]) / 2,
		total - width[2],
	}

	var cursor [3]float64
	for i, e := range in.Entries {
		if e.Linebreak {
			continue
		}
		major, _ := axes(l.Direction, e.Size)
		a := e.Anchor.Or(AnchorCenter)
		g := gravity(l.Direction, a)
		majorOff := start[g] + cursor[g] + major/2 + anchorMajor(l.Direction, a)*major
		minorOff := (anchorMinor(l.Direction, a) + 0.5) * crossTotal
		out.Offsets[i] = compose(l.Direction, majorOff, minorOff)
		cursor[g] += major + margin
	}
	return out
}

// --- Paragraph ---

// ParagraphLayout wraps children into horizontal lines within the
// container's width, like text flow. A Linebreak pseudo-child forces a
// new line. The container's height fits the flowed lines.
type ParagraphLayout struct{}

func (ParagraphLayout) Place(in LayoutInput) LayoutOutput {
	out := LayoutOutput{Offsets: make([]Vec2, len(in.Entries))}

	type placed struct {
		index  int
		x      float64
		size   Vec2
		anchor Anchor
	}

	var (
		line []placed
		x, y float64
	)

	flush := func(lineH float64) {
		for _, p := range line {
			a := p.anchor.Or(AnchorCenter)
			out.Offsets[p.index] = Vec2{
				X: p.x + p.size.X/2 + a.X*p.size.X,
				Y: y + lineH/2 + a.Y*lineH,
			}
		}
		line = line[:0]
		x = 0
		y += lineH + in.Margin.Y
	}

	lineHeight := func() float64 {
		var h float64
		for _, p := range line {
			if p.size.Y > h {
				h = p.size.Y
			}
		}
		return h
	}

	for i, e := range in.Entries {
		if e.Linebreak {
			h := lineHeight()
			if len(line) == 0 {
				h = e.Overhead.Y
			}
			flush(h)
			continue
		}
		if len(line) > 0 && x+e.Size.X > in.Size.X {
			flush(lineHeight())
		}
		line = append(line, placed{index: i, x: x, size: e.Size, anchor: e.Anchor})
		x += e.Size.X + in.Margin.X
	}
	if len(line) > 0 {
		flush(lineHeight())
	}
	if y > 0 {
		y -= in.Margin.Y
	}

	out.Size = Vec2{in.Size.X, y}
	return out
}

// --- Bounds ---

// BoundsLayout is a passthrough: each child keeps its own anchor
// positioning but inside the padded content box. Useful to inset a
// subtree without giving up anchor placement.
type BoundsLayout struct{}

func (BoundsLayout) Place(in LayoutInput) LayoutOutput {
	out := LayoutOutput{Offsets: make([]Vec2, len(in.Entries)), Size: in.Size}
	for i, e := range in.Entries {
		if e.Linebreak {
			continue
		}
		a := e.Anchor.Or(AnchorCenter)
		out.Offsets[i] = Vec2{
			X: (a.X + 0.5) * in.Size.X,
			Y: (a.Y + 0.5) * in.Size.Y,
		}
	}
	return out
}

// --- Axis helpers ---

func axes(d Direction, v Vec2) (major, minor float64) {
	if d == Horizontal {
		return v.X, v.Y
	}
	return v.Y, v.X
}

func majorAxis(d Direction, v Vec2) float64 {
	if d == Horizontal {
		return v.X
	}
	return v.Y
}

func anchorMajor(d Direction, a Anchor) float64 {
	if d == Horizontal {
		return a.X
	}
	return a.Y
}

func anchorMinor(d Direction, a Anchor) float64 {
	if d == Horizontal {
		return a.Y
	}
	return a.X
}

func compose(d Direction, major, minor float64) Vec2 {
	if d == Horizontal {
		return Vec2{major, minor}
	}
	return Vec2{minor, major}
}

func gravity(d Direction, a Anchor) int {
	f := anchorMajor(d, a.Or(AnchorCenter))
	switch {
	case f < 0:
		return 0
	case f > 0:
		return 2
	}
	return 1
}
