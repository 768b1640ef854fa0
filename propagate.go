package rectray

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// Frame resolution: measurement sync, then a single depth-first walk
// that resolves dimensions, runs container layouts, and propagates
// transforms into RectComponent.

func setComponent[T any](entry *donburi.Entry, ct *donburi.ComponentType[T], v T) {
	if entry.HasComponent(ct) {
		ct.SetValue(entry, v)
		return
	}
	donburi.Add(entry, ct, &v)
}

// --- Measurement sync ---

var (
	copiedQuery  = query.NewQuery(filter.Contains(DimensionComponent, SizeSourceComponent))
	dynamicQuery = query.NewQuery(filter.Contains(DimensionComponent, MeasureComponent))
)

// syncMeasurements pulls natural sizes from size sources and
// measurement callbacks into the dimensions, before layout runs.
func (rt *Runtime) syncMeasurements() {
	copiedQuery.Each(rt.world, func(entry *donburi.Entry) {
		src := SizeSourceComponent.Get(entry).Source
		if src == nil {
			return
		}
		DimensionComponent.Get(entry).UpdateSize(src.NaturalSize)
	})
	dynamicQuery.Each(rt.world, func(entry *donburi.Entry) {
		f := MeasureComponent.Get(entry).Func
		if f == nil {
			return
		}
		DimensionComponent.Get(entry).UpdateSize(f)
	})
}

// --- Propagation walk ---

func (rt *Runtime) layoutAndPropagate() {
	rootData := DimensionData{Size: rt.viewport, Em: rt.rem}
	rootRect := RotatedRect{
		Center:     rt.viewport.Scale(0.5),
		HalfExtent: rt.viewport.Scale(0.5),
		Scale:      Vec2{1, 1},
	}
	rootEntry := rt.world.Entry(rt.root)
	setComponent(rootEntry, RectComponent, rootRect)
	setComponent(rootEntry, DimensionDataComponent, rootData)

	for _, child := range rt.Children(rt.root) {
		rt.resolveNode(child, rootRect, rootData, nil)
	}
}

// resolveNode resolves one node and recurses. placed is non-nil when a
// parent layout positioned this node; it is the anchor-point offset
// from the parent's top-left corner, before the node's own Offset.
func (rt *Runtime) resolveNode(e donburi.Entity, parentRect RotatedRect, parentData DimensionData, placed *Vec2) {
	if !rt.world.Valid(e) {
		return
	}
	entry := rt.world.Entry(e)
	if !entry.HasComponent(TransformComponent) || !entry.HasComponent(DimensionComponent) {
		rt.debugf("skipping node %d: missing transform or dimension", e)
		return
	}

	t := *TransformComponent.Get(entry)
	data := DimensionComponent.Get(entry).Resolve(parentData, rt.rem)

	children := rt.Children(e)

	// Containers run their layout first: compact layouts feed the
	// fitted size back into the node's own rectangle.
	var (
		offsets []Vec2
		lo, hi  int
	)
	if entry.HasComponent(ContainerComponent) {
		c := ContainerComponent.Get(entry)
		if c.Layout != nil {
			offsets, lo, hi, data.Size = rt.placeContainer(c, children, data)
		}
	}

	var rect RotatedRect
	if placed != nil {
		offset := t.Offset.AsPixels(parentData.Size, data.Em, rt.rem)
		rect = resolveRectAt(parentRect, t, data.Size, placed.Add(offset))
	} else {
		rect = resolveRect(parentRect, t, data.Size, parentData.Size, data.Em, rt.rem)
	}

	setComponent(entry, DimensionDataComponent, data)
	setComponent(entry, RectComponent, rect)

	for i, child := range children {
		centry := rt.world.Entry(child)
		if centry.HasComponent(LinebreakComponent) {
			continue
		}
		var p *Vec2
		if offsets != nil && i >= lo && i < hi {
			off := offsets[i-lo]
			p = &off
		}
		rt.resolveNode(child, rect, data, p)
	}
}

// placeContainer resolves participating children against the
// container's sizing context and runs the layout. It returns the
// anchor-point offsets (already inset by padding), the participating
// index range, and the container's resolved size.
func (rt *Runtime) placeContainer(c *Container, children []donburi.Entity, data DimensionData) ([]Vec2, int, int, Vec2) {
	lo, hi := c.Range.Bounds(len(children))
	pad := c.Padding.AsPixels(data.Size, data.Em, rt.rem)
	margin := c.Margin.AsPixels(data.Size, data.Em, rt.rem)
	content := data.Size.Sub(pad.Scale(2))

	entries := make([]LayoutEntry, 0, hi-lo)
	for _, child := range children[lo:hi] {
		centry := rt.world.Entry(child)
		var le LayoutEntry
		switch {
		case centry.HasComponent(LinebreakComponent):
			le.Linebreak = true
			le.Overhead = LinebreakComponent.Get(centry).Overhead.AsPixels(content, data.Em, rt.rem)
		case centry.HasComponent(DimensionComponent):
			cd := DimensionComponent.Get(centry).Resolve(DimensionData{Size: content, Em: data.Em}, rt.rem)
			le.Size = cd.Size
			if centry.HasComponent(TransformComponent) {
				le.Anchor = TransformComponent.Get(centry).anchor()
			}
		}
		entries = append(entries, le)
	}

	out := c.Layout.Place(LayoutInput{Size: content, Margin: margin, Entries: entries})

	for i := range out.Offsets {
		out.Offsets[i] = out.Offsets[i].Add(pad)
	}
	return out.Offsets, lo, hi, out.Size.Add(pad.Scale(2))
}
