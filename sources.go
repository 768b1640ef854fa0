package rectray

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Natural size sources ---

// SizeSource reports a natural size for nodes with copied dimensions.
// ok is false while the size is not yet known, for example before an
// asynchronous asset has loaded; the node keeps its last size (zero at
// first) until it is.
type SizeSource interface {
	NaturalSize() (Vec2, bool)
}

// SizeSourceFunc adapts a function to SizeSource.
type SizeSourceFunc func() (Vec2, bool)

func (f SizeSourceFunc) NaturalSize() (Vec2, bool) { return f() }

// FixedSize is a SizeSource with a constant size.
type FixedSize Vec2

func (s FixedSize) NaturalSize() (Vec2, bool) { return Vec2(s), true }

// ImageSource sizes a node from an ebiten image's bounds. A nil image
// reports not-ready.
type ImageSource struct {
	Image *ebiten.Image
}

func (s ImageSource) NaturalSize() (Vec2, bool) {
	if s.Image == nil {
		return Vec2{}, false
	}
	b := s.Image.Bounds()
	return Vec2{float64(b.Dx()), float64(b.Dy())}, true
}

// --- Render targets ---

// RenderTarget is an offscreen image a subtree can be drawn into, used
// as both a draw destination and a natural-size source.
type RenderTarget struct {
	Image *ebiten.Image
}

// NewRenderTarget allocates an offscreen image of the given pixel
// size.
func NewRenderTarget(w, h int) *RenderTarget {
	if w <= 0 || h <= 0 {
		panic("rectray: NewRenderTarget: size must be positive")
	}
	return &RenderTarget{Image: ebiten.NewImage(w, h)}
}

func (t *RenderTarget) NaturalSize() (Vec2, bool) {
	return ImageSource{t.Image}.NaturalSize()
}

// Resize reallocates the target at a new size, discarding contents.
func (t *RenderTarget) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		panic("rectray: RenderTarget.Resize: size must be positive")
	}
	if t.Image != nil {
		b := t.Image.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		t.Image.Deallocate()
	}
	t.Image = ebiten.NewImage(w, h)
}

// --- Atlases ---

// Atlas is a sprite sheet sliced into equal frames, indexed row-major.
type Atlas struct {
	Image  *ebiten.Image
	Frames []image.Rectangle
}

// SliceAtlas cuts an image into cols×rows frames with the given pixel
// padding between them.
func SliceAtlas(img *ebiten.Image, cols, rows int, padding Vec2) Atlas {
	if cols <= 0 || rows <= 0 {
		panic("rectray: SliceAtlas: cols and rows must be positive")
	}
	b := img.Bounds()
	fw := (float64(b.Dx()) - padding.X*float64(cols-1)) / float64(cols)
	fh := (float64(b.Dy()) - padding.Y*float64(rows-1)) / float64(rows)

	a := Atlas{Image: img, Frames: make([]image.Rectangle, 0, cols*rows)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x0 := b.Min.X + int(float64(c)*(fw+padding.X))
			y0 := b.Min.Y + int(float64(r)*(fh+padding.Y))
			a.Frames = append(a.Frames, image.Rect(x0, y0, x0+int(fw), y0+int(fh)))
		}
	}
	return a
}

// Len returns the number of frames.
func (a Atlas) Len() int { return len(a.Frames) }

// Frame returns the sub-image for frame i, clamped into range.
func (a Atlas) Frame(i int) *ebiten.Image {
	if len(a.Frames) == 0 {
		return a.Image
	}
	if i < 0 {
		i = 0
	}
	if i >= len(a.Frames) {
		i = len(a.Frames) - 1
	}
	return a.Image.SubImage(a.Frames[i]).(*ebiten.Image)
}

// FrameSize returns the size of one frame.
func (a Atlas) FrameSize() Vec2 {
	if len(a.Frames) == 0 {
		return Vec2{}
	}
	f := a.Frames[0]
	return Vec2{float64(f.Dx()), float64(f.Dy())}
}

// NaturalSize makes an Atlas usable as a SizeSource: a sprite node
// with a copied dimension takes one frame's size.
func (a Atlas) NaturalSize() (Vec2, bool) {
	if a.Image == nil || len(a.Frames) == 0 {
		return Vec2{}, false
	}
	return a.FrameSize(), true
}
