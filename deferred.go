package rectray

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Deferred tasks ---

// Task is a unit of work polled once per frame until it reports done.
// Tasks bridge asynchronous asset loading into the synchronous frame
// loop: an atlas slice, for example, waits for its image to resolve.
type Task interface {
	// Poll attempts the work. It must be cheap while blocked and
	// idempotent: after returning true it is dropped.
	Poll() bool
}

// TaskFunc adapts a function to Task.
type TaskFunc func() bool

func (f TaskFunc) Poll() bool { return f() }

// Defer queues a task for per-frame polling.
func (rt *Runtime) Defer(t Task) {
	rt.deferred = append(rt.deferred, t)
}

func (rt *Runtime) pollDeferred() {
	// A task's Poll may Defer follow-up work; that lands on
	// rt.deferred and must survive into the next frame, so the queue
	// is swapped out before polling.
	pending := rt.deferred
	rt.deferred = nil
	kept := pending[:0]
	for _, t := range pending {
		if t.Poll() {
			rt.debugf("deferred task complete")
			continue
		}
		kept = append(kept, t)
	}
	rt.deferred = append(kept, rt.deferred...)
}

// --- Assets ---

// Assets resolves images by path. Resolution may complete on a later
// frame than it was requested, which is what deferred tasks absorb.
type Assets interface {
	Resolve(path string) (*ebiten.Image, bool)
}

// ImageRegistry is a map-backed Assets for hosts that load everything
// up front, and for tests.
type ImageRegistry struct {
	images map[string]*ebiten.Image
}

func NewImageRegistry() *ImageRegistry {
	return &ImageRegistry{images: map[string]*ebiten.Image{}}
}

// Register makes an image resolvable under path.
func (r *ImageRegistry) Register(path string, img *ebiten.Image) {
	r.images[path] = img
}

func (r *ImageRegistry) Resolve(path string) (*ebiten.Image, bool) {
	img, ok := r.images[path]
	return img, ok
}

// --- Atlas task ---

// AtlasTask waits for an image to resolve, slices it into frames, and
// hands the atlas to its callback. Queue with Runtime.Defer.
type AtlasTask struct {
	Assets  Assets
	Path    string
	Cols    int
	Rows    int
	Padding Vec2
	// OnReady receives the sliced atlas, typically to fill a node's
	// Sprite component and size source.
	OnReady func(Atlas)
}

func (t *AtlasTask) Poll() bool {
	img, ok := t.Assets.Resolve(t.Path)
	if !ok {
		return false
	}
	atlas := SliceAtlas(img, t.Cols, t.Rows, t.Padding)
	if t.OnReady != nil {
		t.OnReady(atlas)
	}
	return true
}
