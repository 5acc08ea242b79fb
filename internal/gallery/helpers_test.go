package gallery

import (
	"fmt"
	"image"
	"time"

	"gallery/internal/source"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{now: epoch} }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

type listCall struct {
	gen      uint64
	dir      string
	strategy source.SortStrategy
}

type fakeRequester struct {
	decodes []source.Request
	lists   []listCall
}

func (r *fakeRequester) Decode(req source.Request) { r.decodes = append(r.decodes, req) }

func (r *fakeRequester) List(gen uint64, dir string, strategy source.SortStrategy) {
	r.lists = append(r.lists, listCall{gen: gen, dir: dir, strategy: strategy})
}

func (r *fakeRequester) decodesOf(size source.Size) []source.Request {
	var out []source.Request
	for _, req := range r.decodes {
		if req.Size == size {
			out = append(out, req)
		}
	}
	return out
}

// trackedHandle counts Deallocate calls.
type trackedHandle struct {
	bounds   image.Rectangle
	released *int
}

func (h trackedHandle) Bounds() image.Rectangle { return h.bounds }
func (h trackedHandle) Deallocate()             { *h.released++ }

func trackingHandles(released *int) HandleFunc {
	return func(rgba source.Rgba) Handle {
		return trackedHandle{bounds: image.Rect(0, 0, rgba.Width, rgba.Height), released: released}
	}
}

func testRefs(n int) []source.ImageRef {
	refs := make([]source.ImageRef, n)
	for i := range refs {
		refs[i] = source.ImageRef{ID: source.ID(i), Location: source.File(fmt.Sprintf("img%d.png", i))}
	}
	return refs
}

func testRgba(w, h int) source.Rgba {
	return source.Rgba{Width: w, Height: h, Pixels: make([]byte, w*h*4)}
}
