package gallery

import (
	"time"

	"gallery/internal/source"
	"k8s.io/klog/v2"
)

// PreviewCache maps image IDs to their thumbnail lifecycle. An entry exists
// iff a thumbnail decode was requested or completed for that ID.
type PreviewCache struct {
	entries   map[source.ID]Preview
	request   func(source.ImageRef)
	newHandle HandleFunc
	duration  time.Duration
}

// NewPreviewCache creates an empty cache. request is called once per image to
// start its thumbnail decode.
func NewPreviewCache(request func(source.ImageRef), newHandle HandleFunc, duration time.Duration) *PreviewCache {
	if newHandle == nil {
		newHandle = BufferHandle
	}
	return &PreviewCache{
		entries:   make(map[source.ID]Preview),
		request:   request,
		newHandle: newHandle,
		duration:  duration,
	}
}

// OnVisible marks ref Loading and requests its thumbnail unless an entry
// already exists. It reports whether a request was issued.
func (c *PreviewCache) OnVisible(ref source.ImageRef) bool {
	if _, ok := c.entries[ref.ID]; ok {
		return false
	}
	c.entries[ref.ID] = Loading{}
	klog.V(1).Infof("thumbnail requested: %s", ref)
	if c.request != nil {
		c.request(ref)
	}
	return true
}

// OnDecoded installs a Ready thumbnail for id, replacing any previous entry.
// The fade-in starts at at.
func (c *PreviewCache) OnDecoded(id source.ID, rgba source.Rgba, at time.Time) {
	if old, ok := c.entries[id].(Ready); ok {
		release(old.Thumbnail.Handle)
	}
	c.entries[id] = Ready{Thumbnail: newThumbnail(c.newHandle(rgba), at, c.duration)}
}

// OnHover points the zoom track of a Ready thumbnail at entered. Loading and
// unknown entries are left alone.
func (c *PreviewCache) OnHover(id source.ID, entered bool, at time.Time) {
	switch p := c.entries[id].(type) {
	case Ready:
		p.Thumbnail.Zoom.GoMut(entered, at)
	case Loading, nil:
	}
}

// IsAnimating reports whether any thumbnail is fading or zooming at now.
func (c *PreviewCache) IsAnimating(now time.Time) bool {
	for _, p := range c.entries {
		if previewAnimating(p, now) {
			return true
		}
	}
	return false
}

// Get returns the entry for id.
func (c *PreviewCache) Get(id source.ID) (Preview, bool) {
	p, ok := c.entries[id]
	return p, ok
}

func (c *PreviewCache) Len() int {
	return len(c.entries)
}

// Clear drops every entry and releases their handles.
func (c *PreviewCache) Clear() {
	for id, p := range c.entries {
		if r, ok := p.(Ready); ok {
			release(r.Thumbnail.Handle)
		}
		delete(c.entries, id)
	}
}
