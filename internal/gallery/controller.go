package gallery

import (
	"time"

	"gallery/internal/anim"
	"gallery/internal/source"
	"k8s.io/klog/v2"
)

// PlaceholderLimit is the number of empty cards drawn while a listing is in flight.
const PlaceholderLimit = 1000

// Requester starts background work. Both methods must return immediately;
// completions come back as Decoded and ImagesListed messages.
type Requester interface {
	Decode(source.Request)
	List(gen uint64, dir string, strategy source.SortStrategy)
}

// Options configures a Controller.
type Options struct {
	Requester Requester
	NewHandle HandleFunc
	Clock     func() time.Time
	Duration  time.Duration // transition length; 0 makes transitions instant
	Easing    anim.Easing
	Sort      source.SortStrategy
}

// Controller owns the image list, the preview cache and the viewer. It is not
// safe for concurrent use: every Message is handled to completion on one
// goroutine.
type Controller struct {
	requester Requester
	clock     func() time.Time

	now     time.Time
	gen     uint64
	dir     string
	sort    source.SortStrategy
	listing bool
	images  []source.ImageRef

	previews *PreviewCache
	viewer   *Viewer
}

func New(opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Sort == nil {
		opts.Sort = source.GetSortStrategy(source.SortNatural)
	}
	c := &Controller{
		requester: opts.Requester,
		clock:     opts.Clock,
		sort:      opts.Sort,
		viewer:    NewViewer(opts.NewHandle, opts.Duration, opts.Easing),
	}
	c.now = c.clock()
	c.previews = NewPreviewCache(c.requestThumbnail, opts.NewHandle, opts.Duration)
	return c
}

// Update applies one message.
func (c *Controller) Update(msg Message) {
	switch msg := msg.(type) {
	case Tick:
		c.now = msg.Now
	case LoadDirectory:
		c.load(msg.Path)
	case Reload:
		if c.dir != "" {
			c.load(c.dir)
		}
	case SortChanged:
		if msg.Strategy == nil {
			return
		}
		c.sort = msg.Strategy
		klog.Infof("sort order: %s", c.sort.Name())
		if c.dir != "" {
			c.load(c.dir)
		}
	case ImagesListed:
		c.listed(msg.Listing)
	case ImageVisible:
		if ref, ok := c.lookup(msg.ID); ok {
			c.previews.OnVisible(ref)
		}
	case ThumbnailHovered:
		c.previews.OnHover(msg.ID, msg.Entered, c.clock())
	case Open:
		c.open(msg.ID)
	case Close:
		c.viewer.Close(c.clock())
	case Navigate:
		ref, ok := c.viewer.Navigate(msg.Direction, c.images, c.clock())
		if !ok {
			return
		}
		klog.V(1).Infof("navigate %s: %s", msg.Direction, ref)
		c.request(ref, source.Original{})
	case Decoded:
		c.decoded(msg.Result)
	default:
		klog.Warningf("unhandled message %T", msg)
	}
}

func (c *Controller) load(dir string) {
	c.gen++
	c.dir = dir
	c.images = nil
	c.listing = true
	c.previews.Clear()
	c.viewer.Close(c.clock())
	klog.V(1).Infof("listing %s (generation %d)", dir, c.gen)
	if c.requester != nil {
		c.requester.List(c.gen, dir, c.sort)
	}
}

func (c *Controller) listed(l source.Listing) {
	if l.Gen != c.gen {
		klog.V(1).Infof("dropping listing of %s from generation %d", l.Dir, l.Gen)
		return
	}
	c.listing = false
	if l.Err != nil {
		klog.Errorf("failed to list %s: %v", l.Dir, l.Err)
		c.images = []source.ImageRef{}
		return
	}
	c.images = l.Images
	klog.Infof("found %d images in %s", len(c.images), l.Dir)
}

func (c *Controller) open(id source.ID) {
	ref, ok := c.lookup(id)
	if !ok {
		klog.Warningf("open: no image %d in %s", id, c.dir)
		return
	}
	c.viewer.Open(ref.ID, int(ref.ID), c.clock())
	c.request(ref, source.Original{})
}

func (c *Controller) decoded(r source.Result) {
	if r.Gen != c.gen {
		klog.V(1).Infof("dropping %s result for %s from generation %d", r.Size, r.Ref, r.Gen)
		return
	}
	switch r.Size.(type) {
	case source.Thumbnail:
		if r.Err != nil {
			klog.Warningf("thumbnail %s: %v", r.Ref, r.Err)
			return
		}
		c.previews.OnDecoded(r.Ref.ID, r.Image, c.clock())
	case source.Original:
		if r.Err != nil {
			klog.Errorf("image %s: %v", r.Ref, r.Err)
			c.viewer.Fail(r.Ref.ID)
			return
		}
		if !c.viewer.Show(r.Ref.ID, r.Image, c.clock()) {
			klog.V(1).Infof("discarding stale image %s", r.Ref)
		}
	}
}

func (c *Controller) requestThumbnail(ref source.ImageRef) {
	c.request(ref, source.Thumbnail{Width: PreviewWidth, Height: PreviewHeight})
}

func (c *Controller) request(ref source.ImageRef, size source.Size) {
	if c.requester == nil {
		return
	}
	c.requester.Decode(source.Request{Gen: c.gen, Ref: ref, Size: size})
}

// lookup finds an image of the current list. IDs are dense, so the ID is
// also the list position.
func (c *Controller) lookup(id source.ID) (source.ImageRef, bool) {
	i := int(id)
	if i < 0 || i >= len(c.images) || c.images[i].ID != id {
		return source.ImageRef{}, false
	}
	return c.images[i], true
}

// IsAnimating reports whether any track is in flight at the last Tick.
// Frames need to be redrawn only while it is true or after an event.
func (c *Controller) IsAnimating() bool {
	return c.previews.IsAnimating(c.now) || c.viewer.IsAnimating(c.now)
}

// Now is the instant of the last Tick.
func (c *Controller) Now() time.Time { return c.now }

func (c *Controller) Dir() string                          { return c.dir }
func (c *Controller) Sort() source.SortStrategy            { return c.sort }
func (c *Controller) Listing() bool                        { return c.listing }
func (c *Controller) Images() []source.ImageRef            { return c.images }
func (c *Controller) Preview(id source.ID) (Preview, bool) { return c.previews.Get(id) }

// Viewer exposes the viewer for read-only queries.
func (c *Controller) Viewer() *Viewer { return c.viewer }

// ViewerOpen reports whether keyboard input should go to the viewer.
func (c *Controller) ViewerOpen() bool {
	return c.viewer.IsOpen(c.clock())
}

// Current returns the image the viewer targets.
func (c *Controller) Current() (source.ImageRef, bool) {
	id, ok := c.viewer.Target()
	if !ok {
		return source.ImageRef{}, false
	}
	return c.lookup(id)
}
