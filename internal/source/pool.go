package source

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/semaphore"
	"k8s.io/klog/v2"
)

// Request asks for one image to be decoded at one size. Gen is the directory
// generation the request was issued under and is echoed back in the Result.
type Request struct {
	Gen  uint64
	Ref  ImageRef
	Size Size
}

// Result is the completion of a Request.
type Result struct {
	Request
	Image Rgba
	Err   error
}

// Listing is the completion of a directory listing.
type Listing struct {
	Gen    uint64
	Dir    string
	Images []ImageRef
	Err    error
}

// Sink receives completions. Methods are called from pool goroutines.
type Sink interface {
	Decoded(Result)
	Listed(Listing)
}

// DecodeFunc performs one blocking decode.
type DecodeFunc func(ref ImageRef, size Size, resampler Resampler) (Rgba, error)

// PoolOptions configures a Pool
type PoolOptions struct {
	Workers   int // concurrent decodes; <1 means GOMAXPROCS
	CacheSize int // decoded buffers kept for reuse; <1 disables the cache
	Resampler Resampler
	Decode    DecodeFunc // defaults to Decode
}

// PoolStats provides statistics about decoding
type PoolStats struct {
	Requested int
	Decoded   int
	CacheHits int
	Failed    int
}

// cacheKey identifies one decoded buffer. The backing file's modification
// time and length are part of the key so an image rewritten in place is
// decoded again.
type cacheKey struct {
	location string
	modTime  int64
	length   int64
	width    int
	height   int
}

func keyFor(ref ImageRef, size Size) cacheKey {
	k := cacheKey{location: ref.Location.String()}
	if path, ok := backingFile(ref.Location); ok {
		if info, err := os.Stat(path); err == nil {
			k.modTime, k.length = info.ModTime().UnixNano(), info.Size()
		}
	}
	if t, ok := size.(Thumbnail); ok {
		k.width, k.height = t.Width, t.Height
	}
	return k
}

// Pool runs decodes and listings off the caller's goroutine. Submitting never
// blocks; completions may arrive in any order.
type Pool struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	sem       *semaphore.Weighted
	cache     *lru.Cache[cacheKey, Rgba]
	resampler Resampler
	decode    DecodeFunc
	sink      Sink

	mu    sync.Mutex
	stats PoolStats
}

// NewPool creates a Pool delivering completions to sink.
func NewPool(opts PoolOptions, sink Sink) *Pool {
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if opts.Resampler == nil {
		opts.Resampler = DefaultResampler
	}
	if opts.Decode == nil {
		opts.Decode = Decode
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		ctx:       ctx,
		cancel:    cancel,
		sem:       semaphore.NewWeighted(int64(workers)),
		resampler: opts.Resampler,
		decode:    opts.Decode,
		sink:      sink,
	}

	if opts.CacheSize > 0 {
		cache, err := lru.New[cacheKey, Rgba](opts.CacheSize)
		if err != nil {
			klog.Errorf("Failed to create decode cache: %v", err)
		} else {
			p.cache = cache
		}
	}

	klog.V(1).Infof("decode pool: %d workers, cache %d, resampler %s", workers, opts.CacheSize, p.resampler.Name())
	return p
}

// Decode schedules req. The Result is delivered to the sink.
func (p *Pool) Decode(req Request) {
	p.mu.Lock()
	p.stats.Requested++
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.sink.Decoded(p.run(req))
	}()
}

// List schedules a directory listing. The Listing is delivered to the sink.
func (p *Pool) List(gen uint64, dir string, strategy SortStrategy) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		images, err := List(dir, strategy)
		if err != nil {
			images = []ImageRef{}
		}
		p.sink.Listed(Listing{Gen: gen, Dir: dir, Images: images, Err: err})
	}()
}

func (p *Pool) run(req Request) Result {
	res := Result{Request: req}
	key := keyFor(req.Ref, req.Size)

	if p.cache != nil {
		if img, ok := p.cache.Get(key); ok {
			p.mu.Lock()
			p.stats.CacheHits++
			p.mu.Unlock()
			klog.V(1).Infof("Cache HIT: %s %v", req.Ref, req.Size)
			res.Image = img
			return res
		}
	}

	if err := p.sem.Acquire(p.ctx, 1); err != nil {
		res.Err = backgroundError(key.location, err)
		return res
	}
	defer p.sem.Release(1)

	res.Image, res.Err = p.safeDecode(req)

	p.mu.Lock()
	if res.Err != nil {
		p.stats.Failed++
	} else {
		p.stats.Decoded++
	}
	p.mu.Unlock()

	if res.Err == nil && p.cache != nil {
		p.cache.Add(key, res.Image)
	}
	return res
}

// safeDecode turns a panicking decode into a background failure.
func (p *Pool) safeDecode(req Request) (img Rgba, err error) {
	defer func() {
		if r := recover(); r != nil {
			img = Rgba{}
			err = backgroundError(req.Ref.Location.String(), fmt.Errorf("panic: %v", r))
		}
	}()

	if err := p.ctx.Err(); err != nil {
		return Rgba{}, backgroundError(req.Ref.Location.String(), err)
	}
	return p.decode(req.Ref, req.Size, p.resampler)
}

// Stats returns current decode statistics
func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// Purge drops every cached buffer.
func (p *Pool) Purge() {
	if p.cache != nil {
		p.cache.Purge()
	}
}

// Stop aborts queued work and waits for running goroutines. Work that had not
// started completes with ErrBackground, so the sink must keep accepting
// (or discarding) deliveries until Stop returns.
func (p *Pool) Stop() {
	p.cancel()
	p.wg.Wait()
}
