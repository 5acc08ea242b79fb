package gallery

import (
	"sync"

	"gallery/internal/source"
)

// Loop queues messages from any goroutine for the controller goroutine. It
// also serves as the source.Sink of a decode pool.
type Loop struct {
	ch        chan Message
	done      chan struct{}
	closeOnce sync.Once
}

// NewLoop creates a loop buffering up to size messages.
func NewLoop(size int) *Loop {
	if size < 1 {
		size = 1
	}
	return &Loop{
		ch:   make(chan Message, size),
		done: make(chan struct{}),
	}
}

// Send queues msg. It blocks while the buffer is full and returns false once
// the loop is closed.
func (l *Loop) Send(msg Message) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.ch <- msg:
		return true
	case <-l.done:
		return false
	}
}

// Pump applies up to max queued messages to c without waiting for more.
// It returns the number applied.
func (l *Loop) Pump(c *Controller, max int) int {
	n := 0
	for n < max {
		select {
		case msg := <-l.ch:
			c.Update(msg)
			n++
		default:
			return n
		}
	}
	return n
}

// Close stops accepting messages. Pending senders are released.
func (l *Loop) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}

func (l *Loop) Decoded(r source.Result) { l.Send(Decoded{r}) }

func (l *Loop) Listed(li source.Listing) { l.Send(ImagesListed{li}) }

var _ source.Sink = (*Loop)(nil)
