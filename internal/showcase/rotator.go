// Package showcase rotates the hero's featured images on a fixed interval.
package showcase

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the time each showcase item stays in front.
const DefaultInterval = 3 * time.Second

// Ticker is the subset of *time.Ticker the rotator needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// Rotator is a cyclic cursor over a list of n items.
type Rotator struct {
	n        int
	interval time.Duration

	mu    sync.Mutex
	index int

	// NewTicker is replaced in tests.
	NewTicker func(time.Duration) Ticker
}

// New returns a rotator over n items at index 0. A non-positive interval
// uses DefaultInterval.
func New(n int, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Rotator{
		n:        n,
		interval: interval,
		NewTicker: func(d time.Duration) Ticker {
			return realTicker{time.NewTicker(d)}
		},
	}
}

// Len is the number of items rotated over.
func (r *Rotator) Len() int { return r.n }

// Index is the current item.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Next is the item after the current one, shown in the secondary mockup.
func (r *Rotator) Next() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.n == 0 {
		return 0
	}
	return (r.index + 1) % r.n
}

// Advance moves to the next item, wrapping around, and returns it.
func (r *Rotator) Advance() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.n == 0 {
		return 0
	}
	r.index = (r.index + 1) % r.n
	return r.index
}

// Run advances on every tick and calls onTick with the new index until ctx
// is done.
func (r *Rotator) Run(ctx context.Context, onTick func(int)) {
	t := r.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			i := r.Advance()
			if onTick != nil {
				onTick(i)
			}
		}
	}
}

// Timer is the handle of a running rotation.
type Timer struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start runs the rotation in the background. The returned Timer must be
// stopped by the owner on teardown.
func (r *Rotator) Start(onTick func(int)) *Timer {
	ctx, cancel := context.WithCancel(context.Background())
	t := &Timer{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		r.Run(ctx, onTick)
	}()
	return t
}

// Stop cancels the rotation and waits for it to exit. After Stop returns the
// tick callback is never called again. Stop is idempotent.
func (t *Timer) Stop() {
	if t == nil {
		return
	}
	t.once.Do(t.cancel)
	<-t.done
}
