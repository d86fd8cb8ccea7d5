// Package gallery holds the selection state of the project modal and the
// testimonial carousel.
package gallery

import "sync"

// Locker suspends page scrolling until the returned release func is called.
type Locker interface {
	Acquire() (release func())
}

// ScrollLock is a counted page-scroll lock. Scrolling is suspended while at
// least one hold is outstanding.
type ScrollLock struct {
	mu      sync.Mutex
	holders int
}

// Acquire takes a hold. The release func is idempotent.
func (l *ScrollLock) Acquire() func() {
	l.mu.Lock()
	l.holders++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.holders--
			l.mu.Unlock()
		})
	}
}

// Locked reports whether scrolling is suspended.
func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders > 0
}
