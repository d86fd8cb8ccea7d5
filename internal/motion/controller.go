package motion

import "time"

type reveal struct {
	trigger string
	start   Anchor
	tl      *Timeline
	entered bool
}

type scrub struct {
	trigger    string
	start, end Anchor
	fn         ScrubMap
	progress   float64
	measured   bool
	// moved is set once scrolling has changed the progress; until then
	// the scrub leaves its targets to other animations.
	moved bool
}

type element struct {
	owners map[*Scope]struct{}
	box    Box
	known  bool
}

// Scope groups the registrations of one component instance. It is returned
// by Controller.Scope and released with Controller.Release; every method is
// a no-op once the scope has been released.
type Scope struct {
	id       uint64
	owner    string
	c        *Controller
	plays    []*Timeline
	reveals  []*reveal
	scrubs   []*scrub
	elements []string
}

// Released reports whether the scope has been handed back.
func (s *Scope) Released() bool { return s.c == nil }

func (s *Scope) declare(ids ...string) {
	for _, id := range ids {
		el, ok := s.c.elements[id]
		if !ok {
			el = &element{owners: make(map[*Scope]struct{})}
			s.c.elements[id] = el
		}
		if _, mine := el.owners[s]; mine {
			continue
		}
		el.owners[s] = struct{}{}
		s.elements = append(s.elements, id)
	}
}

// Play registers an entrance timeline and starts it.
func (s *Scope) Play(tl *Timeline) {
	if s.c == nil || tl == nil {
		return
	}
	s.declare(tl.Targets()...)
	s.plays = append(s.plays, tl)
	tl.Play()
}

// Add registers a timeline without starting it. The owner plays it later,
// e.g. in response to a click.
func (s *Scope) Add(tl *Timeline) {
	if s.c == nil || tl == nil {
		return
	}
	s.declare(tl.Targets()...)
	s.plays = append(s.plays, tl)
}

// Reveal registers tl to play when scrolling down past start on trigger and
// to reverse when scrolling back up past it.
func (s *Scope) Reveal(trigger string, start Anchor, tl *Timeline) {
	if s.c == nil || tl == nil {
		return
	}
	s.declare(trigger)
	s.declare(tl.Targets()...)
	r := &reveal{trigger: trigger, start: start, tl: tl}
	s.reveals = append(s.reveals, r)
	s.c.evalReveal(r)
}

// Scrub registers a scroll-proportional mapping between start and end on
// trigger.
func (s *Scope) Scrub(trigger string, start, end Anchor, fn ScrubMap) {
	if s.c == nil || fn == nil {
		return
	}
	s.declare(trigger)
	for target := range fn(0) {
		s.declare(target)
	}
	sc := &scrub{trigger: trigger, start: start, end: end, fn: fn}
	s.scrubs = append(s.scrubs, sc)
	s.c.evalScrub(sc)
}

// Controller observes the viewport and advances the timelines of every live
// scope.
type Controller struct {
	nextID   uint64
	scopes   []*Scope
	elements map[string]*element
	viewport float64
	scrollY  float64
}

// NewController returns a controller for a viewport of the given height.
func NewController(viewportHeight float64) *Controller {
	return &Controller{
		elements: make(map[string]*element),
		viewport: viewportHeight,
	}
}

// Scope opens a registration scope for a component. A live scope under the
// same owner is released first, so a component never holds two.
func (c *Controller) Scope(owner string) *Scope {
	for _, live := range c.scopes {
		if live.owner == owner {
			c.Release(live)
			break
		}
	}
	c.nextID++
	s := &Scope{id: c.nextID, owner: owner, c: c}
	c.scopes = append(c.scopes, s)
	return s
}

// Release tears down every registration of s. It reports false if s was
// already released or belongs to another controller.
func (c *Controller) Release(s *Scope) bool {
	if s == nil || s.c != c {
		return false
	}
	for i, live := range c.scopes {
		if live == s {
			c.scopes = append(c.scopes[:i], c.scopes[i+1:]...)
			break
		}
	}
	for _, id := range s.elements {
		el, ok := c.elements[id]
		if !ok {
			continue
		}
		delete(el.owners, s)
		if len(el.owners) == 0 {
			delete(c.elements, id)
		}
	}
	s.c = nil
	s.plays, s.reveals, s.scrubs, s.elements = nil, nil, nil, nil
	return true
}

// Layout records the document box of a registered element and re-evaluates
// triggers. Unregistered ids are ignored.
func (c *Controller) Layout(id string, b Box) bool {
	el, ok := c.elements[id]
	if !ok {
		return false
	}
	el.box, el.known = b, true
	c.evaluate()
	return true
}

// Resize updates the viewport height.
func (c *Controller) Resize(height float64) {
	if height <= 0 {
		return
	}
	c.viewport = height
	c.evaluate()
}

// Scroll moves the viewport to y, firing threshold crossings and updating
// scrubbed progress.
func (c *Controller) Scroll(y float64) {
	c.scrollY = y
	c.evaluate()
}

// ScrollY is the last observed scroll position.
func (c *Controller) ScrollY() float64 { return c.scrollY }

// Advance moves every running timeline forward in time by dt and reports
// whether anything changed.
func (c *Controller) Advance(dt time.Duration) bool {
	moved := false
	for _, s := range c.scopes {
		for _, tl := range s.plays {
			moved = tl.Advance(dt) || moved
		}
		for _, r := range s.reveals {
			moved = r.tl.Advance(dt) || moved
		}
	}
	return moved
}

// Animating reports whether any timeline is still running.
func (c *Controller) Animating() bool {
	for _, s := range c.scopes {
		for _, tl := range s.plays {
			if tl.Active() {
				return true
			}
		}
		for _, r := range s.reveals {
			if r.tl.Active() {
				return true
			}
		}
	}
	return false
}

// Frame returns the current values of every animated element. Scopes are
// applied in registration order; within a scope entrance timelines come
// first, then reveals, then scrubs.
func (c *Controller) Frame() map[string]PropertySet {
	out := make(map[string]PropertySet)
	apply := func(vals map[string]PropertySet) {
		for id, set := range vals {
			if _, ok := c.elements[id]; !ok {
				continue
			}
			cur, ok := out[id]
			if !ok {
				cur = PropertySet{}
				out[id] = cur
			}
			cur.Merge(set)
		}
	}
	for _, s := range c.scopes {
		for _, tl := range s.plays {
			apply(tl.Values())
		}
		for _, r := range s.reveals {
			apply(r.tl.Values())
		}
		for _, sc := range s.scrubs {
			if sc.moved {
				apply(sc.fn(sc.progress))
			}
		}
	}
	return out
}

// Scopes is the number of live scopes.
func (c *Controller) Scopes() int { return len(c.scopes) }

// Elements is the number of registered elements.
func (c *Controller) Elements() int { return len(c.elements) }

// Entered reports whether the reveal on trigger is past its start anchor.
func (c *Controller) Entered(trigger string) bool {
	for _, s := range c.scopes {
		for _, r := range s.reveals {
			if r.trigger == trigger && r.entered {
				return true
			}
		}
	}
	return false
}

// ScrubProgress returns the last progress of the scrub on trigger, and false
// when no measured scrub is registered for it.
func (c *Controller) ScrubProgress(trigger string) (float64, bool) {
	for _, s := range c.scopes {
		for _, sc := range s.scrubs {
			if sc.trigger == trigger && sc.measured {
				return sc.progress, true
			}
		}
	}
	return 0, false
}

func (c *Controller) evaluate() {
	for _, s := range c.scopes {
		for _, r := range s.reveals {
			c.evalReveal(r)
		}
		for _, sc := range s.scrubs {
			c.evalScrub(sc)
		}
	}
}

func (c *Controller) evalReveal(r *reveal) {
	el, ok := c.elements[r.trigger]
	if !ok || !el.known {
		return
	}
	past := c.scrollY >= r.start.ScrollPos(el.box, c.viewport)
	if past == r.entered {
		return
	}
	r.entered = past
	if past {
		r.tl.Play()
	} else {
		r.tl.Reverse()
	}
}

func (c *Controller) evalScrub(sc *scrub) {
	el, ok := c.elements[sc.trigger]
	if !ok || !el.known {
		return
	}
	start := sc.start.ScrollPos(el.box, c.viewport)
	end := sc.end.ScrollPos(el.box, c.viewport)
	p := Progress(c.scrollY, start, end)
	if p != sc.progress {
		sc.moved = true
	}
	sc.progress = p
	sc.measured = true
}
