package page

import (
	"time"

	"github.com/niranjandahal/portfolio/internal/assets"
	"github.com/niranjandahal/portfolio/internal/content"
	"github.com/niranjandahal/portfolio/internal/gallery"
	"github.com/niranjandahal/portfolio/internal/motion"
	"github.com/niranjandahal/portfolio/internal/nav"
)

// DefaultViewportHeight is assumed until the browser reports its own.
const DefaultViewportHeight = 900

// maxFrameStep caps how far one frame can move the timelines, so a client
// that stopped polling for a while resumes mid-animation instead of
// skipping to the end.
const maxFrameStep = 250 * time.Millisecond

// Options configures a page.
type Options struct {
	Assets           assets.Resolver
	ShowcaseInterval time.Duration
	ViewportHeight   float64
}

// Page is the whole portfolio as seen by one visitor.
type Page struct {
	Content *content.Content
	Assets  assets.Resolver
	Motion  *motion.Controller
	Lock    *gallery.ScrollLock

	Nav          *Navigation
	Hero         *Hero
	Projects     *Projects
	Services     *Services
	Testimonials *Testimonials
	Contact      *Contact
	Footer       *Footer

	sections []Section
	scope    *motion.Scope
	mounted  bool
	closed   bool
	last     time.Time
	done     chan struct{}
}

// New builds an unmounted page over c.
func New(c *content.Content, opts Options) *Page {
	vh := opts.ViewportHeight
	if vh <= 0 {
		vh = DefaultViewportHeight
	}
	p := &Page{
		Content: c,
		Assets:  opts.Assets,
		Motion:  motion.NewController(vh),
		Lock:    &gallery.ScrollLock{},
		done:    make(chan struct{}),
	}
	p.Nav = NewNavigation(nav.New(c.Nav, c.HasSection))
	p.Hero = NewHero(c.Showcase, content.HeadlineWords, opts.ShowcaseInterval)
	p.Projects = NewProjects(c.Projects, c.OtherProjects, p.Lock)
	p.Services = NewServices(c.Services)
	p.Testimonials = NewTestimonials(c.Testimonials, c.Achievements)
	p.Contact = NewContact(c.Contact, c.Social, c.Channel)
	p.Footer = NewFooter(c.Nav, c.Social)

	p.sections = []Section{p.Nav, p.Hero, p.Projects, p.Services, p.Testimonials, p.Contact, p.Footer}
	return p
}

// Mount registers every section and starts the entrance animations and the
// showcase timer. Mounting twice, or after Unmount, is a no-op.
func (p *Page) Mount(now time.Time) {
	if p.mounted || p.closed {
		return
	}
	p.mounted = true
	p.last = now

	// Every section fades from 0.9 as it enters the lower fifth of the
	// viewport.
	p.scope = p.Motion.Scope("page")
	for _, id := range content.Sections {
		p.scope.Reveal(id, motion.MustAnchor("top 80%"), motion.NewTimeline(motion.Tween{
			Target:   id,
			From:     motion.PropertySet{motion.Opacity: 0.9},
			To:       motion.PropertySet{motion.Opacity: 1},
			Duration: 300 * ms,
		}))
	}
	for _, s := range p.sections {
		s.Mount(p.Motion)
	}
}

// Unmount tears every section down in reverse order. After Unmount the page
// ignores all events and Done is closed.
func (p *Page) Unmount() {
	if !p.mounted {
		return
	}
	p.mounted = false
	p.closed = true
	for i := len(p.sections) - 1; i >= 0; i-- {
		p.sections[i].Unmount()
	}
	p.Motion.Release(p.scope)
	p.scope = nil
	close(p.done)
}

// Mounted reports whether the page is live.
func (p *Page) Mounted() bool { return p.mounted }

// Done is closed when the page is unmounted.
func (p *Page) Done() <-chan struct{} { return p.done }

func (p *Page) tick(now time.Time) {
	dt := now.Sub(p.last)
	p.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameStep {
		dt = maxFrameStep
	}
	p.Motion.Advance(dt)
}

// Layout reports the viewport height and element boxes measured by the
// browser. Boxes for unknown elements are ignored.
func (p *Page) Layout(viewport float64, boxes map[string]motion.Box, now time.Time) {
	if !p.mounted {
		return
	}
	p.tick(now)
	p.Motion.Resize(viewport)
	for id, b := range boxes {
		p.Motion.Layout(id, b)
	}
}

// Scroll handles a scroll position sample. Samples are dropped while the
// scroll lock is held.
func (p *Page) Scroll(y float64, now time.Time) {
	if !p.mounted || p.Lock.Locked() {
		return
	}
	p.tick(now)
	p.Nav.OnScroll(y)
	p.Motion.Scroll(y)
}

// Frame advances the timelines to now and returns the current values.
func (p *Page) Frame(now time.Time) map[string]motion.PropertySet {
	if !p.mounted {
		return nil
	}
	p.tick(now)
	return p.Motion.Frame()
}

// Animating reports whether the client should keep requesting frames.
func (p *Page) Animating() bool {
	return p.mounted && p.Motion.Animating()
}

// OpenProject opens the modal on project i.
func (p *Page) OpenProject(i int) bool {
	if !p.mounted {
		return false
	}
	return p.Projects.Gallery.Open(i)
}

// CloseProject closes the modal.
func (p *Page) CloseProject() {
	if !p.mounted {
		return
	}
	p.Projects.Gallery.Close()
}

// ScrollLocked reports whether page scrolling is suspended.
func (p *Page) ScrollLocked() bool { return p.Lock.Locked() }

func (p *Page) PrevTestimonial() int {
	if !p.mounted {
		return p.Testimonials.Carousel.Index()
	}
	return p.Testimonials.Carousel.Prev()
}

func (p *Page) NextTestimonial() int {
	if !p.mounted {
		return p.Testimonials.Carousel.Index()
	}
	return p.Testimonials.Carousel.Next()
}

func (p *Page) JumpTestimonial(i int) bool {
	if !p.mounted {
		return false
	}
	return p.Testimonials.Carousel.Jump(i)
}

// ToggleMenu flips the mobile menu.
func (p *Page) ToggleMenu(now time.Time) bool {
	if !p.mounted {
		return false
	}
	p.tick(now)
	return p.Nav.ToggleMenu()
}

// Follow activates an in-page link. It returns the anchor to scroll to, or
// false when the target does not exist.
func (p *Page) Follow(href string) (string, bool) {
	if !p.mounted {
		return "", false
	}
	return p.Nav.Follow(href)
}
