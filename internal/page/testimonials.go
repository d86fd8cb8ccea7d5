package page

import (
	"github.com/niranjandahal/portfolio/internal/content"
	"github.com/niranjandahal/portfolio/internal/gallery"
	"github.com/niranjandahal/portfolio/internal/motion"
)

const (
	TestimonialsID       = "testimonials"
	TestimonialsHeading  = "testimonials-heading"
	TestimonialsCarousel = "testimonials-carousel"
	Achievements         = "achievements"
	AchievementCard      = "achievement-card"
)

// Testimonials is the quote carousel with the achievements strip.
type Testimonials struct {
	Items        []content.Testimonial
	Achievements []content.Achievement
	Carousel     *gallery.Carousel
	scope        *motion.Scope
	ctrl         *motion.Controller
}

func NewTestimonials(items []content.Testimonial, achievements []content.Achievement) *Testimonials {
	return &Testimonials{
		Items:        items,
		Achievements: achievements,
		Carousel:     gallery.NewCarousel(len(items)),
	}
}

func (t *Testimonials) ID() string { return TestimonialsID }

// Active returns the testimonial under the cursor.
func (t *Testimonials) Active() (content.Testimonial, bool) {
	if len(t.Items) == 0 {
		return content.Testimonial{}, false
	}
	return t.Items[t.Carousel.Index()], true
}

func (t *Testimonials) Mount(c *motion.Controller) {
	t.ctrl = c
	t.scope = c.Scope(TestimonialsID)
	t.scope.Reveal(TestimonialsID, motion.MustAnchor("top 70%"), headingReveal(TestimonialsHeading, 50))

	t.scope.Reveal(TestimonialsCarousel, motion.MustAnchor("top 70%"), motion.NewTimeline(motion.Tween{
		Target:   TestimonialsCarousel,
		From:     motion.PropertySet{motion.Opacity: 0, motion.Scale: 0.95},
		To:       motion.PropertySet{motion.Opacity: 1, motion.Scale: 1},
		Duration: 800 * ms,
		Ease:     expoOut,
	}))

	cards := motion.Stagger(elementIDs(AchievementCard, len(t.Achievements)),
		motion.PropertySet{motion.Y: 30, motion.Opacity: 0},
		motion.PropertySet{motion.Y: 0, motion.Opacity: 1},
		500*ms, 0, 100*ms, expoOut)
	t.scope.Reveal(Achievements, motion.MustAnchor("top 80%"), motion.NewTimeline(cards...))
}

func (t *Testimonials) Unmount() { release(&t.scope, &t.ctrl) }
