package page

import (
	"github.com/niranjandahal/portfolio/internal/content"
	"github.com/niranjandahal/portfolio/internal/motion"
)

const (
	FooterID      = "footer"
	FooterContent = "footer-content"
)

type Footer struct {
	Links  []content.NavLink
	Social []content.SocialLink
	scope  *motion.Scope
	ctrl   *motion.Controller
}

func NewFooter(links []content.NavLink, social []content.SocialLink) *Footer {
	return &Footer{Links: links, Social: social}
}

func (f *Footer) ID() string { return FooterID }

func (f *Footer) Mount(c *motion.Controller) {
	f.ctrl = c
	f.scope = c.Scope(FooterID)
	f.scope.Reveal(FooterID, motion.MustAnchor("top 90%"), motion.NewTimeline(motion.Tween{
		Target:   FooterContent,
		From:     motion.PropertySet{motion.Y: 30, motion.Opacity: 0},
		To:       motion.PropertySet{motion.Y: 0, motion.Opacity: 1},
		Duration: 600 * ms,
		Ease:     expoOut,
	}))
}

func (f *Footer) Unmount() { release(&f.scope, &f.ctrl) }
