package page

import (
	"github.com/niranjandahal/portfolio/internal/content"
	"github.com/niranjandahal/portfolio/internal/motion"
)

const (
	ServicesID      = "services"
	ServicesHeading = "services-heading"
	ServicesGrid    = "services-grid"
	ServiceCard     = "service-card"
)

type Services struct {
	Items []content.Service
	scope *motion.Scope
	ctrl  *motion.Controller
}

func NewServices(items []content.Service) *Services {
	return &Services{Items: items}
}

func (s *Services) ID() string { return ServicesID }

func (s *Services) Mount(c *motion.Controller) {
	s.ctrl = c
	s.scope = c.Scope(ServicesID)
	s.scope.Reveal(ServicesID, motion.MustAnchor("top 70%"), headingReveal(ServicesHeading, 80))

	cards := motion.Stagger(elementIDs(ServiceCard, len(s.Items)),
		motion.PropertySet{motion.Scale: 0, motion.Rotate: -180, motion.Opacity: 0},
		motion.PropertySet{motion.Scale: 1, motion.Rotate: 0, motion.Opacity: 1},
		600*ms, 0, 100*ms, elasticOut)
	s.scope.Reveal(ServicesGrid, motion.MustAnchor("top 70%"), motion.NewTimeline(cards...))
}

func (s *Services) Unmount() { release(&s.scope, &s.ctrl) }
