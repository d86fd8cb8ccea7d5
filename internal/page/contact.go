package page

import (
	"github.com/niranjandahal/portfolio/internal/content"
	"github.com/niranjandahal/portfolio/internal/motion"
)

const (
	ContactID      = "contact"
	ContactHeading = "contact-heading"
	ContactInfo    = "contact-info"
	ContactItem    = "contact-item"
)

type Contact struct {
	Items   []content.ContactItem
	Social  []content.SocialLink
	Channel string
	scope   *motion.Scope
	ctrl    *motion.Controller
}

func NewContact(items []content.ContactItem, social []content.SocialLink, channel string) *Contact {
	return &Contact{Items: items, Social: social, Channel: channel}
}

func (c *Contact) ID() string { return ContactID }

func (c *Contact) Mount(ctrl *motion.Controller) {
	c.ctrl = ctrl
	c.scope = ctrl.Scope(ContactID)
	c.scope.Reveal(ContactID, motion.MustAnchor("top 70%"), headingReveal(ContactHeading, 50))

	items := motion.Stagger(elementIDs(ContactItem, len(c.Items)),
		motion.PropertySet{motion.X: -40, motion.Opacity: 0},
		motion.PropertySet{motion.X: 0, motion.Opacity: 1},
		400*ms, 0, 100*ms, expoOut)
	c.scope.Reveal(ContactInfo, motion.MustAnchor("top 70%"), motion.NewTimeline(items...))
}

func (c *Contact) Unmount() { release(&c.scope, &c.ctrl) }
