package page

import (
	"github.com/niranjandahal/portfolio/internal/motion"
	"github.com/niranjandahal/portfolio/internal/nav"
)

const (
	NavigationID   = "navigation"
	MobileMenuItem = "mobile-menu-item"
)

// Navigation wraps the nav bar state with the mobile menu entrance.
type Navigation struct {
	*nav.Navigation
	menu  *motion.Timeline
	scope *motion.Scope
	ctrl  *motion.Controller
}

func NewNavigation(n *nav.Navigation) *Navigation {
	return &Navigation{Navigation: n}
}

func (n *Navigation) ID() string { return NavigationID }

// MenuItems is the number of entries in the mobile menu: every link plus
// the call-to-action.
func (n *Navigation) MenuItems() int { return len(n.Links) + 1 }

func (n *Navigation) Mount(c *motion.Controller) {
	n.ctrl = c
	n.scope = c.Scope(NavigationID)
	n.menu = motion.NewTimeline(motion.Stagger(elementIDs(MobileMenuItem, n.MenuItems()),
		motion.PropertySet{motion.Y: 30, motion.Opacity: 0},
		motion.PropertySet{motion.Y: 0, motion.Opacity: 1},
		400*ms, 0, 80*ms, expoOut)...)
	n.scope.Add(n.menu)
}

// ToggleMenu opens or closes the mobile menu, replaying the item entrance
// on open.
func (n *Navigation) ToggleMenu() bool {
	open := n.Navigation.ToggleMenu()
	if open && n.menu != nil && n.scope != nil {
		n.menu.Seek(0)
		n.menu.Play()
	}
	return open
}

func (n *Navigation) Unmount() {
	n.CloseMenu()
	release(&n.scope, &n.ctrl)
	n.menu = nil
}
