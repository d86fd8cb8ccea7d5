// Package nav tracks the navigation bar: whether the page has scrolled past
// the compact threshold, and whether the mobile menu is open.
package nav

import (
	"strings"

	"github.com/niranjandahal/portfolio/internal/content"
)

// ScrolledThreshold is the scroll offset past which the bar turns compact.
const ScrolledThreshold = 50

// Navigation is the state of one navigation bar.
type Navigation struct {
	Links    []content.NavLink
	scrolled bool
	menuOpen bool
	exists   func(id string) bool
}

// New returns a navigation bar over links. exists reports whether a section
// id is present on the page.
func New(links []content.NavLink, exists func(id string) bool) *Navigation {
	return &Navigation{Links: links, exists: exists}
}

// OnScroll updates the compact flag and reports whether it changed.
func (n *Navigation) OnScroll(y float64) bool {
	s := y > ScrolledThreshold
	changed := s != n.scrolled
	n.scrolled = s
	return changed
}

func (n *Navigation) Scrolled() bool { return n.scrolled }

func (n *Navigation) MenuOpen() bool { return n.menuOpen }

// ToggleMenu flips the mobile menu and returns the new state.
func (n *Navigation) ToggleMenu() bool {
	n.menuOpen = !n.menuOpen
	return n.menuOpen
}

// CloseMenu closes the mobile menu.
func (n *Navigation) CloseMenu() { n.menuOpen = false }

// Follow handles activation of a link to href. The menu always closes. If
// the target section exists its anchor is returned for smooth scrolling;
// a missing target is a silent no-op.
func (n *Navigation) Follow(href string) (string, bool) {
	n.menuOpen = false
	id := strings.TrimPrefix(href, "#")
	if id == "" || n.exists == nil || !n.exists(id) {
		return "", false
	}
	return "#" + id, true
}
