// Package page composes the portfolio's sections into one page and owns the
// per-visitor view state: animation scopes, the showcase timer, the project
// modal's scroll lock and the carousel and menu cursors.
package page

import (
	"fmt"
	"time"

	"github.com/niranjandahal/portfolio/internal/motion"
)

// Section is a component of the page. Mount registers its elements with the
// controller; Unmount releases everything Mount acquired.
type Section interface {
	ID() string
	Mount(c *motion.Controller)
	Unmount()
}

// ElementID names the i-th element of a group, e.g. "project-card-2".
func ElementID(prefix string, i int) string {
	return fmt.Sprintf("%s-%d", prefix, i)
}

func elementIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = ElementID(prefix, i)
	}
	return ids
}

const ms = time.Millisecond

var (
	expoOut    = motion.MustEase("expo.out")
	power2Out  = motion.MustEase("power2.out")
	elasticOut = motion.MustEase("elastic.out(1, 0.5)")
)

// headingReveal is the fade-up every section heading uses.
func headingReveal(target string, rise float64) *motion.Timeline {
	return motion.NewTimeline(motion.Tween{
		Target:   target,
		From:     motion.PropertySet{motion.Y: rise, motion.Opacity: 0},
		To:       motion.PropertySet{motion.Y: 0, motion.Opacity: 1},
		Duration: 600 * ms,
		Ease:     expoOut,
	})
}

// release hands a scope back to its controller.
func release(s **motion.Scope, c **motion.Controller) {
	if *s != nil && *c != nil {
		(*c).Release(*s)
	}
	*s, *c = nil, nil
}
