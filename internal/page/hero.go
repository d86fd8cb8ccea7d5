package page

import (
	"time"

	"github.com/niranjandahal/portfolio/internal/content"
	"github.com/niranjandahal/portfolio/internal/motion"
	"github.com/niranjandahal/portfolio/internal/showcase"
)

// Hero element ids.
const (
	HeroID       = "hero"
	HeroHeadline = "hero-headline"
	HeroWord     = "hero-word"
	HeroSub      = "hero-sub"
	HeroCTA      = "hero-cta"
	HeroPhone1   = "hero-phone-1"
	HeroPhone2   = "hero-phone-2"
	HeroOrbit1   = "hero-orbit-1"
	HeroOrbit2   = "hero-orbit-2"
)

// Hero is the landing section with the rotating project showcase.
type Hero struct {
	Words   []content.Word
	Items   []content.ShowcaseItem
	rotator *showcase.Rotator
	timer   *showcase.Timer
	updates chan int
	scope   *motion.Scope
	ctrl    *motion.Controller
}

func NewHero(items []content.ShowcaseItem, words []content.Word, interval time.Duration) *Hero {
	return &Hero{
		Words:   words,
		Items:   items,
		rotator: showcase.New(len(items), interval),
		updates: make(chan int, 1),
	}
}

func (h *Hero) ID() string { return HeroID }

// Rotator exposes the showcase cursor, mainly so tests can swap its ticker.
func (h *Hero) Rotator() *showcase.Rotator { return h.rotator }

// Current is the showcase item in the main mockup.
func (h *Hero) Current() int { return h.rotator.Index() }

// Secondary is the item shown in the offset mockup.
func (h *Hero) Secondary() int { return h.rotator.Next() }

// Updates delivers the newest showcase index after each rotation. Stale
// values are dropped so a slow reader only ever sees the latest.
func (h *Hero) Updates() <-chan int { return h.updates }

func (h *Hero) publish(i int) {
	select {
	case <-h.updates:
	default:
	}
	select {
	case h.updates <- i:
	default:
	}
}

func (h *Hero) Mount(c *motion.Controller) {
	h.ctrl = c
	h.scope = c.Scope(HeroID)

	tl := motion.NewTimeline()
	tl.Add(motion.Stagger(elementIDs(HeroWord, len(h.Words)),
		motion.PropertySet{motion.Clip: 100, motion.Opacity: 0},
		motion.PropertySet{motion.Clip: 0, motion.Opacity: 1},
		800*ms, 400*ms, 100*ms, expoOut)...)
	tl.Add(
		motion.Tween{
			Target: HeroSub, Delay: 900 * ms, Duration: 600 * ms, Ease: expoOut,
			From: motion.PropertySet{motion.Blur: 10, motion.Opacity: 0},
			To:   motion.PropertySet{motion.Blur: 0, motion.Opacity: 1},
		},
		motion.Tween{
			Target: HeroCTA, Delay: 1100 * ms, Duration: 500 * ms, Ease: elasticOut,
			From: motion.PropertySet{motion.Scale: 0.8, motion.Opacity: 0},
			To:   motion.PropertySet{motion.Scale: 1, motion.Opacity: 1},
		},
		motion.Tween{
			Target: HeroPhone1, Delay: 600 * ms, Duration: 1500 * ms, Ease: power2Out,
			From: motion.PropertySet{motion.Opacity: 0, motion.Scale: 0.8, motion.Blur: 20},
			To:   motion.PropertySet{motion.Opacity: 1, motion.Scale: 1, motion.Blur: 0},
		},
		motion.Tween{
			Target: HeroPhone2, Delay: 900 * ms, Duration: 2000 * ms, Ease: power2Out,
			From: motion.PropertySet{motion.Opacity: 0, motion.Scale: 0.8, motion.Blur: 20, motion.X: 300, motion.Rotate: 30},
			To:   motion.PropertySet{motion.Opacity: 1, motion.Scale: 1, motion.Blur: 0, motion.X: 0, motion.Rotate: 15},
		},
	)
	for _, orbit := range []string{HeroOrbit1, HeroOrbit2} {
		tl.Add(motion.Tween{
			Target: orbit, Delay: 1000 * ms, Duration: 1500 * ms, Ease: expoOut,
			From: motion.PropertySet{motion.Scale: 0.8, motion.Opacity: 0},
			To:   motion.PropertySet{motion.Scale: 1, motion.Opacity: 1},
		})
	}
	h.scope.Play(tl)

	h.scope.Scrub(HeroID, motion.MustAnchor("top top"), motion.MustAnchor("bottom top"), HeroParallax)

	h.timer = h.rotator.Start(h.publish)
}

// HeroParallax maps hero scroll progress to the parallax offsets of the
// headline, mockups and orbits.
var HeroParallax = motion.Lerp(map[string]map[motion.Property]motion.Range{
	HeroHeadline: {motion.Y: {From: 0, To: -100}},
	HeroSub:      {motion.Y: {From: 0, To: -150}},
	HeroPhone1:   {motion.Rotate: {From: 0, To: -15}, motion.Y: {From: 0, To: -50}},
	HeroPhone2:   {motion.Rotate: {From: 15, To: 30}, motion.Y: {From: 0, To: -80}},
	HeroOrbit1:   {motion.Scale: {From: 1, To: 1.3}, motion.Opacity: {From: 1, To: 0.3}},
	HeroOrbit2:   {motion.Scale: {From: 1, To: 1.3}, motion.Opacity: {From: 1, To: 0.3}},
})

func (h *Hero) Unmount() {
	h.timer.Stop()
	h.timer = nil
	release(&h.scope, &h.ctrl)
}
