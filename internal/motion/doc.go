// Package motion drives the scroll-linked animation state of a page.
//
// Elements are registered through a Scope, which is the handle a section
// receives on mount and must hand back on unmount. Three kinds of
// registration exist:
//
//   - Play: an entrance timeline that starts immediately.
//   - Reveal: a timeline that plays forward when the scroll position passes
//     its start anchor going down and reverses when it passes back up.
//   - Scrub: a pure mapping from scroll progress between two anchors to
//     property values, with no duration and no easing.
//
// The Controller is not safe for concurrent use. Callers serialise events
// the way a UI event loop would.
package motion
