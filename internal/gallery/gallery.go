package gallery

import "github.com/niranjandahal/portfolio/internal/content"

// Gallery is the project detail modal: closed, or open on one project.
// While open it holds the page scroll lock.
type Gallery struct {
	projects []content.Project
	lock     Locker
	selected int
	release  func()
}

// New returns a closed gallery over projects.
func New(projects []content.Project, lock Locker) *Gallery {
	return &Gallery{projects: projects, lock: lock, selected: -1}
}

// Open shows project i. Opening while already open switches the modal to i
// without touching the lock. An out-of-range index is ignored.
func (g *Gallery) Open(i int) bool {
	if i < 0 || i >= len(g.projects) {
		return false
	}
	if g.release == nil && g.lock != nil {
		g.release = g.lock.Acquire()
	}
	g.selected = i
	return true
}

// Close hides the modal and releases the scroll lock. Backdrop clicks and
// the close control both end here.
func (g *Gallery) Close() {
	g.selected = -1
	if g.release != nil {
		g.release()
		g.release = nil
	}
}

// Teardown releases everything the gallery holds.
func (g *Gallery) Teardown() { g.Close() }

// IsOpen reports whether the modal is showing.
func (g *Gallery) IsOpen() bool { return g.selected >= 0 }

// Selected returns the open project, if any.
func (g *Gallery) Selected() (content.Project, bool) {
	if g.selected < 0 {
		return content.Project{}, false
	}
	return g.projects[g.selected], true
}

// SelectedIndex is the open project's position, or -1.
func (g *Gallery) SelectedIndex() int { return g.selected }

// Projects returns the gallery's project list.
func (g *Gallery) Projects() []content.Project { return g.projects }
