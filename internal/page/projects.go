package page

import (
	"github.com/niranjandahal/portfolio/internal/content"
	"github.com/niranjandahal/portfolio/internal/gallery"
	"github.com/niranjandahal/portfolio/internal/motion"
)

const (
	ProjectsID      = "projects"
	ProjectsHeading = "projects-heading"
	ProjectsGrid    = "projects-grid"
	ProjectCard     = "project-card"
)

// Projects is the project grid and its detail modal.
type Projects struct {
	Gallery *gallery.Gallery
	Other   []content.OtherProject
	scope   *motion.Scope
	ctrl    *motion.Controller
}

func NewProjects(projects []content.Project, other []content.OtherProject, lock gallery.Locker) *Projects {
	return &Projects{Gallery: gallery.New(projects, lock), Other: other}
}

func (p *Projects) ID() string { return ProjectsID }

func (p *Projects) Mount(c *motion.Controller) {
	p.ctrl = c
	p.scope = c.Scope(ProjectsID)
	p.scope.Reveal(ProjectsID, motion.MustAnchor("top 70%"), headingReveal(ProjectsHeading, 50))

	cards := motion.Stagger(elementIDs(ProjectCard, len(p.Gallery.Projects())),
		motion.PropertySet{motion.Y: 80, motion.Opacity: 0, motion.Scale: 0.95},
		motion.PropertySet{motion.Y: 0, motion.Opacity: 1, motion.Scale: 1},
		700*ms, 0, 100*ms, expoOut)
	p.scope.Reveal(ProjectsGrid, motion.MustAnchor("top 70%"), motion.NewTimeline(cards...))
}

// Unmount closes the modal, which gives back the scroll lock, and releases
// the animation scope.
func (p *Projects) Unmount() {
	p.Gallery.Teardown()
	release(&p.scope, &p.ctrl)
}
