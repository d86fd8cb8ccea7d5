package page

import (
	"html/template"

	"github.com/niranjandahal/portfolio/internal/assets"
	"github.com/niranjandahal/portfolio/internal/content"
)

// ProjectView is a project with its asset paths resolved.
type ProjectView struct {
	content.Project
	Index  int
	Src    string
	Action content.Action
}

// TestimonialView is a testimonial with its portrait resolved.
type TestimonialView struct {
	content.Testimonial
	Index int
	Src   string
}

// View is the render model of the page at one instant.
type View struct {
	Content *content.Content
	// Root prefixes every route and asset URL.
	Root   string
	Styles map[string]template.CSS
	// Static marks an exported build with no server behind it.
	Static bool
	assets assets.Resolver

	Scrolled  bool
	MenuOpen  bool
	MenuItems int
	Locked    bool

	Words         []content.Word
	Subheadline   string
	ServicesIntro string
	ContactIntro  string
	ContactBlurb  string

	Showcase  []content.ShowcaseItem
	Current   content.ShowcaseItem
	Secondary content.ShowcaseItem

	Projects []ProjectView
	Modal    *ProjectView

	Testimonials []TestimonialView
	Active       *TestimonialView
}

// Style returns the inline style of element id, or nothing when it is not
// animated.
func (v *View) Style(id string) template.CSS { return v.Styles[id] }

// Asset resolves a root-relative asset path for the current mode.
func (v *View) Asset(p string) string { return v.assets.Path(p) }

// View builds the render model from the current state. It does not advance
// the timelines; call Frame first for up-to-date styles.
func (p *Page) View() *View {
	v := &View{
		Content:   p.Content,
		Root:      p.Assets.Root(),
		Styles:    make(map[string]template.CSS),
		assets:    p.Assets,
		Scrolled:  p.Nav.Scrolled(),
		MenuOpen:  p.Nav.MenuOpen(),
		MenuItems: p.Nav.MenuItems(),
		Locked:    p.Lock.Locked(),
		Words:     p.Hero.Words,

		Subheadline:   content.Subheadline,
		ServicesIntro: content.ServicesIntro,
		ContactIntro:  content.ContactIntro,
		ContactBlurb:  content.ContactBlurb,
	}
	if p.mounted {
		for id, set := range p.Motion.Frame() {
			v.Styles[id] = template.CSS(set.Style())
		}
	}

	for _, item := range p.Hero.Items {
		item.Image = p.Assets.Path(item.Image)
		v.Showcase = append(v.Showcase, item)
	}
	if len(v.Showcase) > 0 {
		v.Current = v.Showcase[p.Hero.Current()]
		v.Secondary = v.Showcase[p.Hero.Secondary()]
	}

	for i, proj := range p.Projects.Gallery.Projects() {
		v.Projects = append(v.Projects, ProjectView{
			Project: proj,
			Index:   i,
			Src:     p.Assets.Path(proj.Image),
			Action:  proj.PrimaryAction(),
		})
	}
	if i := p.Projects.Gallery.SelectedIndex(); i >= 0 && i < len(v.Projects) {
		v.Modal = &v.Projects[i]
	}

	for i, t := range p.Testimonials.Items {
		v.Testimonials = append(v.Testimonials, TestimonialView{
			Testimonial: t,
			Index:       i,
			Src:         p.Assets.Path(t.Image),
		})
	}
	if len(v.Testimonials) > 0 {
		v.Active = &v.Testimonials[p.Testimonials.Carousel.Index()]
	}
	return v
}
