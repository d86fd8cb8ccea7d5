// Package content holds the descriptive records rendered by the portfolio:
// navigation links, projects, testimonials, services and contact details.
// Everything here is loaded once at startup and never mutated afterwards.
package content

import (
	"strings"
)

// NavLink points at an in-page section anchor.
type NavLink struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
}

// Section returns the anchor id without the leading '#'.
func (l NavLink) Section() string {
	return strings.TrimPrefix(l.Target, "#")
}

// Links are the optional outbound links of a project.
type Links struct {
	Preview string `yaml:"preview"`
	GitHub  string `yaml:"github"`
	YouTube string `yaml:"youtube"`
}

// Project is a card in the projects grid and the subject of the detail modal.
type Project struct {
	// ID is assigned from list position at load time.
	ID int `yaml:"-"`
	// SourceID is the id the file carried, if any. It is not unique and
	// nothing keys on it.
	SourceID    int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Tags        []string `yaml:"tags"`
	Color       string   `yaml:"color"`
	Links       Links    `yaml:"links"`
	Highlights  []string `yaml:"highlights"`
	Award       string   `yaml:"award"`
	YouTubeOnly bool     `yaml:"youtubeOnly"`
}

// CardTags is the short tag list shown on a grid card.
func (p Project) CardTags() []string {
	if len(p.Tags) > 3 {
		return p.Tags[:3]
	}
	return p.Tags
}

// HackathonAward reports whether the award badge should use the trophy icon.
func (p Project) HackathonAward() bool {
	return strings.Contains(p.Award, "Hackathon")
}

// Action is the primary call-to-action of the project modal.
type Action struct {
	Label string
	Href  string
	Icon  string
}

// PrimaryAction picks the modal's call-to-action: a video for YouTube-only
// projects, then a live preview, then the source repository.
func (p Project) PrimaryAction() Action {
	switch {
	case p.YouTubeOnly:
		return Action{Label: "Watch on YouTube", Href: p.Links.YouTube, Icon: "youtube"}
	case p.Links.Preview != "":
		return Action{Label: "Live Preview", Href: p.Links.Preview, Icon: "external-link"}
	default:
		return Action{Label: "View on GitHub", Href: p.Links.GitHub, Icon: "github"}
	}
}

// OtherProject is a one-line mention below the grid.
type OtherProject struct {
	Name string `yaml:"name"`
	Desc string `yaml:"desc"`
}

// Testimonial is one entry of the testimonial carousel.
type Testimonial struct {
	ID       int    `yaml:"-"`
	SourceID int    `yaml:"id"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Image    string `yaml:"image"`
	Quote    string `yaml:"quote"`
}

// Service is a card in the services grid.
type Service struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Gradient    string `yaml:"gradient"`
}

// ShowcaseItem is an image rotated through the hero phone mockups.
type ShowcaseItem struct {
	ID       int    `yaml:"-"`
	SourceID int    `yaml:"id"`
	Image    string `yaml:"image"`
	Alt      string `yaml:"alt"`
	Glow     string `yaml:"glow"`
}

type ContactItem struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Href  string `yaml:"href"`
	Icon  string `yaml:"icon"`
}

type SocialLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
	Icon  string `yaml:"icon"`
}

type Achievement struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Icon  string `yaml:"icon"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Content is the full site data set.
type Content struct {
	Owner         string         `yaml:"owner"`
	Brand         string         `yaml:"brand"`
	Tagline       string         `yaml:"tagline"`
	Nav           []NavLink      `yaml:"nav"`
	Showcase      []ShowcaseItem `yaml:"showcase"`
	Stats         []Stat         `yaml:"stats"`
	Projects      []Project      `yaml:"projects"`
	OtherProjects []OtherProject `yaml:"otherProjects"`
	Services      []Service      `yaml:"services"`
	Testimonials  []Testimonial  `yaml:"testimonials"`
	Achievements  []Achievement  `yaml:"achievements"`
	Contact       []ContactItem  `yaml:"contact"`
	Social        []SocialLink   `yaml:"social"`
	Channel       string         `yaml:"channel"`
}

// HasSection reports whether id names a section reachable from the nav.
func (c *Content) HasSection(id string) bool {
	id = strings.TrimPrefix(id, "#")
	for _, s := range Sections {
		if s == id {
			return true
		}
	}
	return false
}

// Sections lists the anchor ids of the page in document order.
var Sections = []string{"hero", "projects", "services", "testimonials", "contact"}
