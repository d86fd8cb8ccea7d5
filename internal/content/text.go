package content

// Longer copy lives here rather than in content.yaml so the templates can
// treat it as fixed page text.
var (
	HeadlineWords = []Word{
		{Text: "Building"},
		{Text: "Flutter", Gradient: true},
		{Text: "Apps"},
		{Text: "That"},
		{Text: "Matter", Gradient: true},
	}

	Subheadline = `I'm Niranjan Dahal, a Flutter developer from Nepal creating cross-platform 
	mobile experiences.`

	ServicesIntro = `From concept to deployment, I provide end-to-end Flutter development services 
	tailored to your unique requirements.`

	ContactIntro = `Have a project in mind? I'd love to hear about it. Let's discuss how we can
	bring your ideas to life with Flutter.`

	ContactBlurb = `Whether you need a Flutter app developed, want to collaborate on a project,
	or just want to say hello, I'm always open to new opportunities and connections.`
)

// Word is one animated word of the hero headline.
type Word struct {
	Text     string
	Gradient bool
}
