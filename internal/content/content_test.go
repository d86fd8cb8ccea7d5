package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Showcase, 7)
	assert.Len(t, c.Projects, 8)
	assert.Len(t, c.Testimonials, 5)
	assert.Len(t, c.Services, 6)
	assert.Len(t, c.Nav, 4)
}

func TestParseAssignsUniqueIDs(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	seen := map[int]bool{}
	for i, p := range c.Projects {
		assert.Equal(t, i+1, p.ID)
		assert.False(t, seen[p.ID], "duplicate project id %d", p.ID)
		seen[p.ID] = true
	}
	for i, s := range c.Showcase {
		assert.Equal(t, i+1, s.ID)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty showcase", "nav: []\n"},
		{"bad nav target", "showcase: [{image: /a.png}]\nnav: [{name: Home, target: hero}]\n"},
		{"untitled project", "showcase: [{image: /a.png}]\nprojects: [{category: x}]\n"},
		{"anonymous testimonial", "showcase: [{image: /a.png}]\ntestimonials: [{quote: hi}]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("showcase: [{image: /a.png, colour: red}]\n"))
	assert.Error(t, err)
}

func TestParseRenumbersDuplicateSourceIDs(t *testing.T) {
	c, err := Parse([]byte("showcase: [{id: 1, image: /a.png}, {id: 1, image: /b.png}]\n" +
		"projects: [{id: 2, title: A}, {id: 2, title: B}]\n" +
		"testimonials: [{id: 7, name: X}, {id: 7, name: Y}, {id: 7, name: Z}]\n"))
	require.NoError(t, err)

	for i, s := range c.Showcase {
		assert.Equal(t, i+1, s.ID)
		assert.Equal(t, 1, s.SourceID)
	}
	for i, p := range c.Projects {
		assert.Equal(t, i+1, p.ID)
	}
	for i, tm := range c.Testimonials {
		assert.Equal(t, i+1, tm.ID)
	}
	assert.Equal(t, "/b.png", c.Showcase[1].Image)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	doc := "owner: Someone\nshowcase: [{image: /a.png, alt: A}, {image: /b.png, alt: B}]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Someone", c.Owner)
	assert.Len(t, c.Showcase, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPrimaryAction(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	byTitle := map[string]Project{}
	for _, p := range c.Projects {
		byTitle[p.Title] = p
	}

	assert.Equal(t, "Live Preview", byTitle["Movie Hunt"].PrimaryAction().Label)
	assert.Equal(t, "Watch on YouTube", byTitle["Video Call App MVP"].PrimaryAction().Label)
	assert.Equal(t, "View on GitHub", byTitle["VR Tourism Nepal"].PrimaryAction().Label)
	assert.True(t, byTitle["VR Tourism Nepal"].HackathonAward())
	assert.False(t, byTitle["CBDC Digital Wallet"].HackathonAward())
}

func TestCardTags(t *testing.T) {
	p := Project{Tags: []string{"a", "b", "c", "d"}}
	assert.Equal(t, []string{"a", "b", "c"}, p.CardTags())
	assert.Equal(t, []string{"x"}, Project{Tags: []string{"x"}}.CardTags())
}

func TestHasSection(t *testing.T) {
	c := &Content{}
	assert.True(t, c.HasSection("#projects"))
	assert.True(t, c.HasSection("contact"))
	assert.False(t, c.HasSection("#about"))
}
