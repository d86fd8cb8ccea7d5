package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid content")

// Default returns the embedded site content.
func Default() (*Content, error) {
	return Parse(defaultContent)
}

// LoadFile reads content from path, or the embedded default when path is
// empty.
func LoadFile(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading content file %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML document. IDs are assigned from list
// position so that records are always uniquely keyed, whatever the source
// carried.
func Parse(data []byte) (*Content, error) {
	var c Content
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error unmarshalling content: %w", err)
	}

	for i := range c.Projects {
		c.Projects[i].ID = i + 1
	}
	for i := range c.Testimonials {
		c.Testimonials[i].ID = i + 1
	}
	for i := range c.Showcase {
		c.Showcase[i].ID = i + 1
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Content) validate() error {
	if len(c.Showcase) == 0 {
		return fmt.Errorf("%w: showcase list is empty", ErrInvalid)
	}
	for i, l := range c.Nav {
		if !strings.HasPrefix(l.Target, "#") {
			return fmt.Errorf("%w: nav link %d (%q) target %q is not an anchor", ErrInvalid, i, l.Name, l.Target)
		}
	}
	for i, p := range c.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("%w: project %d has no title", ErrInvalid, i+1)
		}
	}
	for i, t := range c.Testimonials {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("%w: testimonial %d has no author", ErrInvalid, i+1)
		}
	}
	return nil
}
