package gallery

// Carousel is a cursor over m items, wrapping at both ends.
type Carousel struct {
	m     int
	index int
}

func NewCarousel(m int) *Carousel {
	return &Carousel{m: m}
}

func (c *Carousel) Index() int { return c.index }

func (c *Carousel) Len() int { return c.m }

// Prev moves back one item; from 0 it wraps to m-1.
func (c *Carousel) Prev() int {
	if c.m > 0 {
		c.index = (c.index - 1 + c.m) % c.m
	}
	return c.index
}

// Next moves forward one item; from m-1 it wraps to 0.
func (c *Carousel) Next() int {
	if c.m > 0 {
		c.index = (c.index + 1) % c.m
	}
	return c.index
}

// Jump selects item i directly. Out-of-range values are ignored.
func (c *Carousel) Jump(i int) bool {
	if i < 0 || i >= c.m {
		return false
	}
	c.index = i
	return true
}
