package motion

import (
	"fmt"
	"strconv"
	"strings"
)

// Box is an element's position in document coordinates.
type Box struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Anchor names the moment an edge of the trigger element meets a fraction of
// the viewport, e.g. "top 70%" is the element's top at 70% down the screen.
type Anchor struct {
	// Edge is the fraction of the element's height, 0 for its top edge and
	// 1 for its bottom.
	Edge float64
	// Viewport is the fraction of the viewport height, from its top.
	Viewport float64
}

// ScrollPos returns the scroll offset at which the anchor is met.
func (a Anchor) ScrollPos(b Box, viewportHeight float64) float64 {
	return b.Top + a.Edge*b.Height - a.Viewport*viewportHeight
}

func (a Anchor) String() string {
	return fmt.Sprintf("%s %s", position(a.Edge), position(a.Viewport))
}

// ParseAnchor reads "<element> <viewport>" where each side is top, center,
// bottom or a percentage.
func ParseAnchor(s string) (Anchor, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Anchor{}, fmt.Errorf("anchor %q: want \"<element> <viewport>\"", s)
	}
	edge, err := fraction(parts[0])
	if err != nil {
		return Anchor{}, fmt.Errorf("anchor %q: %w", s, err)
	}
	vp, err := fraction(parts[1])
	if err != nil {
		return Anchor{}, fmt.Errorf("anchor %q: %w", s, err)
	}
	return Anchor{Edge: edge, Viewport: vp}, nil
}

// MustAnchor is ParseAnchor for literals.
func MustAnchor(s string) Anchor {
	a, err := ParseAnchor(s)
	if err != nil {
		panic(err)
	}
	return a
}

func fraction(s string) (float64, error) {
	switch s {
	case "top":
		return 0, nil
	case "center":
		return 0.5, nil
	case "bottom":
		return 1, nil
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("bad percentage %q", s)
		}
		return v / 100, nil
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

func position(f float64) string {
	switch f {
	case 0:
		return "top"
	case 0.5:
		return "center"
	case 1:
		return "bottom"
	}
	return strconv.FormatFloat(f*100, 'f', -1, 64) + "%"
}
