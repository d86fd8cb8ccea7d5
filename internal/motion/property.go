package motion

import (
	"fmt"
	"strings"
)

// Property is an animatable visual property.
type Property string

const (
	Opacity Property = "opacity"
	X       Property = "x"
	Y       Property = "y"
	Scale   Property = "scale"
	Rotate  Property = "rotate"
	Blur    Property = "blur"
	// Clip is the right inset of a clip-path in percent.
	Clip Property = "clip"
)

// PropertySet maps properties to their current values.
type PropertySet map[Property]float64

// Merge copies every value of o into s, overwriting.
func (s PropertySet) Merge(o PropertySet) {
	for k, v := range o {
		s[k] = v
	}
}

// Style renders s as inline CSS.
func (s PropertySet) Style() string {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	if v, ok := s[Opacity]; ok {
		fmt.Fprintf(&b, "opacity:%s;", num(v))
	}

	var transforms []string
	if v, ok := s[X]; ok {
		transforms = append(transforms, "translateX("+num(v)+"px)")
	}
	if v, ok := s[Y]; ok {
		transforms = append(transforms, "translateY("+num(v)+"px)")
	}
	if v, ok := s[Rotate]; ok {
		transforms = append(transforms, "rotate("+num(v)+"deg)")
	}
	if v, ok := s[Scale]; ok {
		transforms = append(transforms, "scale("+num(v)+")")
	}
	if len(transforms) > 0 {
		b.WriteString("transform:" + strings.Join(transforms, " ") + ";")
	}
	if v, ok := s[Blur]; ok {
		fmt.Fprintf(&b, "filter:blur(%spx);", num(v))
	}
	if v, ok := s[Clip]; ok {
		fmt.Fprintf(&b, "clip-path:inset(0 %s%% 0 0);", num(v))
	}
	return b.String()
}

func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
