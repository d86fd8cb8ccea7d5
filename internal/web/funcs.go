package web

import (
	"fmt"
	"html/template"
)

// Colors come from the content file, which is trusted at startup, so the
// styles built from them are passed through unescaped.

// chip tints a category label: the color at the given alpha as background,
// full strength as text.
func chip(color, alpha string) template.CSS {
	return template.CSS(fmt.Sprintf("background-color:%s%s;color:%s;", color, alpha, color))
}

// shadow is the colored glow under a showcase mockup.
func shadow(y, blur int, color string) template.CSS {
	return template.CSS(fmt.Sprintf("filter:drop-shadow(0 %dpx %dpx %s);", y, blur, color))
}
