package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashIP(t *testing.T) {
	a := hashIP("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, hashIP("203.0.113.7"))
	assert.NotEqual(t, a, hashIP("203.0.113.8"))
	assert.NotContains(t, a, "203")
}

func TestIsAsset(t *testing.T) {
	for path, want := range map[string]bool{
		"/static/app.js":           true,
		"/portfolio/static/a.css":  true,
		"/logo.png":                true,
		"/portfolio/project-1.jpg": true,
		"/":                        false,
		"/api/scroll":              false,
		"/projects/2":              false,
	} {
		assert.Equal(t, want, isAsset(path), path)
	}
}
