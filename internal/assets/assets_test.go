package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolverPath(t *testing.T) {
	dev := New(false, "")
	prod := New(true, "")

	assert.Equal(t, "/logo.png", dev.Path("/logo.png"))
	assert.Equal(t, "/portfolio/logo.png", prod.Path("/logo.png"))
}

func TestResolverLeavesNonRootPaths(t *testing.T) {
	prod := New(true, "/site/")

	assert.Equal(t, "logo.png", prod.Path("logo.png"))
	assert.Equal(t, "https://example.com/a.png", prod.Path("https://example.com/a.png"))
	assert.Equal(t, "//cdn.example.com/a.png", prod.Path("//cdn.example.com/a.png"))
	assert.Equal(t, "/site/a.png", prod.Path("/a.png"))
}

func TestResolverRoot(t *testing.T) {
	assert.Equal(t, "", New(false, "/x").Root())
	assert.Equal(t, "/portfolio", New(true, "").Root())
}
