// Package assets resolves image and static paths for local and subdirectory
// deployments.
package assets

import "strings"

// DefaultBase is the subdirectory the production build is hosted under.
const DefaultBase = "/portfolio"

// Resolver prefixes root-relative paths with Base when Prod is set.
type Resolver struct {
	Prod bool
	Base string
}

// New returns a resolver for the given mode. An empty base falls back to
// DefaultBase.
func New(prod bool, base string) Resolver {
	if base == "" {
		base = DefaultBase
	}
	return Resolver{Prod: prod, Base: strings.TrimRight(base, "/")}
}

// Path returns p with the deployment prefix applied. Relative paths, absolute
// URLs and everything in development mode come back untouched.
func (r Resolver) Path(p string) string {
	if !r.Prod || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return p
	}
	return r.Base + p
}

// Root is the URL prefix the site is mounted under ("" in development).
func (r Resolver) Root() string {
	if !r.Prod {
		return ""
	}
	return r.Base
}
