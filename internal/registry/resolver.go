package registry

import (
	"strings"

	"github.com/gobwas/glob"
)

// CustomSource loads the user's override layer.
type CustomSource interface {
	Load() (*Catalog, error)
}

// Resolver is the single source of truth for which registries exist. It
// re-reads the override layer on every call.
type Resolver struct {
	builtin *Catalog
	custom  CustomSource
}

// NewResolver combines a builtin table with an override source.
func NewResolver(builtin *Catalog, custom CustomSource) *Resolver {
	return &Resolver{builtin: builtin.Clone(), custom: custom}
}

// Builtin returns a copy of the builtin table.
func (r *Resolver) Builtin() *Catalog {
	return r.builtin.Clone()
}

// All returns the builtin table merged with the override layer.
func (r *Resolver) All() (*Catalog, error) {
	custom, err := r.custom.Load()
	if err != nil {
		return nil, err
	}
	return r.builtin.Merge(custom), nil
}

// Custom returns only the override layer.
func (r *Resolver) Custom() (*Catalog, error) {
	return r.custom.Load()
}

// NormalizeURL makes sure url ends with exactly the slash registries expect.
func NormalizeURL(url string) string {
	if strings.HasSuffix(url, "/") {
		return url
	}
	return url + "/"
}

// Select picks the entries a latency test runs against. An empty pattern
// selects everything, an exact name selects that entry and a glob pattern
// selects every match in catalog order.
func Select(c *Catalog, pattern string) (*Catalog, error) {
	if pattern == "" {
		return c.Clone(), nil
	}
	if e, ok := c.Get(pattern); ok {
		return NewCatalog(e), nil
	}
	if !strings.ContainsAny(pattern, "*?[{") {
		return &Catalog{}, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}
	selected := &Catalog{}
	for _, e := range c.Entries() {
		if g.Match(e.Name) {
			selected.Set(e)
		}
	}
	return selected, nil
}
