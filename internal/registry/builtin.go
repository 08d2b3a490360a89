package registry

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed registries.toml
var builtinTable []byte

type table struct {
	Registry []Entry `toml:"registry"`
}

var (
	builtinOnce    sync.Once
	builtinCatalog *Catalog
	builtinErr     error
)

// Builtin returns a copy of the registry table shipped with the binary.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtinCatalog, builtinErr = ParseTable(builtinTable)
	})
	if builtinErr != nil {
		return nil, builtinErr
	}
	return builtinCatalog.Clone(), nil
}

// ParseTable decodes a TOML registry table made of [[registry]] entries.
func ParseTable(data []byte) (*Catalog, error) {
	var t table
	if _, err := toml.Decode(string(data), &t); err != nil {
		return nil, fmt.Errorf("failed to decode registry table: %w", err)
	}

	c := &Catalog{}
	for i, e := range t.Registry {
		if e.Name == "" {
			return nil, fmt.Errorf("registry table entry %d has no name", i)
		}
		if c.Has(e.Name) {
			return nil, fmt.Errorf("registry table has duplicate name %q", e.Name)
		}
		if !strings.HasSuffix(e.Registry, "/") {
			return nil, fmt.Errorf("registry %q url %q must end with /", e.Name, e.Registry)
		}
		c.Set(e)
	}
	return c, nil
}
