// Package store persists the user's custom registries in an INI file, one
// section per registry name:
//
//	[foo]
//	registry = http://example.com/api/
//	home     = http://example.com
//
// Every section must carry a registry key. The name DEFAULT is reserved for
// the headerless top of the file and cannot hold a registry.
package store

import (
	"bytes"
	"fmt"

	"github.com/harness/yrm/internal/registry"
	"github.com/harness/yrm/util/common/errors"
	"github.com/harness/yrm/util/common/fileutil"

	"github.com/rs/zerolog/log"
	"gopkg.in/ini.v1"
)

const (
	keyRegistry = "registry"
	keyHome     = "home"
)

var loadOptions = ini.LoadOptions{
	IgnoreInlineComment: true,
	KeyValueDelimiters:  "=",
}

// ReservedName is the section name the file format keeps for itself.
var ReservedName = ini.DefaultSection

// Store reads and writes the override file.
type Store struct {
	path string
}

// New returns a Store for the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the override file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the custom registries. A missing file yields an empty catalog.
func (s *Store) Load() (*registry.Catalog, error) {
	if !fileutil.Exists(s.path) {
		return &registry.Catalog{}, nil
	}

	data, err := fileutil.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	cfg, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, errors.NewConfigParseError(s.path, err)
	}

	c := &registry.Catalog{}
	for _, sec := range cfg.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		url := sec.Key(keyRegistry).String()
		if url == "" {
			return nil, errors.NewConfigParseError(s.path,
				fmt.Errorf("section [%s] has no %s key", sec.Name(), keyRegistry))
		}
		c.Set(registry.Entry{
			Name:     sec.Name(),
			Registry: url,
			Home:     sec.Key(keyHome).String(),
		})
	}

	log.Debug().Str("path", s.path).Int("count", c.Len()).Msg("loaded custom registries")
	return c, nil
}

// Save overwrites the override file with c.
func (s *Store) Save(c *registry.Catalog) error {
	data, err := Encode(c)
	if err != nil {
		return errors.NewConfigWriteError(s.path, err)
	}
	if err := fileutil.WriteFile(s.path, data, 0644); err != nil {
		return errors.NewConfigWriteError(s.path, err)
	}

	log.Debug().Str("path", s.path).Int("count", c.Len()).Msg("saved custom registries")
	return nil
}

// Encode renders c in the override file format.
func Encode(c *registry.Catalog) ([]byte, error) {
	cfg := ini.Empty(loadOptions)
	for _, e := range c.Entries() {
		if e.Name == ReservedName {
			return nil, errors.NewValidationError("name", "registry name "+ReservedName+" is reserved")
		}
		sec, err := cfg.NewSection(e.Name)
		if err != nil {
			return nil, err
		}
		if _, err := sec.NewKey(keyRegistry, e.Registry); err != nil {
			return nil, err
		}
		if e.Home != "" {
			if _, err := sec.NewKey(keyHome, e.Home); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
