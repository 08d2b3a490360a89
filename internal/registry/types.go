package registry

// Entry is a named package registry endpoint.
type Entry struct {
	Name     string `json:"name" toml:"name"`
	Registry string `json:"registry" toml:"registry"`
	Home     string `json:"home,omitempty" toml:"home"`
}

// Catalog is an insertion-ordered set of entries keyed by name.
// The zero value is an empty catalog ready to use.
type Catalog struct {
	names   []string
	entries map[string]Entry
}

// NewCatalog builds a catalog from entries in order. Later entries with a
// repeated name replace earlier ones in place.
func NewCatalog(entries ...Entry) *Catalog {
	c := &Catalog{}
	for _, e := range entries {
		c.Set(e)
	}
	return c
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Get looks an entry up by name.
func (c *Catalog) Get(name string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	e, ok := c.entries[name]
	return e, ok
}

// Has reports whether name is present.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Set stores e under e.Name. An existing name keeps its position.
func (c *Catalog) Set(e Entry) {
	if c.entries == nil {
		c.entries = make(map[string]Entry)
	}
	if _, ok := c.entries[e.Name]; !ok {
		c.names = append(c.names, e.Name)
	}
	c.entries[e.Name] = e
}

// Delete removes name and reports whether it was present.
func (c *Catalog) Delete(name string) bool {
	if !c.Has(name) {
		return false
	}
	delete(c.entries, name)
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i:i], c.names[i+1:]...)
			break
		}
	}
	return true
}

// Names returns the entry names in iteration order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.names...)
}

// Entries returns the entries in iteration order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, 0, len(c.names))
	for _, n := range c.names {
		out = append(out, c.entries[n])
	}
	return out
}

// Clone returns an independent copy.
func (c *Catalog) Clone() *Catalog {
	return NewCatalog(c.Entries()...)
}

// Merge returns c overlaid with other. Entries of other win on a name
// collision and keep c's position; new names are appended in other's order.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := c.Clone()
	for _, e := range other.Entries() {
		merged.Set(e)
	}
	return merged
}

// FindByURL returns the first entry, in iteration order, whose registry URL
// equals url exactly.
func (c *Catalog) FindByURL(url string) (Entry, bool) {
	for _, e := range c.Entries() {
		if e.Registry == url {
			return e, true
		}
	}
	return Entry{}, false
}
