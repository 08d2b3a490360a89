// Package manager implements the registry commands as typed operations.
// It never prints; the CLI renders the results.
package manager

import (
	"context"
	"strings"
	"time"

	"github.com/harness/yrm/internal/browser"
	"github.com/harness/yrm/internal/pm"
	"github.com/harness/yrm/internal/probe"
	"github.com/harness/yrm/internal/registry"
	"github.com/harness/yrm/internal/store"
	"github.com/harness/yrm/util/common/errors"

	"github.com/rs/zerolog/log"
)

// Outcome tells whether a mutating command changed anything.
type Outcome int

const (
	// OutcomeApplied means the command took effect.
	OutcomeApplied Outcome = iota
	// OutcomeNoop means there was nothing to do: the name already existed
	// for add, or was missing for del and home.
	OutcomeNoop
)

func (o Outcome) String() string {
	if o == OutcomeNoop {
		return "noop"
	}
	return "applied"
}

// CustomStore persists the override layer.
type CustomStore interface {
	registry.CustomSource
	Save(c *registry.Catalog) error
}

// Deps are the collaborators of a Manager.
type Deps struct {
	Builtin *registry.Catalog
	Store   CustomStore
	Adapter pm.Adapter
	Prober  probe.Prober
	Opener  browser.Opener
	// Fallback names the builtin registry to switch to when the active
	// custom registry is deleted.
	Fallback string
}

// Manager runs the registry commands.
type Manager struct {
	resolver *registry.Resolver
	store    CustomStore
	adapter  pm.Adapter
	prober   probe.Prober
	opener   browser.Opener
	fallback string
}

// New returns a Manager over deps.
func New(deps Deps) *Manager {
	fallback := deps.Fallback
	if fallback == "" {
		fallback = "npm"
	}
	return &Manager{
		resolver: registry.NewResolver(deps.Builtin, deps.Store),
		store:    deps.Store,
		adapter:  deps.Adapter,
		prober:   deps.Prober,
		opener:   deps.Opener,
		fallback: fallback,
	}
}

// Row is a catalog entry annotated with whether it is active.
type Row struct {
	registry.Entry
	Active bool `json:"active"`
}

// ListResult is the merged catalog with the active registry marked.
type ListResult struct {
	Active string `json:"active"`
	Rows   []Row  `json:"registries"`
}

// List returns every registry in catalog order.
func (m *Manager) List(ctx context.Context) (ListResult, error) {
	all, err := m.resolver.All()
	if err != nil {
		return ListResult{}, err
	}
	active, err := m.adapter.ActiveRegistry(ctx)
	if err != nil {
		return ListResult{}, err
	}

	result := ListResult{Active: active}
	for _, e := range all.Entries() {
		result.Rows = append(result.Rows, Row{Entry: e, Active: e.Registry == active})
	}
	return result, nil
}

// Current returns the first registry whose URL is the active one. found is
// false when the active URL is not in the catalog.
func (m *Manager) Current(ctx context.Context) (entry registry.Entry, found bool, err error) {
	active, err := m.adapter.ActiveRegistry(ctx)
	if err != nil {
		return registry.Entry{}, false, err
	}
	all, err := m.resolver.All()
	if err != nil {
		return registry.Entry{}, false, err
	}
	entry, found = all.FindByURL(active)
	return entry, found, nil
}

// UseResult is the outcome of switching registries.
type UseResult struct {
	Name   string          `json:"name"`
	Found  bool            `json:"found"`
	Switch pm.SwitchResult `json:"switch"`
}

// Use points the package managers at the named registry. An unknown name
// is reported through Found and touches nothing.
func (m *Manager) Use(ctx context.Context, name string) (UseResult, error) {
	all, err := m.resolver.All()
	if err != nil {
		return UseResult{}, err
	}
	entry, ok := all.Get(name)
	if !ok {
		return UseResult{Name: name}, nil
	}
	return m.use(ctx, entry), nil
}

func (m *Manager) use(ctx context.Context, entry registry.Entry) UseResult {
	log.Debug().Str("name", entry.Name).Str("registry", entry.Registry).Msg("using registry")
	return UseResult{
		Name:   entry.Name,
		Found:  true,
		Switch: m.adapter.SetActiveRegistry(ctx, entry.Registry),
	}
}

// AddResult is the outcome of adding a custom registry.
type AddResult struct {
	Outcome Outcome        `json:"-"`
	Entry   registry.Entry `json:"entry"`
}

// Add stores a custom registry. An existing custom name is left untouched
// and reported as OutcomeNoop.
func (m *Manager) Add(_ context.Context, name, url, home string) (AddResult, error) {
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" {
		return AddResult{}, errors.NewValidationError("name", "registry name cannot be empty")
	}
	if name == store.ReservedName {
		return AddResult{}, errors.NewValidationError("name", "registry name "+name+" is reserved")
	}
	if url == "" {
		return AddResult{}, errors.NewValidationError("url", "registry url cannot be empty")
	}

	custom, err := m.resolver.Custom()
	if err != nil {
		return AddResult{}, err
	}
	if existing, ok := custom.Get(name); ok {
		return AddResult{Outcome: OutcomeNoop, Entry: existing}, nil
	}

	entry := registry.Entry{
		Name:     name,
		Registry: registry.NormalizeURL(url),
		Home:     home,
	}
	custom.Set(entry)
	if err := m.store.Save(custom); err != nil {
		return AddResult{}, err
	}
	return AddResult{Outcome: OutcomeApplied, Entry: entry}, nil
}

// DelResult is the outcome of deleting a custom registry.
type DelResult struct {
	Outcome Outcome        `json:"-"`
	Entry   registry.Entry `json:"entry"`
	// Fallback is set when the deleted registry was active and the
	// package managers were switched away from it first.
	Fallback *UseResult `json:"fallback,omitempty"`
}

// Del removes a custom registry. A missing name is OutcomeNoop. Deleting
// the active registry first switches to the builtin fallback; the entry is
// removed even if that switch partly fails.
func (m *Manager) Del(ctx context.Context, name string) (DelResult, error) {
	custom, err := m.resolver.Custom()
	if err != nil {
		return DelResult{}, err
	}
	entry, ok := custom.Get(name)
	if !ok {
		return DelResult{Outcome: OutcomeNoop, Entry: registry.Entry{Name: name}}, nil
	}

	active, err := m.adapter.ActiveRegistry(ctx)
	if err != nil {
		return DelResult{}, err
	}

	result := DelResult{Outcome: OutcomeApplied, Entry: entry}
	if active == entry.Registry {
		fallback, ok := m.resolver.Builtin().Get(m.fallback)
		if !ok {
			return DelResult{}, errors.Wrap(errors.ErrNotFound, "fallback registry "+m.fallback)
		}
		used := m.use(ctx, fallback)
		result.Fallback = &used
	}

	custom.Delete(name)
	if err := m.store.Save(custom); err != nil {
		return DelResult{}, err
	}
	return result, nil
}

// HomeResult is the outcome of opening a homepage.
type HomeResult struct {
	Outcome Outcome `json:"-"`
	URL     string  `json:"url,omitempty"`
}

// Home opens the named registry's homepage. Unknown names and registries
// without a homepage are OutcomeNoop.
func (m *Manager) Home(_ context.Context, name, browserName string) (HomeResult, error) {
	all, err := m.resolver.All()
	if err != nil {
		return HomeResult{}, err
	}
	entry, ok := all.Get(name)
	if !ok || entry.Home == "" {
		return HomeResult{Outcome: OutcomeNoop}, nil
	}
	if err := m.opener.Open(entry.Home, browserName); err != nil {
		return HomeResult{}, err
	}
	return HomeResult{Outcome: OutcomeApplied, URL: entry.Home}, nil
}

// TestRow is one latency measurement.
type TestRow struct {
	Row
	Elapsed time.Duration `json:"elapsed"`
	Err     error         `json:"-"`
}

// Failed reports whether the probe errored.
func (r TestRow) Failed() bool {
	return r.Err != nil
}

// TestResult holds measurements in selection order.
type TestResult struct {
	Active string    `json:"active"`
	Rows   []TestRow `json:"registries"`
}

// Test probes the registries selected by pattern (all of them when empty)
// concurrently.
func (m *Manager) Test(ctx context.Context, pattern string) (TestResult, error) {
	all, err := m.resolver.All()
	if err != nil {
		return TestResult{}, err
	}
	selected, err := registry.Select(all, pattern)
	if err != nil {
		return TestResult{}, errors.NewValidationError("registry", err.Error())
	}

	results := probe.Run(ctx, m.prober, selected.Entries())

	active, err := m.adapter.ActiveRegistry(ctx)
	if err != nil {
		return TestResult{}, err
	}

	out := TestResult{Active: active}
	for _, r := range results {
		entry, _ := selected.Get(r.Name)
		out.Rows = append(out.Rows, TestRow{
			Row:     Row{Entry: entry, Active: r.Registry == active},
			Elapsed: r.Elapsed,
			Err:     r.Err,
		})
	}
	return out, nil
}
