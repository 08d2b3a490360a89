// Package probe measures the round-trip time of registries.
package probe

import (
	"context"
	"time"

	"github.com/harness/yrm/internal/registry"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Prober issues a single request against a registry base URL.
type Prober interface {
	Probe(ctx context.Context, registryURL string) error
}

// Result is the outcome of probing one registry.
type Result struct {
	Name     string
	Registry string
	Elapsed  time.Duration
	Err      error
}

// Failed reports whether the probe errored.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Run probes every entry at once and waits for all of them. Results come
// back in the order of entries, whatever order the probes finish in. A
// failed probe is recorded on its own result and never stops the others.
func Run(ctx context.Context, p Prober, entries []registry.Entry) []Result {
	runLogger := log.With().
		Str("run_id", uuid.New().String()).
		Int("total", len(entries)).
		Logger()
	runLogger.Debug().Msg("starting probes")

	results := make([]Result, len(entries))
	var g errgroup.Group
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			start := time.Now()
			err := p.Probe(ctx, e.Registry)
			results[i] = Result{
				Name:     e.Name,
				Registry: e.Registry,
				Elapsed:  time.Since(start),
				Err:      err,
			}
			runLogger.Debug().
				Str("registry", e.Registry).
				Dur("elapsed", results[i].Elapsed).
				Err(err).
				Msg("probe finished")
			return nil
		})
	}
	_ = g.Wait()

	return results
}
