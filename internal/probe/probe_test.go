package probe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/harness/yrm/internal/registry"
	yerrors "github.com/harness/yrm/util/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type delayProber struct {
	mu       sync.Mutex
	delays   map[string]time.Duration
	failures map[string]error
	finished []string
}

func (d *delayProber) Probe(ctx context.Context, url string) error {
	select {
	case <-time.After(d.delays[url]):
	case <-ctx.Done():
		return ctx.Err()
	}
	d.mu.Lock()
	d.finished = append(d.finished, url)
	d.mu.Unlock()
	return d.failures[url]
}

func TestRun_KeepsSelectionOrder(t *testing.T) {
	entries := []registry.Entry{
		{Name: "slow", Registry: "http://slow/"},
		{Name: "medium", Registry: "http://medium/"},
		{Name: "fast", Registry: "http://fast/"},
	}
	boom := errors.New("connection refused")
	p := &delayProber{
		delays: map[string]time.Duration{
			"http://slow/":   60 * time.Millisecond,
			"http://medium/": 30 * time.Millisecond,
			"http://fast/":   0,
		},
		failures: map[string]error{"http://medium/": boom},
	}

	results := Run(context.Background(), p, entries)

	require.Len(t, results, 3)
	for i, e := range entries {
		assert.Equal(t, e.Name, results[i].Name)
		assert.Equal(t, e.Registry, results[i].Registry)
	}
	assert.Equal(t, []string{"http://fast/", "http://medium/", "http://slow/"}, p.finished)

	assert.False(t, results[0].Failed())
	assert.True(t, results[1].Failed())
	assert.ErrorIs(t, results[1].Err, boom)
	assert.False(t, results[2].Failed())
	assert.GreaterOrEqual(t, results[0].Elapsed, 60*time.Millisecond)
}

func TestRun_Concurrent(t *testing.T) {
	entries := make([]registry.Entry, 20)
	delays := map[string]time.Duration{}
	for i := range entries {
		url := "http://r" + string(rune('a'+i)) + "/"
		entries[i] = registry.Entry{Name: url, Registry: url}
		delays[url] = 50 * time.Millisecond
	}

	start := time.Now()
	results := Run(context.Background(), &delayProber{delays: delays}, entries)

	assert.Len(t, results, 20)
	assert.Less(t, time.Since(start), 20*50*time.Millisecond, "probes should overlap")
}

func TestRun_Empty(t *testing.T) {
	assert.Empty(t, Run(context.Background(), &delayProber{}, nil))
}

func TestHTTPProber(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		http.NotFound(w, r)
	}))
	defer srv.Close()

	p := NewHTTPProber(DefaultPath, 0, 0)
	err := p.Probe(context.Background(), srv.URL+"/registry/")

	assert.NoError(t, err, "an HTTP error status still counts as a response")
	assert.Equal(t, "/registry/pedding", gotPath)
}

func TestHTTPProber_ServerError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewHTTPProber(DefaultPath, 0, 3).Probe(context.Background(), srv.URL+"/")
	assert.NoError(t, err)
	assert.Equal(t, 1, calls, "responses are never retried")
}

func TestHTTPProber_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/"
	srv.Close()

	err := NewHTTPProber(DefaultPath, time.Second, 0).Probe(context.Background(), url)
	require.Error(t, err)

	var probeErr *yerrors.ProbeError
	require.True(t, errors.As(err, &probeErr))
	assert.Equal(t, url, probeErr.Registry)
}
