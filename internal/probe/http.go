package probe

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/harness/yrm/util/common/errors"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
)

// DefaultPath is appended to a registry URL to get a cheap miss.
const DefaultPath = "pedding"

// HTTPProber GETs <registry><path>. Any HTTP response counts as success;
// only transport failures are errors.
type HTTPProber struct {
	client *retryablehttp.Client
	path   string
}

// NewHTTPProber builds a prober. retries is the number of extra attempts
// after a transport failure and timeout of zero means no client timeout.
func NewHTTPProber(path string, timeout time.Duration, retries int) *HTTPProber {
	client := retryablehttp.NewClient()
	client.RetryMax = retries
	client.HTTPClient.Timeout = timeout
	client.Logger = leveledLogger{}
	client.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return err != nil, nil
	}

	return &HTTPProber{client: client, path: path}
}

func (p *HTTPProber) Probe(ctx context.Context, registryURL string) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, registryURL+p.path, nil)
	if err != nil {
		return errors.NewProbeError(registryURL, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.NewProbeError(registryURL, err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// leveledLogger routes retryablehttp's logging into zerolog at debug level.
type leveledLogger struct{}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}
