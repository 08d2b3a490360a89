// Package browser opens registry homepages.
package browser

import (
	"github.com/rs/zerolog/log"
	"github.com/skratchdot/open-golang/open"
)

// Opener opens a URL, optionally in a named browser application.
type Opener interface {
	Open(url, browser string) error
}

// System opens URLs with the platform's default handler.
type System struct{}

func (System) Open(url, browser string) error {
	log.Debug().Str("url", url).Str("browser", browser).Msg("opening homepage")
	if browser == "" {
		return open.Start(url)
	}
	return open.StartWith(url, browser)
}
