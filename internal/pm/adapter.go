// Package pm bridges to the package managers' own notion of the current
// registry: npm's config store and yarn's rc file.
package pm

import (
	"context"
	"strings"

	"github.com/harness/yrm/util/common/errors"

	"github.com/rs/zerolog/log"
)

// Tool names used in results and errors.
const (
	ToolYarn = "yarn"
	ToolNpm  = "npm"
)

const registryKey = "registry"

// Adapter reads and writes the active registry of the package managers.
type Adapter interface {
	// ActiveRegistry returns the registry npm currently points to.
	ActiveRegistry(ctx context.Context) (string, error)
	// SetActiveRegistry points every tool at url. All writes are attempted
	// even if one fails, and none are rolled back.
	SetActiveRegistry(ctx context.Context, url string) SwitchResult
}

// ToolResult is the outcome of switching one tool.
type ToolResult struct {
	Tool     string `json:"tool"`
	Registry string `json:"registry,omitempty"`
	Err      error  `json:"-"`
}

// OK reports whether the tool was switched.
func (r ToolResult) OK() bool {
	return r.Err == nil
}

// SwitchResult holds the independent outcome of each tool.
type SwitchResult struct {
	Yarn ToolResult `json:"yarn"`
	Npm  ToolResult `json:"npm"`
}

// Err joins the per-tool failures, nil if both succeeded.
func (r SwitchResult) Err() error {
	return errors.Join(r.Yarn.Err, r.Npm.Err)
}

// NpmConfig is npm's configuration subsystem.
type NpmConfig interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// PackageManagers is the Adapter over a yarn rc file and an npm config backend.
type PackageManagers struct {
	yarn *YarnRC
	npm  NpmConfig
}

// New returns an Adapter writing yarn's rc file and npm's config.
func New(yarn *YarnRC, npm NpmConfig) *PackageManagers {
	return &PackageManagers{yarn: yarn, npm: npm}
}

func (p *PackageManagers) ActiveRegistry(ctx context.Context) (string, error) {
	url, err := p.npm.Get(ctx, registryKey)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(url), nil
}

func (p *PackageManagers) SetActiveRegistry(ctx context.Context, url string) SwitchResult {
	result := SwitchResult{
		Yarn: ToolResult{Tool: ToolYarn},
		Npm:  ToolResult{Tool: ToolNpm},
	}

	if err := p.yarn.SetRegistry(url); err != nil {
		result.Yarn.Err = err
	} else {
		result.Yarn.Registry = url
	}

	if err := p.npm.Set(ctx, registryKey, url); err != nil {
		result.Npm.Err = err
	} else if current, err := p.ActiveRegistry(ctx); err != nil {
		result.Npm.Err = err
	} else {
		result.Npm.Registry = current
	}

	log.Debug().
		Str("registry", url).
		AnErr("yarn", result.Yarn.Err).
		AnErr("npm", result.Npm.Err).
		Msg("switched registry")
	return result
}
