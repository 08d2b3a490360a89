package cmdutils

import (
	"io"
	"sync"

	"github.com/harness/yrm/config"
	"github.com/harness/yrm/internal/browser"
	settings "github.com/harness/yrm/internal/config"
	"github.com/harness/yrm/internal/manager"
	"github.com/harness/yrm/internal/pm"
	"github.com/harness/yrm/internal/probe"
	"github.com/harness/yrm/internal/registry"
	"github.com/harness/yrm/internal/store"
	"github.com/harness/yrm/internal/terminal"
	"github.com/harness/yrm/internal/tui"

	"github.com/rs/zerolog/log"
)

// Factory hands commands their collaborators. Every field can be replaced,
// which is how the command tests run against a temporary home directory.
type Factory struct {
	// Manager builds the registry manager on first use.
	Manager func() (*manager.Manager, error)
	// Terminal reports what the process may do with its terminal.
	Terminal func() terminal.Info
	// PickRegistry asks the user to choose a registry.
	PickRegistry func(entries []registry.Entry, active string) (string, error)
	// ConfirmDeletion asks the user to confirm removing a registry.
	ConfirmDeletion func(w io.Writer, name string) (bool, error)
}

func NewFactory() *Factory {
	return &Factory{
		Manager: sync.OnceValues(buildManager),
		Terminal: func() terminal.Info {
			return terminal.Detect(config.Global.NoColor)
		},
		PickRegistry:    tui.PickRegistry,
		ConfirmDeletion: tui.ConfirmDeletion,
	}
}

// buildManager resolves the home directory and settings from the global
// flags and assembles the production stack.
func buildManager() (*manager.Manager, error) {
	home, err := settings.ResolveHome(config.Global.HomeDir)
	if err != nil {
		return nil, err
	}
	paths := settings.NewPaths(home)

	settingsPath, required := paths.Settings, false
	if config.Global.ConfigPath != "" {
		settingsPath, required = config.Global.ConfigPath, true
	}
	cfg, err := settings.LoadConfig(settingsPath, required)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("home", home).
		Str("settings", settingsPath).
		Str("npm_mode", cfg.Npm.Mode).
		Msg("resolved configuration")

	return NewManager(paths, cfg)
}

// NewManager assembles a Manager over the files in paths.
func NewManager(paths settings.Paths, cfg *settings.Config) (*manager.Manager, error) {
	builtin, err := registry.Builtin()
	if err != nil {
		return nil, err
	}
	npm, err := pm.NewNpmConfig(cfg.Npm, paths.NpmRC)
	if err != nil {
		return nil, err
	}

	return manager.New(manager.Deps{
		Builtin:  builtin,
		Store:    store.New(paths.YrmRC),
		Adapter:  pm.New(pm.NewYarnRC(paths.YarnRC), npm),
		Prober:   probe.NewHTTPProber(cfg.Probe.Path, cfg.Probe.Timeout, cfg.Probe.Retries),
		Opener:   browser.System{},
		Fallback: cfg.Fallback,
	}), nil
}
