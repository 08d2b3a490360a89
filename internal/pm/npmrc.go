package pm

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/harness/yrm/internal/config"
	"github.com/harness/yrm/util/common/errors"
	"github.com/harness/yrm/util/common/fileutil"

	"github.com/rs/zerolog/log"
	"gopkg.in/ini.v1"
)

// DefaultNpmRegistry is what npm uses when no registry is configured.
const DefaultNpmRegistry = "https://registry.npmjs.org/"

var lookPath = exec.LookPath

// NpmrcFile edits the user's .npmrc directly, for machines without an npm
// binary on PATH.
type NpmrcFile struct {
	path string
}

// NewNpmrcFile returns an NpmrcFile at path.
func NewNpmrcFile(path string) *NpmrcFile {
	return &NpmrcFile{path: path}
}

func (n *NpmrcFile) Get(_ context.Context, key string) (string, error) {
	value := ""
	if fileutil.Exists(n.path) {
		data, err := fileutil.ReadFile(n.path)
		if err != nil {
			return "", errors.NewAdapterLoadError(ToolNpm, err)
		}
		cfg, err := ini.LoadSources(ini.LoadOptions{
			IgnoreInlineComment: true,
			AllowBooleanKeys:    true,
			KeyValueDelimiters:  "=",
		}, data)
		if err != nil {
			return "", errors.NewAdapterLoadError(ToolNpm, err)
		}
		value = cfg.Section("").Key(key).String()
	}
	if value == "" && key == registryKey {
		value = DefaultNpmRegistry
	}
	return value, nil
}

// Set rewrites the top-level key line in place, or appends one, keeping
// every other line untouched.
func (n *NpmrcFile) Set(_ context.Context, key, value string) error {
	var lines []string
	if fileutil.Exists(n.path) {
		data, err := fileutil.ReadFile(n.path)
		if err != nil {
			return errors.NewAdapterLoadError(ToolNpm, err)
		}
		content := strings.TrimRight(string(data), "\n")
		if content != "" {
			lines = strings.Split(content, "\n")
		}
	}

	newLine := fmt.Sprintf("%s=%s", key, value)
	found := false
	for i, line := range lines {
		k, _, ok := strings.Cut(strings.TrimSpace(line), "=")
		if ok && strings.TrimSpace(k) == key {
			lines[i] = newLine
			found = true
		}
	}
	if !found {
		lines = append(lines, newLine)
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := fileutil.WriteFile(n.path, []byte(content), 0600); err != nil {
		return errors.NewAdapterConfigError(ToolNpm, "set", err)
	}
	return nil
}

// NewNpmConfig picks the npm backend for the configured mode. In auto mode
// the npm binary is used when it is on PATH.
func NewNpmConfig(cfg config.NpmConfig, npmrcPath string) (NpmConfig, error) {
	switch cfg.Mode {
	case config.NpmModeExec:
		return NewExecNpm(cfg.Binary, nil), nil
	case config.NpmModeNpmrc:
		return NewNpmrcFile(npmrcPath), nil
	case config.NpmModeAuto, "":
		if _, err := lookPath(cfg.Binary); err == nil {
			return NewExecNpm(cfg.Binary, nil), nil
		}
		log.Debug().Str("binary", cfg.Binary).Msg("npm not found on PATH, editing .npmrc directly")
		return NewNpmrcFile(npmrcPath), nil
	default:
		return nil, errors.NewValidationError("npm.mode", "unknown mode "+cfg.Mode)
	}
}
