package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harness/yrm/util/common/fileutil"

	"gopkg.in/yaml.v3"
)

// npm backends
const (
	NpmModeAuto  = "auto"
	NpmModeExec  = "exec"
	NpmModeNpmrc = "npmrc"
)

// Config represents the optional settings file
type Config struct {
	Npm      NpmConfig   `yaml:"npm"`
	Probe    ProbeConfig `yaml:"probe"`
	Fallback string      `yaml:"fallback"`
}

// NpmConfig selects how the npm registry setting is read and written
type NpmConfig struct {
	Mode   string `yaml:"mode"`
	Binary string `yaml:"binary"`
}

// ProbeConfig tunes the latency test
type ProbeConfig struct {
	Path    string        `yaml:"path"`
	Timeout time.Duration `yaml:"timeout"`
	Retries int           `yaml:"retries"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Npm: NpmConfig{
			Mode:   NpmModeAuto,
			Binary: "npm",
		},
		Probe: ProbeConfig{
			Path: "pedding",
		},
		Fallback: "npm",
	}
}

// LoadConfig loads the settings file at path on top of the defaults.
// A missing file is only an error when required is set.
func LoadConfig(path string, required bool) (*Config, error) {
	config := Default()

	if path != "" && fileutil.Exists(path) {
		data, err := fileutil.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		expandedData := expandEnvInYaml(string(data))
		if err := yaml.Unmarshal([]byte(expandedData), config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	} else if required {
		return nil, fmt.Errorf("config file %s not found", path)
	}

	applyEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// expandEnvInYaml expands environment variables in YAML content
func expandEnvInYaml(content string) string {
	return os.Expand(content, func(key string) string {
		return os.Getenv(key)
	})
}

func applyEnv(config *Config) {
	if envVal := os.Getenv("YRM_NPM_MODE"); envVal != "" {
		config.Npm.Mode = envVal
	}
}

// validateConfig performs basic validation on the configuration
func validateConfig(config *Config) error {
	config.Npm.Mode = strings.ToLower(strings.TrimSpace(config.Npm.Mode))
	switch config.Npm.Mode {
	case NpmModeAuto, NpmModeExec, NpmModeNpmrc:
	default:
		return fmt.Errorf("invalid npm mode: %s, must be 'auto', 'exec' or 'npmrc'", config.Npm.Mode)
	}

	if config.Npm.Binary == "" {
		config.Npm.Binary = "npm"
	}
	if config.Probe.Timeout < 0 {
		return fmt.Errorf("probe timeout must not be negative")
	}
	if config.Probe.Retries < 0 {
		return fmt.Errorf("probe retries must not be negative")
	}
	if config.Fallback == "" {
		return fmt.Errorf("fallback registry must be specified")
	}

	return nil
}

// Paths holds every file location the tool touches, all rooted at one home
// directory so tests can point them at a temporary directory.
type Paths struct {
	Home     string
	YrmRC    string
	YarnRC   string
	NpmRC    string
	Settings string
}

// NewPaths builds the file locations under home.
func NewPaths(home string) Paths {
	return Paths{
		Home:     home,
		YrmRC:    filepath.Join(home, ".yrmrc"),
		YarnRC:   filepath.Join(home, ".yarnrc"),
		NpmRC:    filepath.Join(home, ".npmrc"),
		Settings: filepath.Join(home, ".yrm", "config.yaml"),
	}
}

// ResolveHome picks the home directory: the explicit override, then
// YRM_HOME, then the user's home directory.
func ResolveHome(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if envVal := os.Getenv("YRM_HOME"); envVal != "" {
		return envVal, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return homeDir, nil
}
