package pm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harness/yrm/internal/config"
	yerrors "github.com/harness/yrm/util/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	calls  [][]string
	values map[string]string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.err != nil {
		return nil, f.err
	}
	switch args[1] {
	case "get":
		return []byte(f.values[args[2]] + "\n"), nil
	case "set":
		f.values[args[2]] = args[3]
		return nil, nil
	}
	return nil, fmt.Errorf("unexpected args %v", args)
}

func TestExecNpm(t *testing.T) {
	runner := &fakeRunner{values: map[string]string{"registry": "https://registry.npmjs.org/"}}
	npm := NewExecNpm("npm", runner)
	ctx := context.Background()

	got, err := npm.Get(ctx, "registry")
	require.NoError(t, err)
	assert.Equal(t, "https://registry.npmjs.org/", got)

	require.NoError(t, npm.Set(ctx, "registry", "http://example.com/"))
	assert.Equal(t, []string{"npm", "config", "set", "registry", "http://example.com/"}, runner.calls[1])
	assert.Equal(t, "http://example.com/", runner.values["registry"])
}

func TestExecNpm_Errors(t *testing.T) {
	ctx := context.Background()

	missing := NewExecNpm("npm", &fakeRunner{err: &exec.Error{Name: "npm", Err: exec.ErrNotFound}})
	_, err := missing.Get(ctx, "registry")
	var loadErr *yerrors.AdapterLoadError
	assert.True(t, errors.As(err, &loadErr), "got %v", err)

	failing := NewExecNpm("npm", &fakeRunner{err: errors.New("exit status 1")})
	err = failing.Set(ctx, "registry", "http://x/")
	var cfgErr *yerrors.AdapterConfigError
	require.True(t, errors.As(err, &cfgErr), "got %v", err)
	assert.Equal(t, "set", cfgErr.Op)
}

func TestNpmrcFile_GetDefault(t *testing.T) {
	npm := NewNpmrcFile(filepath.Join(t.TempDir(), ".npmrc"))

	got, err := npm.Get(context.Background(), "registry")
	require.NoError(t, err)
	assert.Equal(t, DefaultNpmRegistry, got)
}

func TestNpmrcFile_SetPreservesOtherLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".npmrc")
	existing := strings.Join([]string{
		"@myorg:registry=https://npm.myorg.io/",
		"registry = https://old.example.com/",
		"//npm.myorg.io/:_authToken=secret",
		"always-auth=true",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(existing), 0600))

	npm := NewNpmrcFile(path)
	ctx := context.Background()
	require.NoError(t, npm.Set(ctx, "registry", "https://registry.npm.taobao.org/"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"@myorg:registry=https://npm.myorg.io/",
		"registry=https://registry.npm.taobao.org/",
		"//npm.myorg.io/:_authToken=secret",
		"always-auth=true",
	}, "\n")+"\n", string(data))

	got, err := npm.Get(ctx, "registry")
	require.NoError(t, err)
	assert.Equal(t, "https://registry.npm.taobao.org/", got)
}

func TestNpmrcFile_SetAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".npmrc")
	require.NoError(t, os.WriteFile(path, []byte("save-exact=true\n"), 0600))

	require.NoError(t, NewNpmrcFile(path).Set(context.Background(), "registry", "http://a/"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "save-exact=true\nregistry=http://a/\n", string(data))
}

func TestYarnRC(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".yarnrc")
	require.NoError(t, os.WriteFile(path, []byte("# yarn lockfile v1\nyarn-path \".yarn/releases/yarn.js\"\n"), 0644))
	y := NewYarnRC(path)

	require.NoError(t, y.SetRegistry("https://registry.yarnpkg.com/"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `registry "https://registry.yarnpkg.com/"`, string(data))

	got, err := y.Registry()
	require.NoError(t, err)
	assert.Equal(t, "https://registry.yarnpkg.com/", got)
}

type fakeNpm struct {
	value  string
	getErr error
	setErr error
}

func (f *fakeNpm) Get(context.Context, string) (string, error) {
	return f.value, f.getErr
}

func (f *fakeNpm) Set(_ context.Context, _, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.value = value
	return nil
}

func TestPackageManagers_Switch(t *testing.T) {
	dir := t.TempDir()
	yarn := NewYarnRC(filepath.Join(dir, ".yarnrc"))
	npm := &fakeNpm{value: DefaultNpmRegistry}
	adapter := New(yarn, npm)
	ctx := context.Background()

	res := adapter.SetActiveRegistry(ctx, "http://example.com/api/")
	require.NoError(t, res.Err())
	assert.Equal(t, "http://example.com/api/", res.Yarn.Registry)
	assert.Equal(t, "http://example.com/api/", res.Npm.Registry)

	active, err := adapter.ActiveRegistry(ctx)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/api/", active)
}

func TestPackageManagers_PartialFailure(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	t.Run("npm fails, yarn still written", func(t *testing.T) {
		yarnPath := filepath.Join(dir, "ok", ".yarnrc")
		npmErr := yerrors.NewAdapterConfigError(ToolNpm, "set", errors.New("EACCES"))
		adapter := New(NewYarnRC(yarnPath), &fakeNpm{setErr: npmErr})

		res := adapter.SetActiveRegistry(ctx, "http://a/")
		assert.True(t, res.Yarn.OK())
		assert.False(t, res.Npm.OK())
		assert.ErrorIs(t, res.Err(), npmErr)

		data, err := os.ReadFile(yarnPath)
		require.NoError(t, err)
		assert.Equal(t, `registry "http://a/"`, string(data))
	})

	t.Run("yarn fails, npm still written", func(t *testing.T) {
		blocked := filepath.Join(dir, "blocked")
		require.NoError(t, os.Mkdir(blocked, 0755))
		yarnPath := filepath.Join(blocked, ".yarnrc")
		require.NoError(t, os.Mkdir(yarnPath, 0755))
		npm := &fakeNpm{value: DefaultNpmRegistry}

		res := New(NewYarnRC(yarnPath), npm).SetActiveRegistry(ctx, "http://b/")
		assert.False(t, res.Yarn.OK())
		assert.True(t, res.Npm.OK())
		assert.Equal(t, "http://b/", npm.value)
		assert.Error(t, res.Err())
	})
}

func TestNewNpmConfig(t *testing.T) {
	npmrc := filepath.Join(t.TempDir(), ".npmrc")
	orig := lookPath
	defer func() { lookPath = orig }()

	lookPath = func(string) (string, error) { return "", exec.ErrNotFound }
	got, err := NewNpmConfig(config.NpmConfig{Mode: config.NpmModeAuto, Binary: "npm"}, npmrc)
	require.NoError(t, err)
	assert.IsType(t, &NpmrcFile{}, got)

	lookPath = func(string) (string, error) { return "/usr/bin/npm", nil }
	got, err = NewNpmConfig(config.NpmConfig{Mode: config.NpmModeAuto, Binary: "npm"}, npmrc)
	require.NoError(t, err)
	assert.IsType(t, &ExecNpm{}, got)

	got, err = NewNpmConfig(config.NpmConfig{Mode: config.NpmModeNpmrc}, npmrc)
	require.NoError(t, err)
	assert.IsType(t, &NpmrcFile{}, got)

	_, err = NewNpmConfig(config.NpmConfig{Mode: "pnpm"}, npmrc)
	assert.ErrorIs(t, err, yerrors.ErrInvalidArgument)
}
