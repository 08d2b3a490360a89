package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harness/yrm/cmd/cmdutils"
	"github.com/harness/yrm/config"
	"github.com/harness/yrm/internal/style"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("YRM_NPM_MODE", "npmrc")
	t.Cleanup(func() {
		config.Global = config.GlobalFlags{}
		style.Init(true)
	})

	root := newRootCmd(cmdutils.NewFactory())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "yrm version dev\n"))
}

func TestNoArgsPrintsHelp(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	for _, name := range []string{"ls", "current", "use", "add", "del", "home", "test"} {
		assert.Contains(t, out, name)
	}
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "--home", t.TempDir(), "--format", "yaml", "ls")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}

func TestJSONFlag(t *testing.T) {
	home := t.TempDir()

	out, err := execute(t, "--home", home, "--json", "ls")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 8)
	assert.Equal(t, "npm", rows[0]["name"])
	assert.Equal(t, true, rows[0]["active"])
}

func TestEndToEnd(t *testing.T) {
	home := t.TempDir()

	_, err := execute(t, "--home", home, "add", "company", "https://npm.example.com")
	require.NoError(t, err)

	_, err = execute(t, "--home", home, "use", "company")
	require.NoError(t, err)

	yarnrc, err := os.ReadFile(filepath.Join(home, ".yarnrc"))
	require.NoError(t, err)
	assert.Equal(t, `registry "https://npm.example.com/"`, string(yarnrc))

	out, err := execute(t, "--home", home, "current")
	require.NoError(t, err)
	assert.Equal(t, "company\n", out)
}

func TestMissingRequiredSettings(t *testing.T) {
	home := t.TempDir()

	_, err := execute(t, "--home", home, "--config", filepath.Join(home, "missing.yaml"), "ls")
	assert.Error(t, err)
}
