package pm

import (
	"strings"

	"github.com/harness/yrm/util/common/errors"
	"github.com/harness/yrm/util/common/fileutil"
)

// YarnRC is yarn's rc file. It is owned entirely by this tool and replaced
// on every switch.
type YarnRC struct {
	path string
}

// NewYarnRC returns a YarnRC at path.
func NewYarnRC(path string) *YarnRC {
	return &YarnRC{path: path}
}

// SetRegistry replaces the file with a single registry directive.
func (y *YarnRC) SetRegistry(url string) error {
	content := `registry "` + url + `"`
	if err := fileutil.WriteFile(y.path, []byte(content), 0644); err != nil {
		return errors.NewAdapterConfigError(ToolYarn, "set", err)
	}
	return nil
}

// Registry returns the registry directive's value, empty if unset.
func (y *YarnRC) Registry() (string, error) {
	if !fileutil.Exists(y.path) {
		return "", nil
	}
	data, err := fileutil.ReadFile(y.path)
	if err != nil {
		return "", errors.NewAdapterLoadError(ToolYarn, err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), registryKey+" ")
		if ok {
			return strings.Trim(strings.TrimSpace(rest), `"`), nil
		}
	}
	return "", nil
}
