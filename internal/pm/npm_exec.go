package pm

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/harness/yrm/util/common/errors"

	"github.com/rs/zerolog/log"
)

// Runner runs an external command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil && stderr.Len() > 0 {
		return out, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return out, err
}

// ExecNpm drives `npm config` through the npm binary.
type ExecNpm struct {
	binary string
	runner Runner
}

// NewExecNpm returns an ExecNpm using binary, run through runner.
func NewExecNpm(binary string, runner Runner) *ExecNpm {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &ExecNpm{binary: binary, runner: runner}
}

func (n *ExecNpm) Get(ctx context.Context, key string) (string, error) {
	out, err := n.run(ctx, "get", key)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (n *ExecNpm) Set(ctx context.Context, key, value string) error {
	_, err := n.run(ctx, "set", key, value)
	return err
}

func (n *ExecNpm) run(ctx context.Context, op string, args ...string) ([]byte, error) {
	argv := append([]string{"config", op}, args...)
	log.Debug().Str("tool", ToolNpm).Str("binary", n.binary).Strs("args", argv).Msg("running npm")

	out, err := n.runner.Run(ctx, n.binary, argv...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, errors.NewAdapterLoadError(ToolNpm, err)
		}
		return nil, errors.NewAdapterConfigError(ToolNpm, op, err)
	}
	return out, nil
}
