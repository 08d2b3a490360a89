// Package terminal decides what the current process may do with its
// terminal: emit colour, show a spinner, or prompt the user.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Info holds the resolved terminal state for the current process.
type Info struct {
	// IsTerminal is true when stdout is connected to a TTY.
	IsTerminal bool
	// StdinIsTerminal is true when stdin is connected to a TTY.
	StdinIsTerminal bool
	// ColorEnabled is true when ANSI colours should be emitted.
	ColorEnabled bool
}

// Detect inspects the environment. noColor is the --no-color flag; the
// NO_COLOR convention (https://no-color.org/) is honoured as well.
func Detect(noColor bool) Info {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))

	envNoColor := os.Getenv("NO_COLOR") != ""

	return Info{
		IsTerminal:      isTTY,
		StdinIsTerminal: stdinTTY,
		ColorEnabled:    isTTY && !noColor && !envNoColor && !IsDumb(),
	}
}

// CanPrompt reports whether interactive prompts may be shown.
func (i Info) CanPrompt() bool {
	return i.IsTerminal && i.StdinIsTerminal && !IsCI()
}

// CanAnimate reports whether a spinner may be drawn.
func (i Info) CanAnimate() bool {
	return i.IsTerminal && !IsDumb() && !IsCI()
}

// IsDumb returns true when the terminal is known to have no capabilities
// (e.g. TERM=dumb or running inside Emacs).
func IsDumb() bool {
	t := strings.ToLower(os.Getenv("TERM"))
	return t == "dumb" || t == ""
}

// IsCI returns true when a well-known CI environment variable is set.
func IsCI() bool {
	ciVars := []string{"CI", "GITHUB_ACTIONS", "JENKINS_URL", "GITLAB_CI", "CIRCLECI", "TRAVIS"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}
