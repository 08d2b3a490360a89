package tui

import (
	"fmt"
	"io"

	"github.com/harness/yrm/internal/registry"
	"github.com/harness/yrm/internal/style"

	"github.com/charmbracelet/huh"
)

// ConfirmDeletion asks before a custom registry is removed, drawing on w.
// Returns true only if the user explicitly confirms.
func ConfirmDeletion(w io.Writer, name string) (bool, error) {
	var confirmed bool

	fmt.Fprintln(w, style.Render(style.Warning, fmt.Sprintf(
		"⚠  You are about to delete registry %s", style.Render(style.Bold, name))))
	fmt.Fprintln(w)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete registry %q?", name)).
				Description("The entry is removed from your custom registries.").
				Affirmative("Yes, delete").
				Negative("No, cancel").
				Value(&confirmed),
		),
	).WithOutput(w)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// PickRegistry shows a selection list of registries with the active one
// preselected, and returns the chosen name.
func PickRegistry(entries []registry.Entry, active string) (string, error) {
	var value string

	opts := make([]huh.Option[string], len(entries))
	for i, e := range entries {
		label := fmt.Sprintf("%-12s %s", e.Name, e.Registry)
		opts[i] = huh.NewOption(label, e.Name).Selected(e.Registry == active)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Switch registry").
				Description("yarn and npm will both point at the chosen registry").
				Options(opts...).
				Value(&value),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}
