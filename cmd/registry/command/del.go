package command

import (
	"fmt"

	"github.com/harness/yrm/cmd/cmdutils"
	"github.com/harness/yrm/config"
	"github.com/harness/yrm/internal/manager"
	"github.com/harness/yrm/internal/style"
	"github.com/harness/yrm/util/common/printer"

	"github.com/MakeNowJust/heredoc"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewDelCmd wires up:
//
//	yrm del <registry>
func NewDelCmd(f *cmdutils.Factory) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:     "del <registry>",
		Aliases: []string{"delete"},
		Short:   "Delete one custom registry",
		Long: heredoc.Doc(`
			Remove a custom registry from ~/.yrmrc.

			Builtin registries cannot be deleted. When the registry being removed
			is the one in use, yarn and npm are switched back to npm first.
		`),
		Example: heredoc.Doc(`
			# Delete a registry (with confirmation in a terminal)
			yrm del company

			# Skip confirmation in scripts
			yrm del company --force
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			m, err := f.Manager()
			if err != nil {
				return err
			}

			// Prompts write to stderr; stdout carries only the result.
			w := cmd.OutOrStdout()
			if !force && f.Terminal().CanPrompt() {
				confirmed, err := f.ConfirmDeletion(cmd.ErrOrStderr(), name)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.ErrOrStderr(), style.Render(style.DimText, "Deletion cancelled."))
					return nil
				}
			}

			result, err := m.Del(cmd.Context(), name)
			if err != nil {
				return err
			}

			if format() == config.FormatJSON {
				view := struct {
					outcomeView
					Fallback *useView `json:"fallback,omitempty"`
				}{outcomeView: outcomeView{
					Outcome: result.Outcome.String(),
					Entry:   entryView{Name: result.Entry.Name, Registry: result.Entry.Registry, Home: result.Entry.Home},
				}}
				if result.Fallback != nil {
					fb := newUseView(*result.Fallback)
					view.Fallback = &fb
				}
				if err := printer.PrintJson(w, view); err != nil {
					return err
				}
				return fallbackErr(result)
			}

			if result.Outcome == manager.OutcomeNoop {
				fmt.Fprintln(w)
				fmt.Fprintf(w, "    %s %s\n", style.WarningIcon(),
					style.Render(style.Warning, "registry "+name+" is not a custom registry, nothing deleted"))
				fmt.Fprintln(w)
				return nil
			}

			if fb := result.Fallback; fb != nil {
				log.Debug().Str("name", name).Str("fallback", fb.Name).Msg("deleted registry was active")
				fmt.Fprintln(w)
				reportTool(cmd, "YARN", fb.Switch.Yarn.Registry, fb.Switch.Yarn.Err)
				reportTool(cmd, "NPM", fb.Switch.Npm.Registry, fb.Switch.Npm.Err)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, style.Render(style.Success, "    delete registry "+name+" success"))
			fmt.Fprintln(w)
			return fallbackErr(result)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}

// fallbackErr is the failure of switching away from a deleted active
// registry. The entry is gone either way.
func fallbackErr(result manager.DelResult) error {
	if result.Fallback == nil {
		return nil
	}
	return result.Fallback.Switch.Err()
}
