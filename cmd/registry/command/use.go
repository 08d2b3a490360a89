package command

import (
	"fmt"

	"github.com/harness/yrm/cmd/cmdutils"
	"github.com/harness/yrm/config"
	"github.com/harness/yrm/internal/registry"
	"github.com/harness/yrm/internal/style"
	"github.com/harness/yrm/util/common/errors"
	"github.com/harness/yrm/util/common/printer"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

// NewUseCmd wires up:
//
//	yrm use [registry]
func NewUseCmd(f *cmdutils.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "use [registry]",
		Short: "Change registry to registry",
		Long: heredoc.Doc(`
			Point both yarn and npm at the named registry.

			yarn's rc file is overwritten and npm's registry setting is updated.
			The two writes are independent: a failure of one is reported and the
			other still happens. Without an argument in a terminal, a picker is
			shown instead.
		`),
		Example: heredoc.Doc(`
			# Switch to the taobao mirror
			yrm use taobao

			# Pick interactively
			yrm use
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := f.Manager()
			if err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				if !f.Terminal().CanPrompt() {
					return errors.NewValidationError("registry", "a registry name is required when not running in a terminal")
				}
				list, err := m.List(cmd.Context())
				if err != nil {
					return err
				}
				entries := make([]registry.Entry, 0, len(list.Rows))
				for _, r := range list.Rows {
					entries = append(entries, r.Entry)
				}
				name, err = f.PickRegistry(entries, list.Active)
				if err != nil {
					return err
				}
			}

			result, err := m.Use(cmd.Context(), name)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format() == config.FormatJSON {
				if err := printer.PrintJson(w, newUseView(result)); err != nil {
					return err
				}
				return result.Switch.Err()
			}

			if !result.Found {
				fmt.Fprintln(w)
				fmt.Fprintln(w, style.Render(style.Warning, "   Not find registry: "+name))
				fmt.Fprintln(w)
				return nil
			}

			fmt.Fprintln(w)
			reportTool(cmd, "YARN", result.Switch.Yarn.Registry, result.Switch.Yarn.Err)
			reportTool(cmd, "NPM", result.Switch.Npm.Registry, result.Switch.Npm.Err)
			fmt.Fprintln(w)
			return result.Switch.Err()
		},
	}
}

// reportTool prints the outcome of switching one tool. Success goes to
// stdout, failure to stderr.
func reportTool(cmd *cobra.Command, tool, url string, err error) {
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), style.Render(style.Error, fmt.Sprintf("   %s Registry was not set: %v", tool, err)))
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), style.Render(style.Success, fmt.Sprintf("   %s Registry has been set to: %s", tool, url)))
}
