package command

import (
	"fmt"

	"github.com/harness/yrm/cmd/cmdutils"
	"github.com/harness/yrm/config"
	"github.com/harness/yrm/internal/manager"
	"github.com/harness/yrm/internal/style"
	"github.com/harness/yrm/util/common/printer"

	"github.com/spf13/cobra"
)

// NewHomeCmd wires up:
//
//	yrm home <registry> [browser]
func NewHomeCmd(f *cmdutils.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "home <registry> [browser]",
		Short: "Open the homepage of registry with optional browser",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := f.Manager()
			if err != nil {
				return err
			}

			var browser string
			if len(args) == 2 {
				browser = args[1]
			}
			result, err := m.Home(cmd.Context(), args[0], browser)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format() == config.FormatJSON {
				return printer.PrintJson(w, struct {
					Outcome string `json:"outcome"`
					URL     string `json:"url,omitempty"`
				}{Outcome: result.Outcome.String(), URL: result.URL})
			}
			if result.Outcome == manager.OutcomeNoop {
				fmt.Fprintln(cmd.ErrOrStderr(), style.Hint("no homepage known for "+args[0]))
			}
			return nil
		},
	}
}
