package command

import (
	"fmt"

	"github.com/harness/yrm/cmd/cmdutils"
	"github.com/harness/yrm/config"
	"github.com/harness/yrm/util/common/printer"

	"github.com/spf13/cobra"
)

// NewCurrentCmd wires up:
//
//	yrm current
func NewCurrentCmd(f *cmdutils.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show current registry name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := f.Manager()
			if err != nil {
				return err
			}
			entry, found, err := m.Current(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format() == config.FormatJSON {
				return printer.PrintJson(w, struct {
					Found bool `json:"found"`
					entryView
				}{Found: found, entryView: entryView{Name: entry.Name, Registry: entry.Registry, Home: entry.Home, Active: found}})
			}
			// An active registry outside the catalog prints nothing.
			if found {
				fmt.Fprintln(w, entry.Name)
			}
			return nil
		},
	}
}
