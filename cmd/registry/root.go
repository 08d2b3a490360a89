package registry

import (
	"github.com/harness/yrm/cmd/cmdutils"
	"github.com/harness/yrm/cmd/registry/command"

	"github.com/spf13/cobra"
)

// AddCommands attaches the registry commands to root.
func AddCommands(root *cobra.Command, f *cmdutils.Factory) {
	root.AddCommand(command.NewListCmd(f))
	root.AddCommand(command.NewCurrentCmd(f))
	root.AddCommand(command.NewUseCmd(f))
	root.AddCommand(command.NewAddCmd(f))
	root.AddCommand(command.NewDelCmd(f))
	root.AddCommand(command.NewHomeCmd(f))
	root.AddCommand(command.NewTestCmd(f))
}
