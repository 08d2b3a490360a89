package tui

import (
	"github.com/harness/yrm/internal/style"
)

// StyledHelpTemplate returns a cobra usage template with coloured headings,
// or "" to keep cobra's default when colour is off. Only the fixed chrome
// is styled; command and flag names come from cobra's template engine.
func StyledHelpTemplate() string {
	if !style.Enabled {
		return ""
	}

	heading := style.Name.Bold(true).Render
	dim := style.DimText.Render

	return heading("Usage") + `:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}
{{if gt (len .Aliases) 0}}
` + heading("Aliases") + `:
  {{.NameAndAliases}}
{{end}}{{if .HasExample}}
` + heading("Examples") + `:
{{.Example}}
{{end}}{{if .HasAvailableSubCommands}}
` + heading("Commands") + `:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }}  {{.Short}}{{end}}{{end}}
{{end}}{{if .HasAvailableLocalFlags}}
` + heading("Flags") + `:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableInheritedFlags}}
` + heading("Global Flags") + `:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableSubCommands}}
` + dim(`Use "{{.CommandPath}} [command] --help" for more information about a command.`) + `
{{end}}`
}
