package config

// GlobalFlags contains common flags used across commands
type GlobalFlags struct {
	// HomeDir overrides the directory holding .yrmrc, .yarnrc and .npmrc
	HomeDir string
	// ConfigPath points at the optional settings file
	ConfigPath string
	// Format of command output: text, table or json
	Format  string
	Verbose bool
	NoColor bool
}

// Output formats accepted by --format
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Global is the shared instance of GlobalFlags
var Global = GlobalFlags{}
