package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"time"

	"github.com/harness/yrm/cmd/cmdutils"
	"github.com/harness/yrm/cmd/registry"
	"github.com/harness/yrm/config"
	"github.com/harness/yrm/internal/style"
	"github.com/harness/yrm/internal/terminal"
	"github.com/harness/yrm/internal/tui"
	"github.com/harness/yrm/util/common/errors"

	"github.com/MakeNowJust/heredoc"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// version is set via ldflags during build
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd(cmdutils.NewFactory())

	// Apply styled help template when running in a colour-capable terminal
	termPreCheck := terminal.Detect(slices.Contains(os.Args[1:], "--no-color"))
	style.Init(termPreCheck.ColorEnabled)
	if helpTpl := tui.StyledHelpTemplate(); helpTpl != "" {
		rootCmd.SetUsageTemplate(helpTpl)
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, style.Render(style.Error, "Error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(f *cmdutils.Factory) *cobra.Command {
	var jsonFlag bool

	rootCmd := &cobra.Command{
		Use:           "yrm",
		Short:         "yarn & npm registry manager",
		SilenceUsage:  true,
		SilenceErrors: true, //prevent duplicate printing of errors
		Long: heredoc.Doc(`
			yrm switches yarn and npm between package registries.

			Builtin registries ship with the tool; custom ones are kept in
			~/.yrmrc. Switching writes ~/.yarnrc and npm's registry setting.
		`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			termInfo := terminal.Detect(config.Global.NoColor)
			style.Init(termInfo.ColorEnabled)

			// Override format to JSON when --json is explicitly passed
			if jsonFlag {
				config.Global.Format = config.FormatJSON
			}
			switch config.Global.Format {
			case config.FormatText, config.FormatTable, config.FormatJSON:
			default:
				return errors.NewValidationError("format", "must be one of text, table or json, got "+config.Global.Format)
			}

			// Set up logging based on verbose flag
			if config.Global.Verbose {
				logWriter := zerolog.ConsoleWriter{
					Out:        os.Stderr,
					TimeFormat: time.RFC3339,
					NoColor:    config.Global.NoColor,
				}
				log.Logger = log.Output(logWriter)
			} else {
				// Disable logging when verbose is not enabled
				log.Logger = zerolog.Nop()
			}
			return nil
		},
	}

	// Persistent flags available to all commands - bind them directly to global config
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&config.Global.HomeDir, "home", "",
		"Directory holding .yrmrc, .yarnrc and .npmrc (default $YRM_HOME or your home directory)")
	flags.StringVar(&config.Global.ConfigPath, "config", "",
		"Settings file (default ~/.yrm/config.yaml)")
	flags.StringVar(&config.Global.Format, "format", config.FormatText, "Format of the result: text, table or json")
	flags.BoolVar(&jsonFlag, "json", false, "Output results as JSON (equivalent to --format=json)")
	flags.BoolVarP(&config.Global.Verbose, "verbose", "v", false, "Enable verbose logging to console")
	flags.BoolVar(&config.Global.NoColor, "no-color", false, "Disable colour output (also respects NO_COLOR env)")

	registry.AddCommands(rootCmd, f)
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// versionCmd returns the version command
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of yrm",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "yrm version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Built with %s\n", runtime.Version())
		},
	}
}
