package cmd

import (
	"fmt"
	"os"

	"github.com/prettymuchbryce/extops/internal/engine"
	"github.com/spf13/cobra"
)

var version = "dev"

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	logLevel string
	format   string
	noColor  bool
}

func (g *globalOptions) validate() error {
	switch g.format {
	case formatText, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", g.format, formatText, formatYAML)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "extops",
		Short: "extops - find, copy, move, rename and delete files by extension",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			SetupLogging(cmd.ErrOrStderr(), opts.logLevel)
			return opts.validate()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", formatText, "output format: text or yaml")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable styled output (also honours NO_COLOR)")

	rootCmd.AddCommand(
		newSearchCmd(opts),
		newTransferCmd(opts, engine.ActionCopy),
		newTransferCmd(opts, engine.ActionMove),
		newRemoveCmd(opts),
		newRenameCmd(opts),
		newRunCmd(opts),
	)

	return rootCmd
}

func SetVersion(v string) {
	version = v
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
