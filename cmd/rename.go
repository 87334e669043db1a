package cmd

import (
	"fmt"

	"github.com/prettymuchbryce/extops/internal/engine"
	"github.com/prettymuchbryce/extops/internal/naming"
	"github.com/spf13/cobra"
)

func newRenameCmd(g *globalOptions) *cobra.Command {
	var (
		m        matchOptions
		dryRun   bool
		template string
	)

	cmd := &cobra.Command{
		Use:   "rename <extension> [directory]",
		Short: "Rename files using the numbers found in their names",
		Long: `Rename files with the given extension directly inside a directory, building
each new name from a template. The original extension is kept.

Template variables:
  ${number}      first number in the original name (leading zeros dropped)
  ${numbers[N]}  N-th number in the original name, starting at 0
  ${name}        original name without extension
  ${ext}         original extension, including the dot
  %Y, %m, %d...  current date and time (strftime)

Files without a number are skipped. Runs as a dry run unless --dry-run=false.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg(args, 1)
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Fprintln(cmd.ErrOrStderr(), "Dry-run mode enabled (pass --dry-run=false to rename files)")
			}

			e := g.newEngine(engine.Request{
				Criteria: m.criteria(args[0]),
				Source:   dir,
			}, dryRun)

			return g.print(cmd, e, e.Rename(naming.Template(template)))
		},
	}

	m.register(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", true, "simulate renames; use --dry-run=false to apply")
	cmd.Flags().StringVar(&template, "template", string(naming.DefaultTemplate), "template for the new file names")
	return cmd
}
