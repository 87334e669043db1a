package cmd

import (
	"github.com/prettymuchbryce/extops/internal/engine"
	"github.com/spf13/cobra"
)

func newRemoveCmd(g *globalOptions) *cobra.Command {
	var (
		m      matchOptions
		dryRun bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:     "remove <extension> [directory]",
		Aliases: []string{"delete", "remove-files"},
		Short:   "Delete files with the given extension, recursively",
		Long: `Delete files with the given extension in a directory and all of its subdirectories.

Asks for confirmation unless --yes is given. If no directory is given, the
default data directory is used.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg(args, 1)
			if err != nil {
				return err
			}

			if !yes && !dryRun {
				if err := confirm(cmd, g, deletePrompt); err != nil {
					return err
				}
			}

			e := g.newEngine(engine.Request{
				Criteria: m.criteria(args[0]),
				Source:   dir,
			}, dryRun)

			return g.print(cmd, e, e.Delete())
		},
	}

	m.register(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report what would be deleted without deleting")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	return cmd
}
