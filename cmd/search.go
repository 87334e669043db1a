package cmd

import (
	"github.com/prettymuchbryce/extops/internal/engine"
	"github.com/spf13/cobra"
)

func newSearchCmd(g *globalOptions) *cobra.Command {
	var (
		m    matchOptions
		tree bool
		long bool
	)

	cmd := &cobra.Command{
		Use:     "search <extension> [directory]",
		Aliases: []string{"list", "list-files"},
		Short:   "List files with the given extension, recursively",
		Long: `List files with the given extension in a directory and all of its subdirectories.

If no directory is given, the default data directory is used.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg(args, 1)
			if err != nil {
				return err
			}

			e := g.newEngine(engine.Request{
				Criteria: m.criteria(args[0]),
				Source:   dir,
			}, false, engine.WithTree(tree), engine.WithDetails(long))

			return g.print(cmd, e, e.Find())
		},
	}

	m.register(cmd)
	cmd.Flags().BoolVarP(&tree, "tree", "t", false, "also show matches as a tree grouped by directory")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show modification and creation times")
	return cmd
}
