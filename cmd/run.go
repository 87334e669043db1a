package cmd

import (
	"github.com/prettymuchbryce/extops/internal/engine"
	"github.com/prettymuchbryce/extops/internal/pathutil"
	"github.com/spf13/cobra"
)

// newRunCmd dispatches an operation named at runtime, for scripts that build
// the operation name themselves.
func newRunCmd(g *globalOptions) *cobra.Command {
	var (
		m      matchOptions
		dryRun bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "run <operation> <extension> <source> [destination]",
		Short: "Run an operation given by name",
		Long: `Run search (or list), copy, move or remove by name.

An unknown operation is reported as "Invalid operation!" without touching any files.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			operation := args[0]
			req := engine.Request{
				Criteria: m.criteria(args[1]),
				Source:   pathutil.Clean(args[2]),
			}

			switch operation {
			case "copy", "move":
				dst, err := dirArg(args, 3)
				if err != nil {
					return err
				}
				req.Destination = dst
			case "remove", "delete":
				if !yes && !dryRun {
					if err := confirm(cmd, g, deletePrompt); err != nil {
						return err
					}
				}
			}

			e := g.newEngine(req, dryRun)

			var runErr error
			switch operation {
			case "search", "list":
				runErr = e.Find()
			case "copy":
				runErr = e.Copy()
			case "move":
				runErr = e.Move()
			case "remove", "delete":
				runErr = e.Delete()
			default:
				e.Error("Invalid operation!")
			}
			return g.print(cmd, e, runErr)
		},
	}

	m.register(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report what would happen without changing anything")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	return cmd
}
