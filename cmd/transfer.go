package cmd

import (
	"fmt"
	"strings"

	"github.com/prettymuchbryce/extops/internal/engine"
	"github.com/prettymuchbryce/extops/internal/pathutil"
	"github.com/spf13/cobra"
)

// newTransferCmd builds the copy and move commands, which only differ in action.
func newTransferCmd(g *globalOptions, action engine.Action) *cobra.Command {
	var (
		m      matchOptions
		dryRun bool
	)

	name := string(action)
	title := strings.ToUpper(name[:1]) + name[1:]
	cmd := &cobra.Command{
		Use:     name + " <extension> <source> [destination]",
		Aliases: []string{name + "-files"},
		Short:   fmt.Sprintf("%s files with the given extension into a directory", title),
		Long: fmt.Sprintf(`%s files with the given extension from source (recursively) into destination.

Files whose name already exists in destination are skipped, never overwritten.
If no destination is given, the default data directory is used.`, title),
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst, err := dirArg(args, 2)
			if err != nil {
				return err
			}

			e := g.newEngine(engine.Request{
				Criteria:    m.criteria(args[0]),
				Source:      pathutil.Clean(args[1]),
				Destination: dst,
			}, dryRun)

			var runErr error
			if action == engine.ActionMove {
				runErr = e.Move()
			} else {
				runErr = e.Copy()
			}
			return g.print(cmd, e, runErr)
		},
	}

	m.register(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report what would happen without changing anything")
	return cmd
}
