package cmd

import (
	"fmt"
	"os"

	"github.com/prettymuchbryce/extops/internal/engine"
	"github.com/prettymuchbryce/extops/internal/fs"
	"github.com/prettymuchbryce/extops/internal/match"
	"github.com/prettymuchbryce/extops/internal/pathutil"
	"github.com/prettymuchbryce/extops/internal/report"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// matchOptions holds the flags that narrow which files are selected.
type matchOptions struct {
	prefix string
	mime   string
}

func (m *matchOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&m.prefix, "prefix", "p", "", "only files whose name contains this text")
	cmd.Flags().StringVar(&m.mime, "mime", "", "only files of this detected MIME type, e.g. text/plain or image/*")
}

func (m *matchOptions) criteria(extension string) match.Criteria {
	return match.Criteria{
		Extension: extension,
		Prefix:    m.prefix,
		MimeType:  m.mime,
	}
}

// colored reports whether output may be styled.
func (g *globalOptions) colored() bool {
	return !g.noColor && g.format != formatYAML && os.Getenv("NO_COLOR") == ""
}

// renderer picks lipgloss styling unless color is disabled or output is YAML.
func (g *globalOptions) renderer() report.Renderer {
	if !g.colored() {
		return report.PlainRenderer{}
	}
	return report.NewLipglossRenderer()
}

// newEngine builds an engine on the real or dry-run filesystem.
func (g *globalOptions) newEngine(req engine.Request, dryRun bool, opts ...engine.Option) *engine.Engine {
	var filesystem fs.FileSystem
	if dryRun {
		filesystem = fs.NewDryRun()
	} else {
		filesystem = fs.NewReal()
	}

	opts = append([]engine.Option{engine.WithRenderer(g.renderer()), engine.WithDryRun(dryRun)}, opts...)
	return engine.New(req, filesystem, opts...)
}

// print writes the report, or the YAML summary, to the command's output.
// A hard engine error is returned after whatever was reported so far.
func (g *globalOptions) print(cmd *cobra.Command, e *engine.Engine, runErr error) error {
	out := cmd.OutOrStdout()

	switch g.format {
	case formatYAML:
		summary := e.Summary()
		data, err := summary.YAML()
		if err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		fmt.Fprint(out, string(data))
	default:
		if e.Log().Len() > 0 {
			fmt.Fprintln(out, e.Report())
		}
	}

	return runErr
}

// dirArg returns the cleaned positional argument at i, or the default data
// directory (created on first use) when it was omitted.
func dirArg(args []string, i int) (string, error) {
	if i < len(args) && args[i] != "" {
		return pathutil.Clean(args[i]), nil
	}
	return pathutil.DataDir(afero.NewOsFs())
}
