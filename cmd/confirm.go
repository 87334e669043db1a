package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const deletePrompt = "Do you really want to delete?"

var errAborted = errors.New("aborted")

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Italic(true)

// confirm asks a yes/no question on the command's input. Anything but y or
// yes returns errAborted.
func confirm(cmd *cobra.Command, g *globalOptions, question string) error {
	if g.colored() {
		question = promptStyle.Render(question)
	}
	fmt.Fprint(cmd.ErrOrStderr(), question+" [y/N] ")

	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(cmd.ErrOrStderr())
		return errAborted
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	default:
		return errAborted
	}
}
