package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ktmlm/RUC/internal/ui/output"
	"github.com/ktmlm/RUC/internal/ui/style"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered targets in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := c.app.Targets(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			styled := output.IsTerminal(out)

			for _, target := range targets {
				name := target.Name.String()
				if styled {
					name = style.TargetName.Render(name)
				}

				line := name
				if len(target.Prerequisites) > 0 {
					prereqs := make([]string, len(target.Prerequisites))
					for i, pre := range target.Prerequisites {
						prereqs[i] = pre.String()
					}
					line += fmt.Sprintf(" (after %s)", strings.Join(prereqs, ", "))
				}
				_, _ = fmt.Fprintln(out, line)

				for _, command := range target.Commands {
					_, _ = fmt.Fprintf(out, "    %s\n", command.String())
				}
			}
			return nil
		},
	}
}
