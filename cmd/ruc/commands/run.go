package commands

import (
	"github.com/spf13/cobra"

	"github.com/ktmlm/RUC/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [target]",
		Short: "Run a build target and its prerequisites",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Run(cmd.Context(), target, app.RunOptions{
				DryRun: dryRun,
				Watch:  watch,
			})
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Print the commands that would run without executing them")
	cmd.Flags().BoolP("watch", "w", false, "Rerun the target whenever files change")
	return cmd
}
