package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard saved data and restore the sample projects",
	Long: `Remove the saved snapshot and images, then restore the built-in
sample projects. The sample data itself is not saved until the next change.`,
	RunE: runReset,
}

var resetForce bool

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Do not ask for confirmation")
}

func runReset(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if cfg.ConfirmDelete && !resetForce {
		if !confirm(cmd, "Discard all saved projects?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	return withApp(cmd, func(a *app) error {
		fmt.Fprintln(out, "🧹 Clearing saved data...")
		if err := a.store.ResetData(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear saved data: %w", err)
		}
		fmt.Fprintf(out, "Restored %d sample projects.\n", len(a.store.Projects()))
		return nil
	})
}
