package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [project-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a project",
	Long: `Delete a project by its ID.

Examples:
  mergeflow delete PROJ-012
  mergeflow rm PROJ-012 --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var deleteForce bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Do not ask for confirmation")
}

// confirm asks a y/N question on the command's input
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	var answer string
	_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
	return answer == "y" || answer == "Y"
}

func runDelete(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(a *app) error {
		p, err := lookup(a, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if cfg.ConfirmDelete && !deleteForce {
			fmt.Fprintf(out, "About to delete: \"%s\" (ID: %s)\n", p.Name, p.ID)
			if !confirm(cmd, "Are you sure?") {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
		}

		if err := a.store.DeleteProject(cmd.Context(), p.ID); err != nil {
			return saveErr(err)
		}

		fmt.Fprintf(out, "🗑️  Deleted: \"%s\"\n", p.Name)
		return nil
	})
}
