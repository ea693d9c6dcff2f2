package cli

import (
	"fmt"

	"github.com/existflow/mergeflow/internal/model"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [project-id]",
	Short: "Mark a project as done",
	Long: `Mark a project as completed. The completion date is set to now.

Examples:
  mergeflow done PROJ-006
  mergeflow done PROJ-006 --undo`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

var doneUndo bool

func init() {
	doneCmd.Flags().BoolVar(&doneUndo, "undo", false, "Move the project back to In Progress")
}

func runDone(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(a *app) error {
		p, err := lookup(a, args[0])
		if err != nil {
			return err
		}
		if cfg.Identity.IsEditor() && !p.AssignedTo(cfg.Identity.EditorID) {
			return fmt.Errorf("%s is not assigned to %s", p.ID, cfg.Identity.EditorID)
		}

		status := model.StatusDone
		if doneUndo {
			status = model.StatusInProgress
		}
		now := a.store.Now()
		p, err = a.store.UpdateProject(cmd.Context(), p.ID, model.StatusPatch(p, status, now))
		if err != nil {
			return saveErr(err)
		}

		out := cmd.OutOrStdout()
		if doneUndo {
			fmt.Fprintf(out, "○ Reopened: \"%s\"\n", p.Name)
			return nil
		}
		late := ""
		if p.IsDelayed(now) {
			late = " (late)"
		}
		fmt.Fprintf(out, "✓ Completed: \"%s\"%s\n", p.Name, late)
		return nil
	})
}
