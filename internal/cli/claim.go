package cli

import (
	"errors"
	"fmt"

	"github.com/existflow/mergeflow/internal/model"
	"github.com/spf13/cobra"
)

var claimCmd = &cobra.Command{
	Use:   "claim [project-id]",
	Short: "Claim a new project as the current editor",
	Long: `Assign a New project to yourself. Requires an editor context:

  mergeflow context set editor ED-002
  mergeflow claim PROJ-009`,
	Args: cobra.ExactArgs(1),
	RunE: runClaim,
}

func runClaim(cmd *cobra.Command, args []string) error {
	if !cfg.Identity.IsEditor() {
		return errors.New("claiming needs an editor context, run: mergeflow context set editor <editor-id>")
	}

	return withApp(cmd, func(a *app) error {
		editor, ok := a.store.GetEditor(cfg.Identity.EditorID)
		if !ok {
			return fmt.Errorf("unknown editor in context: %s", cfg.Identity.EditorID)
		}
		p, err := lookup(a, args[0])
		if err != nil {
			return err
		}
		if p.Status != model.StatusNew {
			return fmt.Errorf("%s is %s, only New projects can be claimed", p.ID, p.Status)
		}

		p, err = a.store.UpdateProject(cmd.Context(), p.ID, model.ClaimPatch(p, editor.ID, a.store.Now()))
		if err != nil {
			return saveErr(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s claimed \"%s\" (due %s)\n", editor.FirstName(), p.Name, p.Deadline.Format(dateLayout))
		return nil
	})
}
