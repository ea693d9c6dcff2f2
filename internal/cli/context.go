package cli

import (
	"fmt"

	"github.com/existflow/mergeflow/internal/config"
	"github.com/existflow/mergeflow/internal/model"
	"github.com/spf13/cobra"
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Manage who is using the dashboard",
	Long: `Set or view the current identity. There is no login; the identity
only decides which dashboard you see and which actions apply.

Examples:
  mergeflow context                    # Show current identity
  mergeflow context set leader         # Act as the team leader
  mergeflow context set editor ED-002  # Act as an editor
  mergeflow context clear              # Back to team leader`,
	RunE: runContextShow,
}

var contextSetCmd = &cobra.Command{
	Use:       "set [leader|editor] [editor-id]",
	Short:     "Set the current identity",
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"leader", "editor"},
	RunE:      runContextSet,
}

var contextClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the identity (team leader)",
	RunE:  runContextClear,
}

func init() {
	contextCmd.AddCommand(contextSetCmd)
	contextCmd.AddCommand(contextClearCmd)
}

// saveIdentity stores the identity in the config file. The file is
// reloaded so per-run overrides like --db are not written back.
func saveIdentity(id model.Identity) error {
	fresh, err := config.Load()
	if err != nil {
		fresh = config.DefaultConfig()
	}
	fresh.Identity = id
	if err := fresh.Save(); err != nil {
		return fmt.Errorf("failed to save context: %w", err)
	}
	cfg.Identity = id
	return nil
}

func runContextShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !cfg.Identity.IsEditor() {
		fmt.Fprintln(out, "👑 Current context: Team Leader")
		return nil
	}

	return withApp(cmd, func(a *app) error {
		e, ok := a.store.GetEditor(cfg.Identity.EditorID)
		if !ok {
			fmt.Fprintf(out, "⚠️  Context set to editor '%s' but no such editor\n", cfg.Identity.EditorID)
			return nil
		}
		fmt.Fprintf(out, "🎨 Current context: %s (%s) ★ %.1f\n", e.Name, e.ID, e.Rating)
		return nil
	})
}

func runContextSet(cmd *cobra.Command, args []string) error {
	role, err := model.ParseRole(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if role == model.RoleTeamLeader {
		if len(args) > 1 {
			return fmt.Errorf("team leader takes no editor id")
		}
		if err := saveIdentity(model.Identity{Role: model.RoleTeamLeader}); err != nil {
			return err
		}
		fmt.Fprintln(out, "👑 Switched to: Team Leader")
		return nil
	}

	if len(args) < 2 {
		return fmt.Errorf("editor id required: mergeflow context set editor <editor-id>")
	}
	return withApp(cmd, func(a *app) error {
		e, ok := a.store.GetEditor(args[1])
		if !ok {
			return fmt.Errorf("editor not found: %s", args[1])
		}
		if err := saveIdentity(model.Identity{Role: model.RoleEditor, EditorID: e.ID}); err != nil {
			return err
		}
		fmt.Fprintf(out, "🎨 Switched to: %s (%s)\n", e.Name, e.ID)
		return nil
	})
}

func runContextClear(cmd *cobra.Command, args []string) error {
	if err := saveIdentity(model.Identity{Role: model.RoleTeamLeader}); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "👑 Context cleared, using Team Leader")
	return nil
}
