package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/mergeflow/internal/query"
	"github.com/existflow/mergeflow/internal/tui"
	"github.com/spf13/cobra"
)

var editorsCmd = &cobra.Command{
	Use:   "editors",
	Short: "List editors with their ratings",
	RunE:  runEditors,
}

func runEditors(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(a *app) error {
		now := a.store.Now()
		projects := a.store.Projects()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "\n  %-8s  %-20s  %-6s  %6s  %9s  %7s  %8s\n", "ID", "NAME", "RATING", "ACTIVE", "COMPLETED", "DELAYED", "PICTURES")
		fmt.Fprintln(out, "  "+strings.Repeat("─", 76))
		for _, e := range a.store.ListEditors() {
			s := query.ComputeEditorStats(projects, e.ID, now)
			marker := "  "
			if cfg.Identity.IsEditor() && cfg.Identity.EditorID == e.ID {
				marker = "❯ "
			}
			rating := tui.RatingStyle(e.Rating).Render(fmt.Sprintf("%-6.1f", e.Rating))
			fmt.Fprintf(out, "%s%-8s  %-20s  %s  %6d  %9d  %7d  %8d\n",
				marker, e.ID, truncate(e.Name, 20), rating, s.Active, s.Completed, s.Delayed, s.PicturesEdited)
		}
		fmt.Fprintln(out)
		return nil
	})
}
