package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/existflow/mergeflow/internal/query"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Monthly report for one editor",
	Long: `Summarise an editor's month: projects touched, completions, on-time
and late deliveries, pictures edited. Defaults to the editor in context and
the current month.

Examples:
  mergeflow report --editor ED-001
  mergeflow report --editor ED-003 --month 1 --year 2025`,
	RunE: runReport,
}

var (
	reportEditor string
	reportMonth  int
	reportYear   int
)

func init() {
	reportCmd.Flags().StringVarP(&reportEditor, "editor", "e", "", "Editor ID (default: current context)")
	reportCmd.Flags().IntVarP(&reportMonth, "month", "m", 0, "Month 1-12 (default: current)")
	reportCmd.Flags().IntVarP(&reportYear, "year", "y", 0, "Year (default: current)")
}

func runReport(cmd *cobra.Command, args []string) error {
	editorID := reportEditor
	if editorID == "" {
		editorID = cfg.Identity.EditorID
	}
	if editorID == "" {
		return errors.New("--editor is required outside an editor context")
	}
	if reportMonth < 0 || reportMonth > 12 {
		return fmt.Errorf("invalid month %d", reportMonth)
	}

	return withApp(cmd, func(a *app) error {
		editor, ok := a.store.GetEditor(editorID)
		if !ok {
			return fmt.Errorf("unknown editor: %s", editorID)
		}

		now := a.store.Now()
		year, month := reportYear, time.Month(reportMonth)
		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = now.Month()
		}

		r := query.BuildMonthlyReport(a.store.Projects(), editor.ID, year, month)
		out := cmd.OutOrStdout()
		heading(out, fmt.Sprintf("📅 %s · %s %d", editor.Name, r.Month, r.Year))
		fmt.Fprintf(out, "  Projects %d   Completed %d   On time %d   Late %d   Pictures %d\n",
			len(r.Projects), r.Completed, r.OnTime, r.Delayed, r.PicturesEdited)
		if len(r.Projects) > 0 {
			fmt.Fprintln(out)
			printShortList(out, r.Projects, a.store.Roster(), now)
		}
		fmt.Fprintln(out)
		return nil
	})
}
