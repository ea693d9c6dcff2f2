package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/existflow/mergeflow/internal/model"
	"github.com/existflow/mergeflow/internal/query"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"dashboard"},
	Short:   "Show the dashboard for the current context",
	Long: `Print the dashboard for the current identity. Team leaders see team
totals, urgent work, editor workload and throughput. Editors see their own
cards, active and delayed work, and recent completions.

Examples:
  mergeflow stats
  mergeflow stats --window 7d`,
	RunE: runStats,
}

var statsWindow string

func init() {
	statsCmd.Flags().StringVarP(&statsWindow, "window", "w", string(query.Window30Days), "Throughput window: all, 7d, 30d, 365d")
}

func runStats(cmd *cobra.Command, args []string) error {
	window, err := query.ParseWindow(statsWindow)
	if err != nil {
		return err
	}

	return withApp(cmd, func(a *app) error {
		if cfg.Identity.IsEditor() {
			if _, ok := a.store.GetEditor(cfg.Identity.EditorID); !ok {
				return fmt.Errorf("unknown editor in context: %s", cfg.Identity.EditorID)
			}
			printEditorDashboard(cmd.OutOrStdout(), a, cfg.Identity.EditorID, window)
			return nil
		}
		printLeaderDashboard(cmd.OutOrStdout(), a, window)
		return nil
	})
}

func heading(out io.Writer, title string) {
	fmt.Fprintf(out, "\n%s\n%s\n", title, strings.Repeat("─", 60))
}

func printLeaderDashboard(out io.Writer, a *app, window query.Window) {
	now := a.store.Now()
	projects := a.store.Projects()
	roster := a.store.Roster()
	editors := a.store.ListEditors()

	team := query.ComputeTeamStats(projects, now)
	heading(out, "📊 Team")
	fmt.Fprintf(out, "  Total %d   In progress %d   Completed %d   Delayed %d\n",
		team.Total, team.InProgress, team.Completed, team.Delayed)

	urgent := query.Urgent(projects, now, query.UrgentLimit)
	heading(out, fmt.Sprintf("⏰ Due within 3 days (%d)", urgent.Total()))
	if urgent.Total() == 0 {
		fmt.Fprintln(out, "  Nothing urgent.")
	}
	printShortList(out, urgent.Top, roster, now)
	if urgent.Overflow > 0 {
		fmt.Fprintf(out, "  …and %d more\n", urgent.Overflow)
	}

	heading(out, "👥 Workload")
	ratings := make(map[string]float64, len(editors))
	for _, e := range editors {
		ratings[e.ID] = e.Rating
	}
	for _, row := range query.Performance(editors, projects, now) {
		fmt.Fprintf(out, "  %-10s ★ %.1f   done %-3d in progress %-3d delayed %d\n",
			row.Name, ratings[row.EditorID], row.Done, row.InProgress, row.Delayed)
	}

	heading(out, "✅ Throughput · "+window.Label())
	for _, row := range query.Throughput(editors, projects, window, now) {
		fmt.Fprintf(out, "  %-20s completed %-3d late %-3d pictures %d\n",
			truncate(row.Name, 20), row.Completed, row.Late, row.PicturesEdited)
	}

	available := query.Available(projects)
	recent := query.RecentlyAssigned(projects)
	heading(out, fmt.Sprintf("📥 Unclaimed %d  ·  Recently assigned", len(available)))
	printShortList(out, recent[:min(len(recent), query.UrgentLimit)], roster, now)
	fmt.Fprintln(out)
}

func printEditorDashboard(out io.Writer, a *app, editorID string, window query.Window) {
	now := a.store.Now()
	projects := a.store.Projects()
	roster := a.store.Roster()
	editor, _ := a.store.GetEditor(editorID)

	s := query.ComputeEditorStats(projects, editorID, now)
	heading(out, fmt.Sprintf("📊 %s  ★ %.1f", editor.Name, editor.Rating))
	fmt.Fprintf(out, "  Active %d   Completed %d   Delayed %d   Pictures %d\n",
		s.Active, s.Completed, s.Delayed, s.PicturesEdited)
	fmt.Fprintf(out, "  On track %d of %d assigned\n",
		len(query.MyOnTrack(projects, editorID, now)), len(query.Mine(projects, editorID)))

	heading(out, "🛠  My work")
	active := query.MyActiveWork(projects, editorID)
	if len(active) == 0 {
		fmt.Fprintln(out, "  Nothing in progress. Claim one with: mergeflow claim <project-id>")
	}
	printShortList(out, active, roster, now)

	if delayed := query.MyDelayed(projects, editorID, now); len(delayed) > 0 {
		heading(out, fmt.Sprintf("⚠️  Delayed (%d)", len(delayed)))
		printShortList(out, delayed, roster, now)
	}

	heading(out, "✅ Completed · "+window.Label())
	completed := query.InWindow(query.MyCompleted(projects, editorID), window, now, query.ByCompletion)
	if len(completed) == 0 {
		fmt.Fprintln(out, "  None yet.")
	}
	printShortList(out, completed, roster, now)

	heading(out, fmt.Sprintf("📥 Available to claim (%d)", len(query.Available(projects))))
	others := query.OtherProjects(projects)
	printShortList(out, others[:min(len(others), query.UrgentLimit)], roster, now)
	fmt.Fprintln(out)
}

// printShortList writes one compact line per project
func printShortList(out io.Writer, projects []model.Project, roster query.Roster, now time.Time) {
	for i := range projects {
		p := &projects[i]
		editor, ok := roster.Name(p.EditorID)
		if !ok {
			editor = "unassigned"
		}
		fmt.Fprintf(out, "  %-8s  %-32s  %-16s  %s  %s\n",
			p.ID, truncate(p.Name, 32), truncate(editor, 16), p.Deadline.Format(dateLayout), statusBadge(p, now))
	}
}
