package cli

import (
	"fmt"

	"github.com/existflow/mergeflow/internal/query"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List projects",
	Long: `List projects with optional filters and sorting.

Examples:
  mergeflow list
  mergeflow list --status new,assigned --sort creationDate --desc
  mergeflow list --editor ED-002 --unassigned
  mergeflow list --search wedding
  mergeflow list --window 30d --by completion`,
	RunE: runList,
}

var (
	listStatus     string
	listEditor     string
	listUnassigned bool
	listSearch     string
	listSort       string
	listDesc       bool
	listWindow     string
	listBy         string
)

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Comma separated statuses to include")
	listCmd.Flags().StringVarP(&listEditor, "editor", "e", "", "Only projects assigned to this editor ID")
	listCmd.Flags().BoolVarP(&listUnassigned, "unassigned", "u", false, "Only projects without an editor")
	listCmd.Flags().StringVarP(&listSearch, "search", "q", "", "Case-insensitive match on id, name or editor")
	listCmd.Flags().StringVar(&listSort, "sort", string(query.SortDeadline), "Sort key")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "Sort descending")
	listCmd.Flags().StringVarP(&listWindow, "window", "w", string(query.WindowAll), "Time window: all, 7d, 30d, 365d")
	listCmd.Flags().StringVar(&listBy, "by", "creation", "Date the window applies to: completion, assign, creation, deadline")
}

func runList(cmd *cobra.Command, args []string) error {
	statuses, err := parseStatuses(listStatus)
	if err != nil {
		return err
	}
	key, err := query.ParseSortKey(listSort)
	if err != nil {
		return err
	}
	window, err := query.ParseWindow(listWindow)
	if err != nil {
		return err
	}
	field, err := parseDateField(listBy)
	if err != nil {
		return err
	}

	filter := query.Filter{
		Statuses:   statuses,
		EditorID:   listEditor,
		Unassigned: listUnassigned,
		Text:       listSearch,
	}
	order := query.Sort{Key: key, Direction: query.Ascending}
	if listDesc {
		order.Direction = query.Descending
	}

	return withApp(cmd, func(a *app) error {
		now := a.store.Now()
		roster := a.store.Roster()
		projects := query.InWindow(a.store.Projects(), window, now, field)
		rows := query.Table(projects, filter, order, roster)

		out := cmd.OutOrStdout()
		if len(rows) == 0 {
			fmt.Fprintln(out, "No projects found. Add one with: mergeflow add \"Name\" --deadline +7d --category wedding")
			return nil
		}

		fmt.Fprintf(out, "\n📁 %d projects  ·  %s  ·  sorted by %s %s\n\n", len(rows), window.Label(), order.Key, order.Direction)
		printProjects(out, rows, roster, now)
		fmt.Fprintln(out)
		return nil
	})
}
