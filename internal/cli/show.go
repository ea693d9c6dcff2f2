package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/mergeflow/internal/model"
	"github.com/existflow/mergeflow/internal/store"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [project-id]",
	Short: "Show one project",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// lookup returns the project or a not-found error
func lookup(a *app, id string) (model.Project, error) {
	p, ok := a.store.GetProjectByID(strings.ToUpper(id))
	if !ok {
		return model.Project{}, fmt.Errorf("%w: %s", store.ErrProjectNotFound, id)
	}
	return p, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(a *app) error {
		p, err := lookup(a, args[0])
		if err != nil {
			return err
		}
		now := a.store.Now()
		out := cmd.OutOrStdout()

		editor := "Unassigned"
		if name, ok := a.store.Roster().Name(p.EditorID); ok {
			editor = fmt.Sprintf("%s (%s)", name, *p.EditorID)
			if e, ok := a.store.GetEditor(*p.EditorID); ok {
				editor += fmt.Sprintf("  ★ %.1f", e.Rating)
			}
		}

		deadline := p.Deadline.Format("Jan 2, 2006 15:04")
		switch {
		case p.Status == model.StatusDone:
		case p.IsDelayed(now):
			deadline += fmt.Sprintf("  (%d days overdue)", -p.DaysUntilDeadline(now))
		case p.IsUrgent(now):
			deadline += "  (due within 3 days)"
		default:
			deadline += fmt.Sprintf("  (%d days left)", p.DaysUntilDeadline(now))
		}

		fmt.Fprintf(out, "\n%s  %s\n", p.ID, p.Name)
		fmt.Fprintln(out, strings.Repeat("─", 60))
		fmt.Fprintf(out, "  Status      %s\n", statusBadge(&p, now))
		fmt.Fprintf(out, "  Editor      %s\n", editor)
		fmt.Fprintf(out, "  Category    %s\n", p.Category)
		fmt.Fprintf(out, "  Deadline    %s\n", deadline)
		fmt.Fprintf(out, "  Created     %s\n", formatDate(&p.CreationDate))
		fmt.Fprintf(out, "  Assigned    %s\n", formatDate(p.AssignDate))
		fmt.Fprintf(out, "  Completed   %s\n", formatDate(p.CompletionDate))
		fmt.Fprintf(out, "  Pictures    %d\n", p.PicturesEdited)
		if p.CallerName != "" {
			fmt.Fprintf(out, "  Caller      %s\n", p.CallerName)
		}
		if p.Notes != "" {
			fmt.Fprintf(out, "  Notes       %s\n", p.Notes)
		}
		if p.ImageURL != "" {
			fmt.Fprintf(out, "  Image       %s\n", describeImage(p.ImageURL, p.ImageHint))
		}
		fmt.Fprintln(out)
		return nil
	})
}

// describeImage avoids dumping inline image payloads to the terminal
func describeImage(url, hint string) string {
	desc := url
	if strings.HasPrefix(url, "data:") {
		mime, _, _ := strings.Cut(strings.TrimPrefix(url, "data:"), ";")
		desc = fmt.Sprintf("inline %s, %d bytes", mime, len(url))
	}
	if hint != "" {
		desc += "  \"" + hint + "\""
	}
	return desc
}
