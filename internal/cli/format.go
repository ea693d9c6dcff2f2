package cli

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/existflow/mergeflow/internal/model"
	"github.com/existflow/mergeflow/internal/query"
	"github.com/existflow/mergeflow/internal/tui"
	"golang.org/x/term"
)

const dateLayout = "2006-01-02"

// terminalWidth returns the stdout width, or 100 when not a terminal
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 100
	}
	return w
}

// truncate shortens a string to max runes with ellipsis
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// formatDate renders an optional date, a dash when unset
func formatDate(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("Jan 2, 2006")
}

var relativeDays = regexp.MustCompile(`^\+(\d+)d$`)

// parseDeadline accepts today, tomorrow, +Nd, 2006-01-02 or RFC3339.
// Day-only forms resolve to the last second of that day.
func parseDeadline(s string, now time.Time) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	endOfDay := func(t time.Time) time.Time {
		y, m, d := t.Date()
		return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
	}

	switch s {
	case "":
		return time.Time{}, fmt.Errorf("empty date")
	case "today":
		return endOfDay(now), nil
	case "tomorrow":
		return endOfDay(now.AddDate(0, 0, 1)), nil
	}
	if m := relativeDays.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q", s)
		}
		return endOfDay(now.AddDate(0, 0, n)), nil
	}
	if t, err := time.ParseInLocation(dateLayout, s, now.Location()); err == nil {
		return endOfDay(t), nil
	}
	if t, err := time.Parse(time.RFC3339, strings.ToUpper(s)); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use today, tomorrow, +3d, 2006-01-02 or RFC3339)", s)
}

// splitList splits a comma separated flag value
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseStatuses parses a comma separated status list
func parseStatuses(s string) ([]model.Status, error) {
	var out []model.Status
	for _, part := range splitList(s) {
		st, err := model.ParseStatus(part)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// parseDateField maps a --by flag onto the project date a window applies to
func parseDateField(s string) (query.DateField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "completion", "completed":
		return query.ByCompletion, nil
	case "assign", "assigned":
		return query.ByAssign, nil
	case "", "creation", "created":
		return query.ByCreation, nil
	case "deadline":
		return query.ByDeadline, nil
	}
	return 0, fmt.Errorf("invalid date field %q (want completion, assign, creation or deadline)", s)
}

// loadImage turns --image into an ImageURL. URLs pass through; local
// files are inlined as a data URL.
func loadImage(ref string, maxBytes int) (string, error) {
	if ref == "" || strings.HasPrefix(ref, "data:") ||
		strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return "", fmt.Errorf("image %s is %d bytes, limit is %d", ref, len(data), maxBytes)
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%s is not an image (%s)", ref, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// statusBadge renders the colour-coded display status
func statusBadge(p *model.Project, now time.Time) string {
	return tui.FormatStatus(p.EffectiveStatus(now))
}

// printProjects writes the project table
func printProjects(out io.Writer, projects []model.Project, roster query.Roster, now time.Time) {
	nameWidth := terminalWidth() - 9 - 16 - 12 - 12 - 24
	if nameWidth < 16 {
		nameWidth = 16
	}

	fmt.Fprintf(out, "  %-8s  %-*s  %-14s  %-10s  %-10s  %s\n", "ID", nameWidth, "NAME", "EDITOR", "CATEGORY", "DEADLINE", "STATUS")
	fmt.Fprintln(out, "  "+strings.Repeat("─", nameWidth+70))
	for i := range projects {
		p := &projects[i]
		editor, ok := roster.Name(p.EditorID)
		if !ok {
			editor = "—"
		}
		marker := " "
		if p.IsUrgent(now) {
			marker = "!"
		}
		fmt.Fprintf(out, "%s %-8s  %-*s  %-14s  %-10s  %-10s  %s\n",
			marker, p.ID, nameWidth, truncate(p.Name, nameWidth), truncate(editor, 14),
			truncate(string(p.Category), 10), p.Deadline.Format(dateLayout), statusBadge(p, now))
	}
}
