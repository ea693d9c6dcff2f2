package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/existflow/mergeflow/internal/model"
)

// SortKey names a sortable project column
type SortKey string

const (
	SortID             SortKey = "id"
	SortName           SortKey = "name"
	SortStatus         SortKey = "status"
	SortCategory       SortKey = "category"
	SortEditorName     SortKey = "editorName"
	SortDeadline       SortKey = "deadline"
	SortCreationDate   SortKey = "creationDate"
	SortAssignDate     SortKey = "assignDate"
	SortCompletionDate SortKey = "completionDate"
	SortPictures       SortKey = "picturesEdited"
)

// SortKeys lists every sortable key in column order
func SortKeys() []SortKey {
	return []SortKey{
		SortID,
		SortName,
		SortEditorName,
		SortDeadline,
		SortStatus,
		SortCategory,
		SortCreationDate,
		SortAssignDate,
		SortCompletionDate,
		SortPictures,
	}
}

// ParseSortKey matches s against the sortable keys, ignoring case
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys() {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", s)
}

// Direction is the sort order
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns the arrow shown in table headers
func (d Direction) String() string {
	if d == Descending {
		return "▼"
	}
	return "▲"
}

// Sort is the single active sort of a table
type Sort struct {
	Key       SortKey
	Direction Direction
}

// DefaultSort orders by nearest deadline first
func DefaultSort() Sort {
	return Sort{Key: SortDeadline, Direction: Ascending}
}

// Toggle returns the sort after clicking the key's header: the active
// ascending key flips to descending, anything else starts ascending
func (s Sort) Toggle(key SortKey) Sort {
	if s.Key == key && s.Direction == Ascending {
		return Sort{Key: key, Direction: Descending}
	}
	return Sort{Key: key, Direction: Ascending}
}

// Apply returns a sorted copy. Missing values sort last in both
// directions and ties keep their input order.
func (s Sort) Apply(projects []model.Project, roster Roster) []model.Project {
	out := slices.Clone(projects)
	if s.Key == "" {
		return out
	}
	slices.SortStableFunc(out, func(a, b model.Project) int {
		va, vb := s.value(&a, roster), s.value(&b, roster)
		switch {
		case !va.ok && !vb.ok:
			return 0
		case !va.ok:
			return 1
		case !vb.ok:
			return -1
		}
		c := va.compare(vb)
		if s.Direction == Descending {
			c = -c
		}
		return c
	})
	return out
}

type sortValue struct {
	ok  bool
	str string
	t   time.Time
	n   int
}

func (v sortValue) compare(o sortValue) int {
	if c := v.t.Compare(o.t); c != 0 {
		return c
	}
	if c := cmp.Compare(v.n, o.n); c != 0 {
		return c
	}
	return cmp.Compare(v.str, o.str)
}

func (s Sort) value(p *model.Project, roster Roster) sortValue {
	switch s.Key {
	case SortID:
		return sortValue{ok: true, str: p.ID}
	case SortName:
		return sortValue{ok: true, str: p.Name}
	case SortStatus:
		return sortValue{ok: true, str: string(p.Status)}
	case SortCategory:
		return sortValue{ok: true, str: string(p.Category)}
	case SortEditorName:
		name, ok := roster.Name(p.EditorID)
		return sortValue{ok: ok, str: name}
	case SortDeadline:
		return sortValue{ok: true, t: p.Deadline}
	case SortCreationDate:
		return sortValue{ok: !p.CreationDate.IsZero(), t: p.CreationDate}
	case SortAssignDate:
		return optionalTime(p.AssignDate)
	case SortCompletionDate:
		return optionalTime(p.CompletionDate)
	case SortPictures:
		return sortValue{ok: true, n: p.PicturesEdited}
	}
	return sortValue{}
}

func optionalTime(t *time.Time) sortValue {
	if t == nil {
		return sortValue{}
	}
	return sortValue{ok: true, t: *t}
}
