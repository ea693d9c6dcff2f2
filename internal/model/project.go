package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Status is the stored workflow status of a project
type Status string

const (
	StatusNew        Status = "New"
	StatusAssigned   Status = "Assigned"
	StatusInProgress Status = "In Progress"
	StatusPending    Status = "Pending by Customer"
	StatusDone       Status = "Done"
)

// Statuses returns every valid stored status in display order
func Statuses() []Status {
	return []Status{StatusNew, StatusAssigned, StatusInProgress, StatusDone, StatusPending}
}

// IsActive reports whether work on the project is underway
func (s Status) IsActive() bool {
	return s == StatusAssigned || s == StatusInProgress || s == StatusPending
}

// ParseStatus matches s against the closed status set, ignoring case
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid status %q", s)
}

// Category is the kind of shoot a project belongs to
type Category string

const (
	CategoryWedding    Category = "Wedding"
	CategoryCorporate  Category = "Corporate"
	CategoryRealEstate Category = "Real Estate"
	CategoryProduct    Category = "Product"
	CategoryEvent      Category = "Event"
	CategoryPersonal   Category = "Personal"
)

// Categories returns every valid category
func Categories() []Category {
	return []Category{
		CategoryWedding,
		CategoryCorporate,
		CategoryRealEstate,
		CategoryProduct,
		CategoryEvent,
		CategoryPersonal,
	}
}

// ParseCategory matches s against the closed category set, ignoring case
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", s)
}

// IDPrefix is the fixed prefix of every project ID
const IDPrefix = "PROJ-"

// Project represents a unit of photo-editing work
type Project struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Status         Status     `json:"status"`
	EditorID       *string    `json:"editorId"`
	Category       Category   `json:"category"`
	Deadline       time.Time  `json:"deadline"`
	CreationDate   time.Time  `json:"creationDate"`
	AssignDate     *time.Time `json:"assignDate"`
	CompletionDate *time.Time `json:"completionDate"`
	PicturesEdited int        `json:"picturesEdited,omitempty"`
	Notes          string     `json:"notes"`
	CallerName     string     `json:"telecallerName"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	ImageHint      string     `json:"imageHint"`
}

// FormatID renders a sequence number as a project ID (PROJ-007)
func FormatID(seq int) string {
	return fmt.Sprintf("%s%03d", IDPrefix, seq)
}

// ParseID extracts the numeric suffix of a project ID
func ParseID(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, IDPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// AssignedTo reports whether the project belongs to the given editor
func (p *Project) AssignedTo(editorID string) bool {
	return p.EditorID != nil && *p.EditorID == editorID
}

// Clone returns a deep copy so callers can't alias pointer fields
func (p Project) Clone() Project {
	if p.EditorID != nil {
		id := *p.EditorID
		p.EditorID = &id
	}
	if p.AssignDate != nil {
		t := *p.AssignDate
		p.AssignDate = &t
	}
	if p.CompletionDate != nil {
		t := *p.CompletionDate
		p.CompletionDate = &t
	}
	return p
}

// CloneAll deep-copies a slice of projects
func CloneAll(projects []Project) []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.Clone()
	}
	return out
}

// StringPtr is a helper for building optional string fields
func StringPtr(s string) *string {
	return &s
}

// TimePtr is a helper for building optional date fields
func TimePtr(t time.Time) *time.Time {
	return &t
}
