package model

import (
	"fmt"
	"strings"
)

// MinRating and MaxRating bound every editor rating
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// Editor represents a worker who claims and completes projects
type Editor struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// FirstName returns the first word of the editor's name, for compact charts
func (e Editor) FirstName() string {
	if first, _, ok := strings.Cut(e.Name, " "); ok {
		return first
	}
	return e.Name
}

// Role is the caller's role in the team
type Role string

const (
	RoleTeamLeader Role = "Team Leader"
	RoleEditor     Role = "Editor"
)

// ParseRole accepts the role name or the short forms "leader" and "editor"
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "team leader", "leader", "lead":
		return RoleTeamLeader, nil
	case "editor":
		return RoleEditor, nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

// Identity is who is looking at the dashboard. EditorID is only set for editors.
type Identity struct {
	Role     Role   `yaml:"role" json:"role"`
	EditorID string `yaml:"editor_id,omitempty" json:"editor_id,omitempty"`
}

// IsEditor reports whether the identity acts as a specific editor
func (i Identity) IsEditor() bool {
	return i.Role == RoleEditor && i.EditorID != ""
}

// String renders the identity for status lines
func (i Identity) String() string {
	if i.Role == "" {
		return "anonymous"
	}
	if i.Role == RoleEditor {
		return fmt.Sprintf("%s (%s)", i.Role, i.EditorID)
	}
	return string(i.Role)
}
