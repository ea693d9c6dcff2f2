package model

import "time"

// Patch is a partial project update. Nil fields are left untouched; the
// Clear flags null out optional fields. ID and CreationDate are immutable.
type Patch struct {
	Name           *string
	Status         *Status
	Category       *Category
	Deadline       *time.Time
	EditorID       *string
	ClearEditor    bool
	AssignDate     *time.Time
	ClearAssign    bool
	CompletionDate *time.Time
	ClearComplete  bool
	PicturesEdited *int
	Notes          *string
	CallerName     *string
	ImageURL       *string
	ImageHint      *string
}

// IsEmpty reports whether the patch changes nothing
func (pt Patch) IsEmpty() bool {
	return pt.Name == nil && pt.Status == nil && pt.Category == nil &&
		pt.Deadline == nil && pt.EditorID == nil && !pt.ClearEditor &&
		pt.AssignDate == nil && !pt.ClearAssign &&
		pt.CompletionDate == nil && !pt.ClearComplete &&
		pt.PicturesEdited == nil && pt.Notes == nil && pt.CallerName == nil &&
		pt.ImageURL == nil && pt.ImageHint == nil
}

// Apply merges the patch into a copy of p and returns it
func (pt Patch) Apply(p Project) Project {
	out := p.Clone()
	if pt.Name != nil {
		out.Name = *pt.Name
	}
	if pt.Status != nil {
		out.Status = *pt.Status
	}
	if pt.Category != nil {
		out.Category = *pt.Category
	}
	if pt.Deadline != nil {
		out.Deadline = *pt.Deadline
	}
	if pt.ClearEditor {
		out.EditorID = nil
	} else if pt.EditorID != nil {
		out.EditorID = StringPtr(*pt.EditorID)
	}
	if pt.ClearAssign {
		out.AssignDate = nil
	} else if pt.AssignDate != nil {
		out.AssignDate = TimePtr(*pt.AssignDate)
	}
	if pt.ClearComplete {
		out.CompletionDate = nil
	} else if pt.CompletionDate != nil {
		out.CompletionDate = TimePtr(*pt.CompletionDate)
	}
	if pt.PicturesEdited != nil {
		out.PicturesEdited = *pt.PicturesEdited
	}
	if pt.Notes != nil {
		out.Notes = *pt.Notes
	}
	if pt.CallerName != nil {
		out.CallerName = *pt.CallerName
	}
	if pt.ImageURL != nil {
		out.ImageURL = *pt.ImageURL
	}
	if pt.ImageHint != nil {
		out.ImageHint = *pt.ImageHint
	}
	return out
}

// WithDerivedDates fills the timestamp side effects the project form applies
// on save, using the state p would have after the patch:
//   - an assigned editor keeps its assign date, or gets now
//   - no editor clears the assign date
//   - Done keeps its completion date, or gets now
//   - any other status clears the completion date
//
// Explicit dates already in the patch win.
func (pt Patch) WithDerivedDates(p Project, now time.Time) Patch {
	next := pt.Apply(p)

	if next.EditorID != nil {
		if pt.AssignDate == nil && next.AssignDate == nil {
			pt.AssignDate = TimePtr(now)
			pt.ClearAssign = false
		}
	} else if next.AssignDate != nil {
		pt.AssignDate = nil
		pt.ClearAssign = true
	}

	if next.Status == StatusDone {
		if pt.CompletionDate == nil && next.CompletionDate == nil {
			pt.CompletionDate = TimePtr(now)
			pt.ClearComplete = false
		}
	} else if next.CompletionDate != nil {
		pt.CompletionDate = nil
		pt.ClearComplete = true
	}
	return pt
}

// StatusPatch moves a project to status with the derived dates set
func StatusPatch(p Project, status Status, now time.Time) Patch {
	return Patch{Status: &status}.WithDerivedDates(p, now)
}

// ClaimPatch assigns a New project to an editor
func ClaimPatch(p Project, editorID string, now time.Time) Patch {
	status := StatusAssigned
	return Patch{
		Status:     &status,
		EditorID:   StringPtr(editorID),
		AssignDate: TimePtr(now),
	}.WithDerivedDates(p, now)
}

// NewProject is the input for creating a project. The store issues the ID.
type NewProject struct {
	Name           string
	Status         Status
	EditorID       *string
	Category       Category
	Deadline       time.Time
	CreationDate   time.Time
	AssignDate     *time.Time
	CompletionDate *time.Time
	PicturesEdited int
	Notes          string
	CallerName     string
	ImageURL       string
	ImageHint      string
}

// WithDerivedDates applies the form's timestamp rules to a new project
func (np NewProject) WithDerivedDates(now time.Time) NewProject {
	if np.EditorID != nil && np.AssignDate == nil {
		np.AssignDate = TimePtr(now)
	}
	if np.EditorID == nil {
		np.AssignDate = nil
	}
	if np.Status == StatusDone && np.CompletionDate == nil {
		np.CompletionDate = TimePtr(now)
	}
	if np.Status != StatusDone {
		np.CompletionDate = nil
	}
	return np
}

// Project builds the record under the given id. A zero creation date
// becomes now.
func (np NewProject) Project(id string, now time.Time) Project {
	created := np.CreationDate
	if created.IsZero() {
		created = now
	}
	if np.Status == "" {
		np.Status = StatusNew
	}
	return Project{
		ID:             id,
		Name:           np.Name,
		Status:         np.Status,
		EditorID:       np.EditorID,
		Category:       np.Category,
		Deadline:       np.Deadline,
		CreationDate:   created,
		AssignDate:     np.AssignDate,
		CompletionDate: np.CompletionDate,
		PicturesEdited: np.PicturesEdited,
		Notes:          np.Notes,
		CallerName:     np.CallerName,
		ImageURL:       np.ImageURL,
		ImageHint:      np.ImageHint,
	}.Clone()
}
