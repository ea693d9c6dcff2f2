package model

import "time"

// UrgentWindow is how close a deadline must be for active work to count as urgent
const UrgentWindow = 3 * 24 * time.Hour

// DisplayStatus is the status shown to users. It layers Delayed over the
// stored status for overdue active work.
type DisplayStatus string

const (
	DisplayNew        DisplayStatus = DisplayStatus(StatusNew)
	DisplayAssigned   DisplayStatus = DisplayStatus(StatusAssigned)
	DisplayInProgress DisplayStatus = DisplayStatus(StatusInProgress)
	DisplayPending    DisplayStatus = DisplayStatus(StatusPending)
	DisplayDone       DisplayStatus = DisplayStatus(StatusDone)
	DisplayDelayed    DisplayStatus = "Delayed"
)

// DisplayStatuses returns the six logical display states
func DisplayStatuses() []DisplayStatus {
	return []DisplayStatus{
		DisplayNew,
		DisplayAssigned,
		DisplayInProgress,
		DisplayPending,
		DisplayDone,
		DisplayDelayed,
	}
}

// IsDelayed returns true if the project missed its deadline.
// Completed work is judged by its completion date, everything else by now.
// Both comparisons are strict.
func (p *Project) IsDelayed(now time.Time) bool {
	if p.Status == StatusDone {
		return p.CompletionDate != nil && p.CompletionDate.After(p.Deadline)
	}
	return now.After(p.Deadline)
}

// EffectiveStatus returns Delayed for overdue unfinished work and the stored
// status otherwise. Done is never overridden; late completion is only
// visible through IsDelayed.
func (p *Project) EffectiveStatus(now time.Time) DisplayStatus {
	if p.Status != StatusDone && p.IsDelayed(now) {
		return DisplayDelayed
	}
	return DisplayStatus(p.Status)
}

// IsUrgent returns true if unfinished work is due within UrgentWindow
// but not yet past its deadline
func (p *Project) IsUrgent(now time.Time) bool {
	if p.Status == StatusDone || !p.Deadline.After(now) {
		return false
	}
	return p.Deadline.Sub(now) <= UrgentWindow
}

// DaysUntilDeadline returns the number of whole days left, negative once overdue
func (p *Project) DaysUntilDeadline(now time.Time) int {
	return int(p.Deadline.Sub(now).Hours() / 24)
}
