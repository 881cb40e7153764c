package domain

import (
	"strings"
	"time"

	docdomain "switchsprint/internal/modules/document/domain"
)

// State is the lifecycle position of one calendar day.
type State string

const (
	StateNonExistent State = "none"
	StatePending     State = "pending"
	StateActive      State = "active"
	StateEnded       State = "ended"
)

// StateOf classifies the row for date.
func StateOf(sessions docdomain.Sessions, date string) State {
	session, ok := sessions[date]
	switch {
	case !ok:
		return StateNonExistent
	case session.SessionEnd != nil:
		return StateEnded
	case session.SessionStart == nil:
		return StatePending
	default:
		return StateActive
	}
}

// NewDay builds an empty row for date with a fresh checklist.
func NewDay(date string) docdomain.DailySession {
	return docdomain.DailySession{
		Date:      date,
		Checklist: docdomain.DefaultChecklist(),
	}
}

// ChecklistPatch carries the fields to change on one item; nil fields are kept.
type ChecklistPatch struct {
	Label              *string
	DefaultTimeMinutes *int
	TimeSpentSeconds   *int
	Completed          *bool
	Notes              *string
}

func (p ChecklistPatch) Empty() bool {
	return p.Label == nil && p.DefaultTimeMinutes == nil && p.TimeSpentSeconds == nil && p.Completed == nil && p.Notes == nil
}

func (p ChecklistPatch) Validate() error {
	if p.Label != nil && strings.TrimSpace(*p.Label) == "" {
		return errInvalid("label must not be empty")
	}
	if p.DefaultTimeMinutes != nil && *p.DefaultTimeMinutes <= 0 {
		return errInvalid("default time must be positive")
	}
	if p.TimeSpentSeconds != nil && *p.TimeSpentSeconds < 0 {
		return errInvalid("time spent must not be negative")
	}
	return nil
}

// FreezesTime reports whether the patch edits tracked time on an item that is
// completed once the patch lands. Completed items keep their time.
func (p ChecklistPatch) FreezesTime(item docdomain.ChecklistItem) bool {
	if p.TimeSpentSeconds == nil || *p.TimeSpentSeconds == item.TimeSpentSeconds {
		return false
	}
	completed := item.Completed
	if p.Completed != nil {
		completed = *p.Completed
	}
	return completed
}

func (p ChecklistPatch) Apply(item *docdomain.ChecklistItem) {
	if p.Label != nil {
		item.Label = strings.TrimSpace(*p.Label)
	}
	if p.DefaultTimeMinutes != nil {
		item.DefaultTimeMinutes = *p.DefaultTimeMinutes
	}
	if p.TimeSpentSeconds != nil {
		item.TimeSpentSeconds = *p.TimeSpentSeconds
	}
	if p.Completed != nil {
		item.Completed = *p.Completed
	}
	if p.Notes != nil {
		item.Notes = *p.Notes
	}
}

// SessionPatch carries the wrap-up fields of a day.
type SessionPatch struct {
	Notes                  *string
	ApplicationsCount      *int
	RecruiterMessagesCount *int
}

func (p SessionPatch) Validate() error {
	if p.ApplicationsCount != nil && *p.ApplicationsCount < 0 {
		return errInvalid("applications count must not be negative")
	}
	if p.RecruiterMessagesCount != nil && *p.RecruiterMessagesCount < 0 {
		return errInvalid("recruiter messages count must not be negative")
	}
	return nil
}

func (p SessionPatch) Apply(session *docdomain.DailySession) {
	if p.Notes != nil {
		session.Notes = *p.Notes
	}
	if p.ApplicationsCount != nil {
		session.ApplicationsCount = *p.ApplicationsCount
	}
	if p.RecruiterMessagesCount != nil {
		session.RecruiterMessagesCount = *p.RecruiterMessagesCount
	}
}

// Elapsed is the wall time between start and end, or now when still running.
func Elapsed(session docdomain.DailySession, now time.Time) time.Duration {
	if session.SessionStart == nil {
		return 0
	}
	end := now
	if session.SessionEnd != nil {
		end = *session.SessionEnd
	}
	if end.Before(*session.SessionStart) {
		return 0
	}
	return end.Sub(*session.SessionStart)
}
