package domain

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	docdomain "switchsprint/internal/modules/document/domain"
	"switchsprint/internal/platform/clock"
	apperrors "switchsprint/internal/platform/errors"
)

const ReportFileName = "study-plan-report.md"

// Locked reports whether day n is still closed: every day after the first
// opens only once the day before it is completed.
func Locked(progress map[int]docdomain.StudyDay, n int) bool {
	if n <= 1 {
		return false
	}
	prev, ok := progress[n-1]
	return !ok || !prev.Completed
}

// StartDay parses a stored plan start. Older documents hold a full timestamp.
func StartDay(start *string, loc *time.Location) (time.Time, bool) {
	if start == nil || *start == "" {
		return time.Time{}, false
	}
	if strings.Contains(*start, "T") {
		ts, err := time.Parse(time.RFC3339Nano, *start)
		if err != nil {
			return time.Time{}, false
		}
		ts = ts.In(loc)
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, loc), true
	}
	day, err := clock.ParseDay(*start, loc)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// CurrentDay is the calendar position in the plan: 0 before the plan is
// started, otherwise days since start plus one, capped at the plan length.
func CurrentDay(start *string, now time.Time) int {
	startDay, ok := StartDay(start, now.Location())
	if !ok {
		return 0
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := int(math.Round(today.Sub(startDay).Hours()/24)) + 1
	return docdomain.ClampDay(days)
}

// DayDate is the calendar date of day n when the plan started on start.
func DayDate(start *string, n int, loc *time.Location) string {
	startDay, ok := StartDay(start, loc)
	if !ok {
		return ""
	}
	return clock.DayKey(startDay.AddDate(0, 0, n-1))
}

// DayPatch carries the fields to change on a study day; nil fields are kept.
type DayPatch struct {
	Completed    *bool
	Notes        *string
	CustomTopics *[]string
	AddTopic     string
	RemoveTopic  string
}

func (p DayPatch) Empty() bool {
	return p.Completed == nil && p.Notes == nil && p.CustomTopics == nil && p.AddTopic == "" && p.RemoveTopic == ""
}

// Apply mutates day; completing stamps today, reopening clears the stamp.
func (p DayPatch) Apply(day *docdomain.StudyDay, today string) {
	if p.Completed != nil {
		day.Completed = *p.Completed
		if day.Completed {
			day.CompletedDate = docdomain.StringPtr(today)
		} else {
			day.CompletedDate = nil
		}
	}
	if p.Notes != nil {
		day.Notes = *p.Notes
	}
	if p.CustomTopics != nil {
		day.CustomTopics = cleanTopics(*p.CustomTopics)
	}
	if topic := strings.TrimSpace(p.AddTopic); topic != "" {
		day.CustomTopics = cleanTopics(append(day.CustomTopics, topic))
	}
	if topic := strings.TrimSpace(p.RemoveTopic); topic != "" {
		kept := day.CustomTopics[:0:0]
		for _, existing := range day.CustomTopics {
			if existing != topic {
				kept = append(kept, existing)
			}
		}
		day.CustomTopics = kept
	}
}

func cleanTopics(topics []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(topics))
	for _, topic := range topics {
		topic = strings.TrimSpace(topic)
		if topic == "" || seen[topic] {
			continue
		}
		seen[topic] = true
		out = append(out, topic)
	}
	return out
}

// ValidateImport checks an imported plan before it replaces the current one.
func ValidateImport(days []docdomain.StudyDay) error {
	if len(days) == 0 {
		return fmt.Errorf("%w: plan is empty", apperrors.ErrInvalidImport)
	}
	for i, day := range days {
		if day.DayNumber < 1 {
			return fmt.Errorf("%w: entry %d has no valid dayNumber", apperrors.ErrInvalidImport, i)
		}
	}
	return nil
}

// Report is the content of a study report.
type Report struct {
	GeneratedOn   string
	TotalDays     int
	CompletedDays []docdomain.StudyDay
}

// ReminderURL builds a daily recurring calendar event at 21:30 local time.
func ReminderURL(now time.Time) string {
	start := time.Date(now.Year(), now.Month(), now.Day(), 21, 30, 0, 0, now.Location()).UTC()
	end := start.Add(time.Hour)
	const layout = "20060102T150405Z"
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", "Switch Sprint: Daily Study Session")
	q.Set("details", "Time to focus on your career switch! Check the Switch Sprint app.")
	q.Set("dates", start.Format(layout)+"/"+end.Format(layout))
	q.Set("recur", "RRULE:FREQ=DAILY")
	return "https://calendar.google.com/calendar/render?" + q.Encode()
}
