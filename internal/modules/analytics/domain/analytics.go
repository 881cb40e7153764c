// Package domain derives read-only views from the document.
package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	docdomain "switchsprint/internal/modules/document/domain"
	"switchsprint/internal/platform/clock"
)

// UsefulDaySeconds is the tracked time above which a day counts as useful.
const UsefulDaySeconds = 1800

// RecentLimit is how many sessions the activity feed shows.
const RecentLimit = 5

type Summary struct {
	TotalSessions      int
	TotalHours         int
	TotalApplications  int
	UsefulDays         int
	StudyDaysCompleted int
	StudyDaysTotal     int
	ResourcesChecked   int
	ResourcesTotal     int
}

func Summarize(doc docdomain.AppData) Summary {
	summary := Summary{
		TotalSessions:     len(doc.Sessions),
		TotalApplications: len(doc.Applications),
		StudyDaysTotal:    len(doc.StudyProgress),
	}
	total := 0
	for _, session := range doc.Sessions {
		total += session.TotalTimeSpentSeconds
		if session.TotalTimeSpentSeconds > UsefulDaySeconds {
			summary.UsefulDays++
		}
	}
	summary.TotalHours = int(math.Round(float64(total) / 3600))
	for _, day := range doc.StudyProgress {
		if day.Completed {
			summary.StudyDaysCompleted++
		}
	}
	for _, category := range doc.Resources {
		for _, link := range category.Links {
			summary.ResourcesTotal++
			if link.Checked {
				summary.ResourcesChecked++
			}
		}
	}
	return summary
}

type FunnelStage struct {
	Status docdomain.ApplicationStatus
	Count  int
	Share  float64
}

// Funnel counts applications per status in funnel order. Statuses nobody is
// in are left out.
func Funnel(apps []docdomain.JobApplication) []FunnelStage {
	counts := make(map[docdomain.ApplicationStatus]int, len(docdomain.ApplicationStatuses))
	for _, app := range apps {
		counts[app.Status]++
	}
	stages := make([]FunnelStage, 0, len(counts))
	for _, status := range docdomain.ApplicationStatuses {
		n := counts[status]
		if n == 0 {
			continue
		}
		stages = append(stages, FunnelStage{Status: status, Count: n, Share: float64(n) / float64(len(apps))})
	}
	return stages
}

type Activity struct {
	Date      string
	Minutes   int
	ItemsDone int
}

// RecentActivity returns the latest limit sessions, newest first.
func RecentActivity(sessions docdomain.Sessions, limit int) []Activity {
	sorted := sessions.Sorted()
	out := make([]Activity, 0, limit)
	for i := len(sorted) - 1; i >= 0 && len(out) < limit; i-- {
		session := sorted[i]
		out = append(out, Activity{
			Date:      session.Date,
			Minutes:   Minutes(session.TotalTimeSpentSeconds),
			ItemsDone: session.CompletedCount(),
		})
	}
	return out
}

type Totals struct {
	Minutes      int
	Applications int
}

type WrapUp struct {
	Date           string
	Today          Totals
	TasksCompleted int
	TasksTotal     int
	TopicsCovered  []int
	Weekly         Totals
	Lifetime       Totals
}

// BuildWrapUp summarises today, the trailing seven days and all time.
func BuildWrapUp(doc docdomain.AppData, now time.Time) WrapUp {
	today := clock.DayKey(now)
	weekStart := clock.DayKey(now.AddDate(0, 0, -7))
	wrap := WrapUp{Date: today, TopicsCovered: []int{}}

	if session, ok := doc.Sessions[today]; ok {
		wrap.Today.Minutes = Minutes(session.TotalTimeSpentSeconds)
		wrap.TasksCompleted = session.CompletedCount()
		wrap.TasksTotal = len(session.Checklist)
	}
	weekly, lifetime := 0, 0
	for date, session := range doc.Sessions {
		lifetime += session.TotalTimeSpentSeconds
		if date >= weekStart {
			weekly += session.TotalTimeSpentSeconds
		}
	}
	wrap.Weekly.Minutes = Minutes(weekly)
	wrap.Lifetime.Minutes = Minutes(lifetime)

	for _, app := range doc.Applications {
		wrap.Lifetime.Applications++
		if app.DateApplied == today {
			wrap.Today.Applications++
		}
		if app.DateApplied >= weekStart {
			wrap.Weekly.Applications++
		}
	}
	for n := 1; n <= docdomain.PlanLength; n++ {
		day, ok := doc.StudyProgress[n]
		if ok && day.Completed && day.CompletedDate != nil && strings.HasPrefix(*day.CompletedDate, today) {
			wrap.TopicsCovered = append(wrap.TopicsCovered, n)
		}
	}
	return wrap
}

// CompletionPercent is the rounded share of completed checklist items.
func CompletionPercent(session docdomain.DailySession) int {
	if len(session.Checklist) == 0 {
		return 0
	}
	return int(math.Round(float64(session.CompletedCount()) * 100 / float64(len(session.Checklist))))
}

func Minutes(seconds int) int {
	return int(math.Round(float64(seconds) / 60))
}

// FormatDuration renders seconds as "1h 5m".
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
}

// HistoryRow is one projected session row.
type HistoryRow struct {
	Date                   string
	StartedAt              string
	EndedAt                string
	TotalSeconds           int
	ItemsDone              int
	ItemsTotal             int
	ApplicationsCount      int
	RecruiterMessagesCount int
	Notes                  string
}

func RowFromSession(session docdomain.DailySession) HistoryRow {
	row := HistoryRow{
		Date:                   session.Date,
		TotalSeconds:           session.TotalTimeSpentSeconds,
		ItemsDone:              session.CompletedCount(),
		ItemsTotal:             len(session.Checklist),
		ApplicationsCount:      session.ApplicationsCount,
		RecruiterMessagesCount: session.RecruiterMessagesCount,
		Notes:                  session.Notes,
	}
	if session.SessionStart != nil {
		row.StartedAt = session.SessionStart.UTC().Format(time.RFC3339)
	}
	if session.SessionEnd != nil {
		row.EndedAt = session.SessionEnd.UTC().Format(time.RFC3339)
	}
	return row
}

// WeekTotal aggregates history rows by calendar week, labelled YYYY-Www with
// weeks starting on Monday.
type WeekTotal struct {
	Week         string
	Sessions     int
	TotalSeconds int
	Applications int
}
