package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docdomain "switchsprint/internal/modules/document/domain"
)

func session(date string, seconds int, done int) docdomain.DailySession {
	s := docdomain.DailySession{Date: date, Checklist: docdomain.DefaultChecklist()}
	for i := 0; i < done; i++ {
		s.Checklist[i].Completed = true
	}
	s.Checklist[0].TimeSpentSeconds = seconds
	s.Recompute()
	return s
}

func sampleDoc() docdomain.AppData {
	doc := docdomain.Default()
	for _, s := range []docdomain.DailySession{
		session("2026-04-01", 600, 1),
		session("2026-04-28", 3600, 3),
		session("2026-05-04", 2400, 2),
		session("2026-05-08", 1800, 0),
		session("2026-05-09", 5400, 4),
		session("2026-05-10", 900, 7),
	} {
		doc.Sessions.Upsert(s)
	}
	doc.Applications = []docdomain.JobApplication{
		{ID: "1", Status: docdomain.StatusApplied, DateApplied: "2026-05-10"},
		{ID: "2", Status: docdomain.StatusApplied, DateApplied: "2026-05-06"},
		{ID: "3", Status: docdomain.StatusRejected, DateApplied: "2026-04-20"},
		{ID: "4", Status: docdomain.StatusTechRound, DateApplied: "2026-05-01"},
	}
	day := doc.StudyProgress[1]
	day.Completed = true
	day.CompletedDate = docdomain.StringPtr("2026-05-10")
	doc.StudyProgress[1] = day
	day = doc.StudyProgress[2]
	day.Completed = true
	day.CompletedDate = docdomain.StringPtr("2026-05-09T20:15:00Z")
	doc.StudyProgress[2] = day
	doc.Resources[0].Links[0].Checked = true
	return doc
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	summary := Summarize(sampleDoc())
	assert.Equal(t, 6, summary.TotalSessions)
	assert.Equal(t, 4, summary.TotalHours)
	assert.Equal(t, 4, summary.TotalApplications)
	assert.Equal(t, 3, summary.UsefulDays)
	assert.Equal(t, 2, summary.StudyDaysCompleted)
	assert.Equal(t, 14, summary.StudyDaysTotal)
	assert.Equal(t, 1, summary.ResourcesChecked)
	assert.Equal(t, 10, summary.ResourcesTotal)
}

func TestFunnelFollowsStatusOrder(t *testing.T) {
	t.Parallel()
	stages := Funnel(sampleDoc().Applications)
	require.Len(t, stages, 3)
	assert.Equal(t, docdomain.StatusApplied, stages[0].Status)
	assert.Equal(t, 2, stages[0].Count)
	assert.InDelta(t, 0.5, stages[0].Share, 1e-9)
	assert.Equal(t, docdomain.StatusTechRound, stages[1].Status)
	assert.Equal(t, docdomain.StatusRejected, stages[2].Status)
	assert.Empty(t, Funnel(nil))
}

func TestRecentActivityNewestFirst(t *testing.T) {
	t.Parallel()
	recent := RecentActivity(sampleDoc().Sessions, RecentLimit)
	require.Len(t, recent, 5)
	assert.Equal(t, "2026-05-10", recent[0].Date)
	assert.Equal(t, 15, recent[0].Minutes)
	assert.Equal(t, 7, recent[0].ItemsDone)
	assert.Equal(t, "2026-04-28", recent[4].Date)
}

func TestBuildWrapUp(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 5, 10, 21, 0, 0, 0, time.UTC)
	wrap := BuildWrapUp(sampleDoc(), now)
	assert.Equal(t, "2026-05-10", wrap.Date)
	assert.Equal(t, Totals{Minutes: 15, Applications: 1}, wrap.Today)
	assert.Equal(t, 7, wrap.TasksCompleted)
	assert.Equal(t, 7, wrap.TasksTotal)
	assert.Equal(t, []int{1}, wrap.TopicsCovered)
	assert.Equal(t, Totals{Minutes: 175, Applications: 2}, wrap.Weekly)
	assert.Equal(t, Totals{Minutes: 245, Applications: 4}, wrap.Lifetime)

	empty := BuildWrapUp(docdomain.Default(), now)
	assert.Zero(t, empty.TasksTotal)
	assert.Empty(t, empty.TopicsCovered)
}

func TestCompletionAndDuration(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 43, CompletionPercent(session("2026-05-10", 0, 3)))
	assert.Equal(t, 0, CompletionPercent(docdomain.DailySession{}))
	assert.Equal(t, "1h 5m", FormatDuration(3900))
	assert.Equal(t, "0h 0m", FormatDuration(59))
}

func TestRowFromSession(t *testing.T) {
	t.Parallel()
	s := session("2026-05-10", 120, 2)
	start := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
	s.SessionStart = &start
	s.ApplicationsCount = 3
	row := RowFromSession(s)
	assert.Equal(t, "2026-05-10T08:00:00Z", row.StartedAt)
	assert.Empty(t, row.EndedAt)
	assert.Equal(t, 2, row.ItemsDone)
	assert.Equal(t, 7, row.ItemsTotal)
	assert.Equal(t, 3, row.ApplicationsCount)
}
