package out

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"switchsprint/internal/modules/analytics/domain"
	docdomain "switchsprint/internal/modules/document/domain"
)

func newProjector(t *testing.T) *SQLiteHistoryProjector {
	t.Helper()
	projector, err := NewSQLiteHistoryProjector(filepath.Join(t.TempDir(), ".switchsprint", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = projector.Close() })
	return projector
}

func TestHistoryUpsertAndRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	projector := newProjector(t)

	rows := []domain.HistoryRow{
		{Date: "2026-04-28", TotalSeconds: 600, ItemsTotal: 7},
		{Date: "2026-05-04", TotalSeconds: 1200, ItemsDone: 2, ItemsTotal: 7, ApplicationsCount: 1, Notes: "first"},
		{Date: "2026-05-10", TotalSeconds: 1800, ItemsTotal: 7, ApplicationsCount: 2},
		{Date: "2026-05-11", TotalSeconds: 60, ItemsTotal: 7, StartedAt: "2026-05-11T08:00:00Z"},
	}
	require.NoError(t, projector.UpsertSessions(ctx, rows))

	rows[1].Notes = "revised"
	rows[1].ItemsDone = 5
	require.NoError(t, projector.UpsertSessions(ctx, rows[1:2]))

	all, err := projector.Range(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "revised", all[1].Notes)
	assert.Equal(t, 5, all[1].ItemsDone)
	assert.Equal(t, "2026-05-11T08:00:00Z", all[3].StartedAt)

	window, err := projector.Range(ctx, "2026-05-01", "2026-05-10")
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, "2026-05-04", window[0].Date)
	assert.Equal(t, "2026-05-10", window[1].Date)

	tail, err := projector.Range(ctx, "2026-05-10", "")
	require.NoError(t, err)
	assert.Len(t, tail, 2)
}

func TestHistoryWeeklyAndReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	projector := newProjector(t)
	require.NoError(t, projector.UpsertSessions(ctx, []domain.HistoryRow{
		{Date: "2026-04-28", TotalSeconds: 600},
		{Date: "2026-05-04", TotalSeconds: 1200, ApplicationsCount: 1},
		{Date: "2026-05-10", TotalSeconds: 1800, ApplicationsCount: 2},
		{Date: "2026-05-11", TotalSeconds: 60},
	}))

	weeks, err := projector.Weekly(ctx, 2)
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, domain.WeekTotal{Week: "2026-W19", Sessions: 1, TotalSeconds: 60}, weeks[0])
	assert.Equal(t, domain.WeekTotal{Week: "2026-W18", Sessions: 2, TotalSeconds: 3000, Applications: 3}, weeks[1])

	all, err := projector.Weekly(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, projector.Reset(ctx))
	empty, err := projector.Range(ctx, "", "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestXLSXReportSheets(t *testing.T) {
	t.Parallel()
	doc := docdomain.Default()
	start := time.Date(2026, 5, 10, 8, 0, 0, 0, time.Local)
	s := docdomain.DailySession{Date: "2026-05-10", SessionStart: &start, Checklist: docdomain.DefaultChecklist(), ApplicationsCount: 2, Notes: "good day"}
	s.Checklist[0].Completed = true
	s.Checklist[1].TimeSpentSeconds = 1500
	s.Recompute()
	doc.Sessions.Upsert(s)
	doc.Applications = append(doc.Applications, docdomain.JobApplication{
		Company: "Acme", RoleTitle: "Data Engineer", Status: docdomain.StatusOffer, DateApplied: "2026-05-01", JobLink: "https://acme.example/jobs/1",
	})
	day := doc.StudyProgress[1]
	day.Completed = true
	doc.StudyProgress[1] = day

	payload, err := NewXLSXReportRenderer().Render(doc)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, []string{"Sessions", "Applications", "Study Plan"}, f.GetSheetList())

	sessions, err := f.GetRows("Sessions")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "Duration (Min)", sessions[0][3])
	assert.Equal(t, []string{"2026-05-10", "08:00:00", "", "25", "1", "7", "2", "good day"}, sessions[1])

	apps, err := f.GetRows("Applications")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, []string{"Acme", "Data Engineer", "Offer", "2026-05-01", "https://acme.example/jobs/1"}, apps[1])

	study, err := f.GetRows("Study Plan")
	require.NoError(t, err)
	require.Len(t, study, 15)
	assert.Equal(t, "1", study[1][0])
	assert.Equal(t, "Yes", study[1][1])
	assert.Equal(t, "No", study[2][1])
}
