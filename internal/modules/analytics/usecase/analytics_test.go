package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analyticsout "switchsprint/internal/modules/analytics/adapter/out"
	analyticsdomain "switchsprint/internal/modules/analytics/domain"
	analyticsdto "switchsprint/internal/modules/analytics/dto"
	"switchsprint/internal/modules/analytics/service"
	"switchsprint/internal/modules/analytics/usecase"
	documentout "switchsprint/internal/modules/document/adapter/out"
	docdomain "switchsprint/internal/modules/document/domain"
	documentservice "switchsprint/internal/modules/document/service"
	apperrors "switchsprint/internal/platform/errors"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

func seedSession(date string, seconds int) func(doc *docdomain.AppData) error {
	return func(doc *docdomain.AppData) error {
		s := docdomain.DailySession{Date: date, Checklist: docdomain.DefaultChecklist()}
		s.Checklist[0].TimeSpentSeconds = seconds
		s.Checklist[0].Completed = true
		s.Recompute()
		doc.Sessions.Upsert(s)
		return nil
	}
}

func TestHistoryFollowsDocumentAndReindex(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	docs := documentservice.NewDocumentService(documentout.NewFileDocumentStore(filepath.Join(dir, "state.json")), logger, nil)
	_, err := docs.Load(ctx)
	require.NoError(t, err)
	_, err = docs.Update(ctx, seedSession("2026-05-01", 600))
	require.NoError(t, err)

	projector, err := analyticsout.NewSQLiteHistoryProjector(filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	defer func() { _ = projector.Close() }()
	svc := service.NewAnalyticsService(fixedClock{now: time.Date(2026, 5, 10, 20, 0, 0, 0, time.UTC)}, docs, projector,
		analyticsout.NewXLSXReportRenderer(), analyticsout.NewFileReportStore(), logger)
	uc := usecase.NewInteractor(svc)

	n, err := uc.Reindex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	docs.Subscribe(svc)
	_, err = docs.Update(ctx, seedSession("2026-05-10", 1500))
	require.NoError(t, err)

	history, err := uc.History(ctx, analyticsdto.HistoryInput{From: "2026-05-01"})
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 25, history[1].Minutes)
	assert.Equal(t, 1, history[1].ItemsDone)

	_, err = uc.History(ctx, analyticsdto.HistoryInput{From: "2026-05-10", To: "2026-05-01"})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	_, err = uc.History(ctx, analyticsdto.HistoryInput{From: "last week"})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)

	weeks, err := uc.Weekly(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, weeks, 2)

	wrap, err := uc.WrapUp(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, wrap.Today.Minutes)
	assert.Equal(t, 14, wrap.CompletionPercent)

	summary, err := uc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalSessions)
}

type recordingProjector struct {
	batches [][]analyticsdomain.HistoryRow
}

func (r *recordingProjector) Reset(context.Context) error { return nil }

func (r *recordingProjector) UpsertSessions(_ context.Context, rows []analyticsdomain.HistoryRow) error {
	r.batches = append(r.batches, rows)
	return nil
}

func (r *recordingProjector) Range(context.Context, string, string) ([]analyticsdomain.HistoryRow, error) {
	return nil, nil
}

func (r *recordingProjector) Weekly(context.Context, int) ([]analyticsdomain.WeekTotal, error) {
	return nil, nil
}

func TestDocumentChangesProjectOnlyChangedRows(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	docs := documentservice.NewDocumentService(documentout.NewFileDocumentStore(filepath.Join(dir, "state.json")), logger, nil)
	_, err := docs.Load(ctx)
	require.NoError(t, err)
	for _, date := range []string{"2026-05-01", "2026-05-02", "2026-05-03"} {
		_, err = docs.Update(ctx, seedSession(date, 600))
		require.NoError(t, err)
	}

	projector := &recordingProjector{}
	svc := service.NewAnalyticsService(fixedClock{now: time.Date(2026, 5, 10, 20, 0, 0, 0, time.UTC)}, docs, projector,
		analyticsout.NewXLSXReportRenderer(), analyticsout.NewFileReportStore(), logger)
	n, err := usecase.NewInteractor(svc).Reindex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	docs.Subscribe(svc)

	_, err = docs.Update(ctx, seedSession("2026-05-10", 1))
	require.NoError(t, err)
	_, err = docs.Update(ctx, seedSession("2026-05-10", 2))
	require.NoError(t, err)

	require.Len(t, projector.batches, 3)
	for _, batch := range projector.batches[1:] {
		require.Len(t, batch, 1)
		assert.Equal(t, "2026-05-10", batch[0].Date)
	}
	assert.Equal(t, 2, projector.batches[2][0].TotalSeconds)

	_, err = docs.Update(ctx, func(doc *docdomain.AppData) error {
		doc.FocusedStudyDay = 3
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, projector.batches, 3)
}

func TestExportReportWritesDatedFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	docs := documentservice.NewDocumentService(documentout.NewFileDocumentStore(filepath.Join(dir, "state.json")), nil, nil)
	_, err := docs.Load(ctx)
	require.NoError(t, err)
	svc := service.NewAnalyticsService(fixedClock{now: time.Date(2026, 5, 10, 20, 0, 0, 0, time.UTC)}, docs, nil,
		analyticsout.NewXLSXReportRenderer(), analyticsout.NewFileReportStore(), nil)
	uc := usecase.NewInteractor(svc)

	path, err := uc.ExportReport(ctx, filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "switch-sprint-report-2026-05-10.xlsx"), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	_, err = uc.Reindex(ctx)
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestFunnelPercent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	docs := documentservice.NewDocumentService(documentout.NewFileDocumentStore(filepath.Join(t.TempDir(), "state.json")), nil, nil)
	_, err := docs.Load(ctx)
	require.NoError(t, err)
	_, err = docs.Update(ctx, func(doc *docdomain.AppData) error {
		doc.Applications = []docdomain.JobApplication{
			{ID: "1", Status: docdomain.StatusApplied},
			{ID: "2", Status: docdomain.StatusApplied},
			{ID: "3", Status: docdomain.StatusOffer},
		}
		return nil
	})
	require.NoError(t, err)
	uc := usecase.NewInteractor(service.NewAnalyticsService(fixedClock{now: time.Now()}, docs, nil, nil, nil, nil))

	funnel, err := uc.Funnel(ctx)
	require.NoError(t, err)
	require.Len(t, funnel, 2)
	assert.Equal(t, analyticsdto.FunnelStageOutput{Status: "Applied", Count: 2, Percent: 67}, funnel[0])
	assert.Equal(t, analyticsdto.FunnelStageOutput{Status: "Offer", Count: 1, Percent: 33}, funnel[1])
}
