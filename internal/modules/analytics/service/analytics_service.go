package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"switchsprint/internal/modules/analytics/domain"
	analyticsout "switchsprint/internal/modules/analytics/port/out"
	backupdomain "switchsprint/internal/modules/backup/domain"
	docdomain "switchsprint/internal/modules/document/domain"
	"switchsprint/internal/platform/clock"
	apperrors "switchsprint/internal/platform/errors"
)

type AnalyticsService struct {
	clock     clock.Clock
	docs      analyticsout.DocumentSource
	projector analyticsout.HistoryProjector
	renderer  analyticsout.ReportRenderer
	reports   analyticsout.ReportStore
	logger    *slog.Logger

	projectMu sync.Mutex
	projected map[string]domain.HistoryRow
}

func NewAnalyticsService(clk clock.Clock, docs analyticsout.DocumentSource, projector analyticsout.HistoryProjector, renderer analyticsout.ReportRenderer, reports analyticsout.ReportStore, logger *slog.Logger) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsService{clock: clk, docs: docs, projector: projector, renderer: renderer, reports: reports, logger: logger}
}

func (s *AnalyticsService) Summary() domain.Summary {
	return domain.Summarize(s.docs.Snapshot())
}

func (s *AnalyticsService) Funnel() []domain.FunnelStage {
	return domain.Funnel(s.docs.Snapshot().Applications)
}

func (s *AnalyticsService) Recent(limit int) []domain.Activity {
	if limit <= 0 {
		limit = domain.RecentLimit
	}
	return domain.RecentActivity(s.docs.Snapshot().Sessions, limit)
}

func (s *AnalyticsService) WrapUp() domain.WrapUp {
	return domain.BuildWrapUp(s.docs.Snapshot(), s.clock.Now())
}

// DocumentChanged upserts the session rows that differ from what was last
// projected. Notifications may arrive out of order, so it diffs the latest
// snapshot rather than the one it was handed.
func (s *AnalyticsService) DocumentChanged(docdomain.AppData) {
	if s.projector == nil {
		return
	}
	s.projectMu.Lock()
	defer s.projectMu.Unlock()
	var changed []domain.HistoryRow
	for _, row := range rows(s.docs.Snapshot()) {
		if prev, ok := s.projected[row.Date]; !ok || prev != row {
			changed = append(changed, row)
		}
	}
	if len(changed) == 0 {
		return
	}
	if err := s.projector.UpsertSessions(context.Background(), changed); err != nil {
		s.logger.Warn("history projection failed", "error", err)
		return
	}
	s.remember(changed)
}

// Reindex rebuilds the projection from the current document.
func (s *AnalyticsService) Reindex(ctx context.Context) (int, error) {
	if s.projector == nil {
		return 0, fmt.Errorf("%w: history projection is not configured", apperrors.ErrInvalidInput)
	}
	s.projectMu.Lock()
	defer s.projectMu.Unlock()
	s.projected = nil
	if err := s.projector.Reset(ctx); err != nil {
		return 0, err
	}
	all := rows(s.docs.Snapshot())
	if err := s.projector.UpsertSessions(ctx, all); err != nil {
		return 0, err
	}
	s.remember(all)
	s.logger.Info("history reindexed", "sessions", len(all))
	return len(all), nil
}

// History returns projected rows with from <= date <= to. Empty bounds are open.
func (s *AnalyticsService) History(ctx context.Context, from, to string) ([]domain.HistoryRow, error) {
	if s.projector == nil {
		return nil, fmt.Errorf("%w: history projection is not configured", apperrors.ErrInvalidInput)
	}
	for _, bound := range []string{from, to} {
		if bound == "" {
			continue
		}
		if _, err := clock.ParseDay(bound, nil); err != nil {
			return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", apperrors.ErrInvalidInput, bound)
		}
	}
	if from != "" && to != "" && from > to {
		return nil, fmt.Errorf("%w: from is after to", apperrors.ErrInvalidInput)
	}
	return s.projector.Range(ctx, from, to)
}

func (s *AnalyticsService) Weekly(ctx context.Context, limit int) ([]domain.WeekTotal, error) {
	if s.projector == nil {
		return nil, fmt.Errorf("%w: history projection is not configured", apperrors.ErrInvalidInput)
	}
	return s.projector.Weekly(ctx, limit)
}

// ExportReport writes the spreadsheet report into dir and returns its path.
func (s *AnalyticsService) ExportReport(ctx context.Context, dir string) (string, error) {
	payload, err := s.renderer.Render(s.docs.Snapshot())
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, backupdomain.ReportFileName(s.clock.Now()))
	if err := s.reports.Write(ctx, path, payload); err != nil {
		return "", err
	}
	return path, nil
}

func (s *AnalyticsService) remember(rows []domain.HistoryRow) {
	if s.projected == nil {
		s.projected = make(map[string]domain.HistoryRow, len(rows))
	}
	for _, row := range rows {
		s.projected[row.Date] = row
	}
}

func rows(doc docdomain.AppData) []domain.HistoryRow {
	sorted := doc.Sessions.Sorted()
	out := make([]domain.HistoryRow, 0, len(sorted))
	for _, session := range sorted {
		out = append(out, domain.RowFromSession(session))
	}
	return out
}
