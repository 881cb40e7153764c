package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	docdomain "switchsprint/internal/modules/document/domain"
	sessionin "switchsprint/internal/modules/session/port/in"
	"switchsprint/internal/modules/study/domain"
	studyout "switchsprint/internal/modules/study/port/out"
	"switchsprint/internal/platform/clock"
	apperrors "switchsprint/internal/platform/errors"
)

type StudyService struct {
	clock    clock.Clock
	docs     studyout.DocumentRepository
	sessions sessionin.Usecase
	reports  studyout.ReportWriter
	plans    studyout.PlanReader
	logger   *slog.Logger
}

func NewStudyService(clk clock.Clock, docs studyout.DocumentRepository, sessions sessionin.Usecase, reports studyout.ReportWriter, plans studyout.PlanReader, logger *slog.Logger) *StudyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyService{clock: clk, docs: docs, sessions: sessions, reports: reports, plans: plans, logger: logger}
}

// DayView is a study day with its derived state.
type DayView struct {
	Day    docdomain.StudyDay
	Locked bool
	Date   string
}

type PlanView struct {
	StartDate  *string
	CurrentDay int
	FocusedDay int
	Completed  int
	Days       []DayView
}

func (s *StudyService) Plan() PlanView {
	doc := s.docs.Snapshot()
	now := s.clock.Now()
	view := PlanView{
		StartDate:  doc.StudyPlanStartDate,
		CurrentDay: domain.CurrentDay(doc.StudyPlanStartDate, now),
		FocusedDay: doc.FocusedStudyDay,
	}
	numbers := make([]int, 0, len(doc.StudyProgress))
	for n := range doc.StudyProgress {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	for _, n := range numbers {
		day := doc.StudyProgress[n]
		if day.Completed {
			view.Completed++
		}
		view.Days = append(view.Days, DayView{
			Day:    day,
			Locked: domain.Locked(doc.StudyProgress, n),
			Date:   domain.DayDate(doc.StudyPlanStartDate, n, now.Location()),
		})
	}
	return view
}

// StartPlan stamps today as the plan start. An already started plan is kept
// unless restart is set.
func (s *StudyService) StartPlan(ctx context.Context, restart bool) (string, error) {
	today := clock.DayKey(s.clock.Now())
	doc, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		if doc.StudyPlanStartDate != nil && !restart {
			return apperrors.ErrNoChange
		}
		doc.StudyPlanStartDate = docdomain.StringPtr(today)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("start study plan: %w", err)
	}
	return *doc.StudyPlanStartDate, nil
}

// UpdateDay changes one day. Locked days reject every change.
func (s *StudyService) UpdateDay(ctx context.Context, dayNumber int, patch domain.DayPatch) (docdomain.StudyDay, error) {
	if patch.Empty() {
		return docdomain.StudyDay{}, fmt.Errorf("%w: nothing to update", apperrors.ErrInvalidInput)
	}
	snapshot := s.docs.Snapshot()
	if _, ok := snapshot.StudyProgress[dayNumber]; !ok {
		return docdomain.StudyDay{}, fmt.Errorf("%w: study day %d", apperrors.ErrNotFound, dayNumber)
	}
	if domain.Locked(snapshot.StudyProgress, dayNumber) {
		return docdomain.StudyDay{}, fmt.Errorf("%w: complete day %d first", apperrors.ErrDayLocked, dayNumber-1)
	}
	if _, err := s.sessions.EnsureToday(ctx); err != nil {
		return docdomain.StudyDay{}, err
	}

	today := clock.DayKey(s.clock.Now())
	var updated docdomain.StudyDay
	_, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		day, ok := doc.StudyProgress[dayNumber]
		if !ok {
			return fmt.Errorf("%w: study day %d", apperrors.ErrNotFound, dayNumber)
		}
		if domain.Locked(doc.StudyProgress, dayNumber) {
			return fmt.Errorf("%w: complete day %d first", apperrors.ErrDayLocked, dayNumber-1)
		}
		patch.Apply(&day, today)
		doc.StudyProgress[dayNumber] = day
		updated = day
		return nil
	})
	if err != nil {
		return docdomain.StudyDay{}, fmt.Errorf("update study day: %w", err)
	}
	return updated, nil
}

// Focus moves the focused day explicitly; it never follows the calendar.
func (s *StudyService) Focus(ctx context.Context, dayNumber int) (int, error) {
	if dayNumber < 1 || dayNumber > docdomain.PlanLength {
		return 0, fmt.Errorf("%w: day must be between 1 and %d", apperrors.ErrInvalidInput, docdomain.PlanLength)
	}
	doc, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		if doc.FocusedStudyDay == dayNumber {
			return apperrors.ErrNoChange
		}
		doc.FocusedStudyDay = dayNumber
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("focus study day: %w", err)
	}
	return doc.FocusedStudyDay, nil
}

// Advance moves the focus one day forward, stopping at the last day.
func (s *StudyService) Advance(ctx context.Context) (int, error) {
	doc, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		next := docdomain.ClampDay(doc.FocusedStudyDay + 1)
		if next == doc.FocusedStudyDay {
			return apperrors.ErrNoChange
		}
		doc.FocusedStudyDay = next
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("advance study day: %w", err)
	}
	return doc.FocusedStudyDay, nil
}

// LoadPlan replaces the plan with raw, which must be a JSON array of days.
// Anything else is rejected and leaves the document untouched.
func (s *StudyService) LoadPlan(ctx context.Context, raw []byte) (int, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return 0, fmt.Errorf("%w: expected a JSON array of study days", apperrors.ErrInvalidImport)
	}
	days := make([]docdomain.StudyDay, 0, len(entries))
	for i, entry := range entries {
		var day docdomain.StudyDay
		if err := json.Unmarshal(entry, &day); err != nil {
			return 0, fmt.Errorf("%w: entry %d: %v", apperrors.ErrInvalidImport, i, err)
		}
		days = append(days, day)
	}
	if err := domain.ValidateImport(days); err != nil {
		return 0, err
	}
	progress := docdomain.StudyPlanMap(days)
	if _, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		doc.StudyProgress = progress
		doc.StudyPlanStartDate = nil
		return nil
	}); err != nil {
		return 0, fmt.Errorf("load study plan: %w", err)
	}
	s.logger.Info("study plan imported", "days", len(progress))
	return len(progress), nil
}

// ImportFile reads a plan file and loads it.
func (s *StudyService) ImportFile(ctx context.Context, path string) (int, error) {
	raw, err := s.plans.ReadPlan(ctx, path)
	if err != nil {
		return 0, err
	}
	return s.LoadPlan(ctx, raw)
}

// ExportReport writes the completed-days report to path.
func (s *StudyService) ExportReport(ctx context.Context, path string) (domain.Report, error) {
	doc := s.docs.Snapshot()
	report := domain.Report{
		GeneratedOn: clock.DayKey(s.clock.Now()),
		TotalDays:   len(doc.StudyProgress),
	}
	numbers := make([]int, 0, len(doc.StudyProgress))
	for n, day := range doc.StudyProgress {
		if day.Completed {
			numbers = append(numbers, n)
		}
	}
	sort.Ints(numbers)
	for _, n := range numbers {
		report.CompletedDays = append(report.CompletedDays, doc.StudyProgress[n])
	}
	if err := s.reports.WriteReport(ctx, path, report); err != nil {
		return domain.Report{}, err
	}
	return report, nil
}

func (s *StudyService) ReminderURL() string {
	return domain.ReminderURL(s.clock.Now())
}
