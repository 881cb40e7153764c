package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	docdomain "switchsprint/internal/modules/document/domain"
	"switchsprint/internal/modules/jobsearch/domain"
	jobsearchout "switchsprint/internal/modules/jobsearch/port/out"
	"switchsprint/internal/platform/clock"
	apperrors "switchsprint/internal/platform/errors"
	"switchsprint/internal/platform/id"
)

type JobSearchService struct {
	clock     clock.Clock
	ids       id.Generator
	docs      jobsearchout.DocumentRepository
	inspector jobsearchout.ResumeInspector
	logger    *slog.Logger
}

func NewJobSearchService(clk clock.Clock, ids id.Generator, docs jobsearchout.DocumentRepository, inspector jobsearchout.ResumeInspector, logger *slog.Logger) *JobSearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobSearchService{clock: clk, ids: ids, docs: docs, inspector: inspector, logger: logger}
}

func (s *JobSearchService) today() string {
	return clock.DayKey(s.clock.Now())
}

// Applications lists applications, most recently applied first.
func (s *JobSearchService) Applications() []docdomain.JobApplication {
	apps := s.docs.Snapshot().Applications
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].DateApplied > apps[j].DateApplied
	})
	return apps
}

func (s *JobSearchService) AddApplication(ctx context.Context, input domain.NewApplication) (docdomain.JobApplication, error) {
	app, err := input.Build(s.ids.New(), s.clock.Now())
	if err != nil {
		return docdomain.JobApplication{}, err
	}
	if _, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		doc.Applications = append(doc.Applications, app)
		return nil
	}); err != nil {
		return docdomain.JobApplication{}, fmt.Errorf("add application: %w", err)
	}
	s.logger.Debug("application added", "id", app.ID, "company", app.Company)
	return app, nil
}

func (s *JobSearchService) UpdateApplication(ctx context.Context, appID string, patch domain.ApplicationPatch) (docdomain.JobApplication, error) {
	if patch.Empty() {
		return docdomain.JobApplication{}, fmt.Errorf("%w: nothing to update", apperrors.ErrInvalidInput)
	}
	if err := patch.Validate(); err != nil {
		return docdomain.JobApplication{}, err
	}
	today := s.today()
	var updated docdomain.JobApplication
	_, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		i := domain.FindApplication(doc.Applications, appID)
		if i < 0 {
			return fmt.Errorf("%w: application %q", apperrors.ErrNotFound, appID)
		}
		patch.Apply(&doc.Applications[i], today)
		updated = doc.Applications[i]
		return nil
	})
	if err != nil {
		return docdomain.JobApplication{}, fmt.Errorf("update application: %w", err)
	}
	return updated, nil
}

func (s *JobSearchService) DeleteApplication(ctx context.Context, appID string) error {
	_, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		i := domain.FindApplication(doc.Applications, appID)
		if i < 0 {
			return fmt.Errorf("%w: application %q", apperrors.ErrNotFound, appID)
		}
		doc.Applications = append(doc.Applications[:i], doc.Applications[i+1:]...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	return nil
}

// Board groups applications by column, keeping every column present.
func (s *JobSearchService) Board() map[domain.Column][]docdomain.JobApplication {
	board := make(map[domain.Column][]docdomain.JobApplication, len(domain.Columns))
	for _, column := range domain.Columns {
		board[column] = []docdomain.JobApplication{}
	}
	for _, app := range s.Applications() {
		column := domain.ColumnOf(app)
		board[column] = append(board[column], app)
	}
	return board
}

func (s *JobSearchService) DueFollowUps() []docdomain.JobApplication {
	return domain.DueFollowUps(s.docs.Snapshot().Applications, s.today())
}
