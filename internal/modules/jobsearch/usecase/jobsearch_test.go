package usecase_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	documentout "switchsprint/internal/modules/document/adapter/out"
	documentservice "switchsprint/internal/modules/document/service"
	"switchsprint/internal/modules/jobsearch/domain"
	jobsearchdto "switchsprint/internal/modules/jobsearch/dto"
	jobsearchin "switchsprint/internal/modules/jobsearch/port/in"
	"switchsprint/internal/modules/jobsearch/service"
	"switchsprint/internal/modules/jobsearch/usecase"
	apperrors "switchsprint/internal/platform/errors"
)

type fixedClock struct{ now time.Time }

func (f *fixedClock) Now() time.Time { return f.now }

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

type fakeInspector struct{ paths []string }

func (f *fakeInspector) Inspect(_ context.Context, path string) (domain.ResumeInfo, error) {
	f.paths = append(f.paths, path)
	return domain.ResumeInfo{Path: path, Pages: 2, Words: 480, FirstLine: "Ana Diaz"}, nil
}

type harness struct {
	uc        jobsearchin.Usecase
	docs      *documentservice.DocumentService
	clock     *fixedClock
	inspector *fakeInspector
	statePath string
}

func newHarness(t *testing.T) harness {
	t.Helper()
	statePath := filepath.Join(t.TempDir(), "switch-sprint-data-v1.json")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	docs := documentservice.NewDocumentService(documentout.NewFileDocumentStore(statePath), logger, nil)
	_, err := docs.Load(context.Background())
	require.NoError(t, err)
	clk := &fixedClock{now: time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC)}
	inspector := &fakeInspector{}
	svc := service.NewJobSearchService(clk, &seqID{}, docs, inspector, logger)
	return harness{uc: usecase.NewInteractor(svc), docs: docs, clock: clk, inspector: inspector, statePath: statePath}
}

func TestApplicationLifecycle(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	app, err := h.uc.AddApplication(ctx, jobsearchdto.ApplicationInput{Company: "Acme", RoleTitle: "Data Engineer", DateApplied: "2026-05-05"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", app.ID)
	assert.Equal(t, "2026-05-08", app.NextFollowUpDate)
	assert.Equal(t, "Applied", app.Column)

	_, err = h.uc.AddApplication(ctx, jobsearchdto.ApplicationInput{Company: "Globex", RoleTitle: "Analyst", Notes: "tailor cv #todo"})
	require.NoError(t, err)

	due, err := h.uc.DueFollowUps(ctx)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "Acme", due[0].Company)

	status := "HR Screen"
	moved, err := h.uc.UpdateApplication(ctx, jobsearchdto.ApplicationPatchInput{ID: app.ID, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "2026-05-10", moved.LastActionDate)
	assert.Equal(t, "Interview", moved.Column)

	done := "Done"
	_, err = h.uc.UpdateApplication(ctx, jobsearchdto.ApplicationPatchInput{ID: app.ID, FollowUpStatus: &done})
	require.NoError(t, err)
	due, err = h.uc.DueFollowUps(ctx)
	require.NoError(t, err)
	assert.Empty(t, due)

	board, err := h.uc.Board(ctx)
	require.NoError(t, err)
	require.Len(t, board, len(domain.Columns))
	assert.Equal(t, "To Apply", board[0].Name)
	assert.Len(t, board[0].Applications, 1)
	assert.Len(t, board[2].Applications, 1)

	list, err := h.uc.ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Globex", list[0].Company)

	require.NoError(t, h.uc.DeleteApplication(ctx, app.ID))
	err = h.uc.DeleteApplication(ctx, app.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Len(t, h.docs.Snapshot().Applications, 1)
}

func TestApplicationValidationLeavesDocumentUntouched(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.uc.AddApplication(ctx, jobsearchdto.ApplicationInput{Company: "Acme", RoleTitle: "DE", Status: "Interviewing"})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)

	app, err := h.uc.AddApplication(ctx, jobsearchdto.ApplicationInput{Company: "Acme", RoleTitle: "DE"})
	require.NoError(t, err)
	bad := "Sideways"
	_, err = h.uc.UpdateApplication(ctx, jobsearchdto.ApplicationPatchInput{ID: app.ID, Status: &bad})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	_, err = h.uc.UpdateApplication(ctx, jobsearchdto.ApplicationPatchInput{ID: app.ID})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	notes := "x"
	_, err = h.uc.UpdateApplication(ctx, jobsearchdto.ApplicationPatchInput{ID: "missing", Notes: &notes})
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	stored := h.docs.Snapshot().Applications
	require.Len(t, stored, 1)
	assert.Equal(t, "Applied", string(stored[0].Status))
}

func TestContactsAndOutreach(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	ana, err := h.uc.AddContact(ctx, jobsearchdto.ContactInput{Name: "Ana Diaz", Company: "Globex", Role: "Manager"})
	require.NoError(t, err)
	assert.Equal(t, "New", ana.Status)
	_, err = h.uc.AddContact(ctx, jobsearchdto.ContactInput{Name: "Bo", Company: "Initech"})
	require.NoError(t, err)

	found, err := h.uc.ListContacts(ctx, "globex")
	require.NoError(t, err)
	require.Len(t, found, 1)

	h.clock.now = h.clock.now.Add(24 * time.Hour)
	status := "Meeting Set"
	updated, err := h.uc.UpdateContact(ctx, jobsearchdto.ContactPatchInput{ID: ana.ID, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "2026-05-11T18:00:00Z", updated.LastContactDate)

	email, err := h.uc.OutreachEmail(ctx, jobsearchdto.OutreachInput{Name: "Ana", Company: "Globex", Topic: "lakehouse", Role: "data engineer"})
	require.NoError(t, err)
	assert.Contains(t, email, "Globex's work on lakehouse")

	require.NoError(t, h.uc.DeleteContact(ctx, ana.ID))
	all, err := h.uc.ListContacts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestResumesAndInspection(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	local, err := h.uc.AddResume(ctx, jobsearchdto.ResumeInput{Name: "Data CV", FileURL: "file:///home/ana/cv.pdf"})
	require.NoError(t, err)
	remote, err := h.uc.AddResume(ctx, jobsearchdto.ResumeInput{Name: "Online", FileURL: "https://docs.example.com/cv", Type: "Google Doc"})
	require.NoError(t, err)

	h.clock.now = h.clock.now.Add(time.Hour)
	info, err := h.uc.InspectResume(ctx, local.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Pages)
	assert.Equal(t, []string{"/home/ana/cv.pdf"}, h.inspector.paths)

	resumes, err := h.uc.ListResumes(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-10T19:00:00Z", resumes[0].LastUpdated)

	_, err = h.uc.InspectResume(ctx, remote.ID)
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	_, err = h.uc.InspectResume(ctx, "missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, h.uc.DeleteResume(ctx, remote.ID))
	assert.Len(t, h.docs.Snapshot().Resumes, 1)
}

func TestResources(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	category, err := h.uc.AddCategory(ctx, "Spark")
	require.NoError(t, err)
	assert.Equal(t, "spark-2", category.ID)

	link, err := h.uc.AddLink(ctx, jobsearchdto.LinkInput{CategoryID: category.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLinkTitle, link.Title)

	title := "Structured Streaming Guide"
	url := "https://spark.apache.org/docs/latest/streaming/"
	checked := true
	updated, err := h.uc.UpdateLink(ctx, jobsearchdto.LinkPatchInput{CategoryID: category.ID, LinkID: link.ID, Title: &title, URL: &url, Checked: &checked})
	require.NoError(t, err)
	assert.True(t, updated.Checked)

	_, err = h.uc.AddLink(ctx, jobsearchdto.LinkInput{CategoryID: "nope"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, h.uc.RemoveLink(ctx, category.ID, link.ID))
	require.ErrorIs(t, h.uc.RemoveLink(ctx, category.ID, link.ID), apperrors.ErrNotFound)
	require.NoError(t, h.uc.RemoveCategory(ctx, "audio"))

	resources, err := h.uc.ListResources(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(resources))
	for _, c := range resources {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"sql", "python", "spark", "spark-2"}, ids)
}

func TestJobSearchStatePersists(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	_, err := h.uc.AddApplication(ctx, jobsearchdto.ApplicationInput{Company: "Acme", RoleTitle: "DE"})
	require.NoError(t, err)

	reloaded := documentservice.NewDocumentService(documentout.NewFileDocumentStore(h.statePath), nil, nil)
	doc, err := reloaded.Load(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Applications, 1)
	assert.Equal(t, "Acme", doc.Applications[0].Company)
}
