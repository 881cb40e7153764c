package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docdomain "switchsprint/internal/modules/document/domain"
	apperrors "switchsprint/internal/platform/errors"
)

var now = time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

func TestBuildApplicationSchedulesFollowUp(t *testing.T) {
	t.Parallel()
	app, err := NewApplication{Company: " Acme ", RoleTitle: "Data Engineer", DateApplied: "2026-05-01"}.Build("a1", now)
	require.NoError(t, err)
	assert.Equal(t, "Acme", app.Company)
	assert.Equal(t, docdomain.StatusApplied, app.Status)
	assert.Equal(t, "LinkedIn", app.Source)
	assert.Equal(t, "2026-05-01", app.LastActionDate)
	require.NotNil(t, app.NextFollowUpDate)
	assert.Equal(t, "2026-05-04", *app.NextFollowUpDate)
	assert.Equal(t, docdomain.FollowUpPending, app.FollowUpStatus)

	app, err = NewApplication{Company: "Acme", RoleTitle: "DE"}.Build("a2", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-10", app.DateApplied)
	assert.Equal(t, "2026-05-13", *app.NextFollowUpDate)
}

func TestBuildApplicationRejectsBadInput(t *testing.T) {
	t.Parallel()
	cases := map[string]NewApplication{
		"no company": {RoleTitle: "DE"},
		"no role":    {Company: "Acme"},
		"bad status": {Company: "Acme", RoleTitle: "DE", Status: "Ghosted"},
		"bad date":   {Company: "Acme", RoleTitle: "DE", DateApplied: "May 1"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := input.Build("x", now)
			require.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}

func TestApplicationPatchStampsActions(t *testing.T) {
	t.Parallel()
	app, err := NewApplication{Company: "Acme", RoleTitle: "DE", DateApplied: "2026-05-01"}.Build("a1", now)
	require.NoError(t, err)

	notes := "call back"
	ApplicationPatch{Notes: &notes}.Apply(&app, "2026-05-09")
	assert.Equal(t, "2026-05-01", app.LastActionDate)

	status := docdomain.StatusTechRound
	ApplicationPatch{Status: &status}.Apply(&app, "2026-05-09")
	assert.Equal(t, "2026-05-09", app.LastActionDate)
	assert.Equal(t, ColumnInterview, ColumnOf(app))

	done := docdomain.FollowUpDone
	none := ""
	ApplicationPatch{FollowUpStatus: &done, NextFollowUpDate: &none}.Apply(&app, "2026-05-10")
	assert.Equal(t, "2026-05-10", app.LastActionDate)
	assert.Nil(t, app.NextFollowUpDate)
}

func TestApplicationPatchValidate(t *testing.T) {
	t.Parallel()
	bad := docdomain.ApplicationStatus("Maybe")
	require.Error(t, ApplicationPatch{Status: &bad}.Validate())
	date := "tomorrow"
	require.Error(t, ApplicationPatch{NextFollowUpDate: &date}.Validate())
	empty := ""
	require.NoError(t, ApplicationPatch{NextFollowUpDate: &empty}.Validate())
	assert.True(t, ApplicationPatch{}.Empty())
}

func TestColumnOf(t *testing.T) {
	t.Parallel()
	cases := []struct {
		status docdomain.ApplicationStatus
		notes  string
		want   Column
	}{
		{docdomain.StatusApplied, "draft #todo", ColumnToApply},
		{docdomain.StatusApplied, "", ColumnApplied},
		{docdomain.StatusHRScreen, "", ColumnInterview},
		{docdomain.StatusAssignment, "", ColumnInterview},
		{docdomain.StatusJoined, "", ColumnOffer},
		{docdomain.StatusRejected, "", ColumnRejected},
	}
	for _, tc := range cases {
		got := ColumnOf(docdomain.JobApplication{Status: tc.status, Notes: tc.notes})
		assert.Equal(t, tc.want, got, string(tc.status))
	}
}

func TestDueFollowUps(t *testing.T) {
	t.Parallel()
	apps := []docdomain.JobApplication{
		{ID: "late", FollowUpStatus: docdomain.FollowUpPending, NextFollowUpDate: docdomain.StringPtr("2026-05-08")},
		{ID: "future", FollowUpStatus: docdomain.FollowUpPending, NextFollowUpDate: docdomain.StringPtr("2026-05-11")},
		{ID: "done", FollowUpStatus: docdomain.FollowUpDone, NextFollowUpDate: docdomain.StringPtr("2026-05-01")},
		{ID: "today", FollowUpStatus: docdomain.FollowUpPending, NextFollowUpDate: docdomain.StringPtr("2026-05-10")},
		{ID: "none", FollowUpStatus: docdomain.FollowUpPending},
		{ID: "oldest", FollowUpStatus: docdomain.FollowUpPending, NextFollowUpDate: docdomain.StringPtr("2026-05-02")},
	}
	due := DueFollowUps(apps, "2026-05-10")
	ids := make([]string, 0, len(due))
	for _, app := range due {
		ids = append(ids, app.ID)
	}
	assert.Equal(t, []string{"oldest", "late", "today"}, ids)
}

func TestContactBuildPatchAndFilter(t *testing.T) {
	t.Parallel()
	_, err := NewContact{Name: "Ana"}.Build("c0", now)
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)

	contact, err := NewContact{Name: "Ana Diaz", Company: "Globex"}.Build("c1", now)
	require.NoError(t, err)
	assert.Equal(t, docdomain.ContactNew, contact.Status)
	assert.Equal(t, "2026-05-10T09:30:00Z", *contact.LastContactDate)

	later := now.Add(48 * time.Hour)
	status := docdomain.ContactResponded
	ContactPatch{Status: &status}.Apply(&contact, later)
	assert.Equal(t, "2026-05-12T09:30:00Z", *contact.LastContactDate)

	other := docdomain.Contact{Name: "Bo", Company: "Initech"}
	assert.Len(t, FilterContacts([]docdomain.Contact{contact, other}, "GLOB"), 1)
	assert.Len(t, FilterContacts([]docdomain.Contact{contact, other}, "bo"), 1)
	assert.Len(t, FilterContacts([]docdomain.Contact{contact, other}, ""), 2)
}

func TestOutreachEmail(t *testing.T) {
	t.Parallel()
	email := OutreachEmail("Ana", "Globex", "streaming", "data engineer")
	assert.True(t, strings.HasPrefix(email, "Hi Ana,"))
	assert.Contains(t, email, "Globex's work on streaming")
	assert.Contains(t, email, "As a data engineer myself")
}

func TestResumeBuild(t *testing.T) {
	t.Parallel()
	resume, err := NewResume{Name: "Data CV"}.Build("r1", now)
	require.NoError(t, err)
	assert.Equal(t, docdomain.ResumePDF, resume.Type)

	_, err = NewResume{Name: "CV", Type: "Pages"}.Build("r2", now)
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestResourceCategoriesAndLinks(t *testing.T) {
	t.Parallel()
	categories := docdomain.DefaultResources()
	cat, err := NewCategory(categories, "SQL Practice")
	require.NoError(t, err)
	assert.Equal(t, "sql-practice", cat.ID)
	categories = append(categories, cat)

	dup, err := NewCategory(categories, "SQL practice!")
	require.NoError(t, err)
	assert.Equal(t, "sql-practice-2", dup.ID)

	link := NewLink("l1", " ", "")
	assert.Equal(t, DefaultLinkTitle, link.Title)
	assert.Equal(t, DefaultLinkURL, link.URL)

	categories[len(categories)-1].Links = append(categories[len(categories)-1].Links, link)
	c, l, err := FindLink(categories, "sql-practice", "l1")
	require.NoError(t, err)
	checked := true
	LinkPatch{Checked: &checked}.Apply(&categories[c].Links[l])

	done, total := CheckedRatio(categories)
	assert.Equal(t, 1, done)
	assert.Greater(t, total, 1)

	_, _, err = FindLink(categories, "sql-practice", "missing")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
