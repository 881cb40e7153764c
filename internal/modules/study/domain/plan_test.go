package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docdomain "switchsprint/internal/modules/document/domain"
	apperrors "switchsprint/internal/platform/errors"
)

func TestLockedFollowsPreviousDay(t *testing.T) {
	t.Parallel()
	progress := docdomain.StudyPlanMap(docdomain.DefaultStudyPlan())
	assert.False(t, Locked(progress, 1))
	assert.True(t, Locked(progress, 2))

	day := progress[1]
	day.Completed = true
	progress[1] = day
	assert.False(t, Locked(progress, 2))
	assert.True(t, Locked(progress, 3))

	delete(progress, 5)
	assert.True(t, Locked(progress, 6))
}

func TestCurrentDay(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 5, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, CurrentDay(nil, now))
	assert.Equal(t, 1, CurrentDay(docdomain.StringPtr("2026-03-05"), now))
	assert.Equal(t, 4, CurrentDay(docdomain.StringPtr("2026-03-02"), now))
	assert.Equal(t, 4, CurrentDay(docdomain.StringPtr("2026-03-02T10:15:00.000Z"), now))
	assert.Equal(t, 14, CurrentDay(docdomain.StringPtr("2026-01-01"), now))
	assert.Equal(t, 1, CurrentDay(docdomain.StringPtr("2026-04-01"), now))
	assert.Equal(t, 0, CurrentDay(docdomain.StringPtr("garbage"), now))
	assert.Equal(t, "2026-03-04", DayDate(docdomain.StringPtr("2026-03-02"), 3, time.UTC))
}

func TestDayPatchApply(t *testing.T) {
	t.Parallel()
	day := docdomain.StudyDay{DayNumber: 2}
	done := true
	DayPatch{Completed: &done, AddTopic: " CTEs "}.Apply(&day, "2026-03-02")
	require.NotNil(t, day.CompletedDate)
	assert.Equal(t, "2026-03-02", *day.CompletedDate)
	assert.Equal(t, []string{"CTEs"}, day.CustomTopics)

	DayPatch{AddTopic: "CTEs"}.Apply(&day, "2026-03-02")
	DayPatch{AddTopic: "Windows"}.Apply(&day, "2026-03-02")
	DayPatch{RemoveTopic: "CTEs"}.Apply(&day, "2026-03-02")
	assert.Equal(t, []string{"Windows"}, day.CustomTopics)

	reopen := false
	DayPatch{Completed: &reopen}.Apply(&day, "2026-03-03")
	assert.False(t, day.Completed)
	assert.Nil(t, day.CompletedDate)
}

func TestValidateImport(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, ValidateImport(nil), apperrors.ErrInvalidImport)
	require.ErrorIs(t, ValidateImport([]docdomain.StudyDay{{DayNumber: 0}}), apperrors.ErrInvalidImport)
	require.NoError(t, ValidateImport(docdomain.DefaultStudyPlan()))
}

func TestReminderURL(t *testing.T) {
	t.Parallel()
	link := ReminderURL(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	assert.True(t, strings.HasPrefix(link, "https://calendar.google.com/calendar/render?"))
	assert.Contains(t, link, "dates=20260302T213000Z%2F20260302T223000Z")
	assert.Contains(t, link, "FREQ%3DDAILY")
}
