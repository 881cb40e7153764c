package out

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"switchsprint/internal/modules/analytics/domain"
	analyticsout "switchsprint/internal/modules/analytics/port/out"
	docdomain "switchsprint/internal/modules/document/domain"
)

const (
	sheetSessions     = "Sessions"
	sheetApplications = "Applications"
	sheetStudy        = "Study Plan"
)

var (
	sessionHeader     = []any{"Date", "Start Time", "End Time", "Duration (Min)", "Tasks Completed", "Total Tasks", "Applications Added", "Notes"}
	applicationHeader = []any{"Company", "Role", "Status", "Date Applied", "Link", "Notes"}
	studyHeader       = []any{"Day", "Completed", "Practice Task", "SQL Topic", "Python Topic", "Notes"}
)

// XLSXReportRenderer writes the Sessions, Applications and Study Plan sheets.
type XLSXReportRenderer struct{}

func NewXLSXReportRenderer() analyticsout.ReportRenderer {
	return XLSXReportRenderer{}
}

func (XLSXReportRenderer) Render(doc docdomain.AppData) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetSessions); err != nil {
		return nil, fmt.Errorf("name sessions sheet: %w", err)
	}
	for _, name := range []string{sheetApplications, sheetStudy} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create %s sheet: %w", name, err)
		}
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	sessions := make([][]any, 0, len(doc.Sessions))
	for _, session := range doc.Sessions.Sorted() {
		sessions = append(sessions, []any{
			session.Date,
			clockTime(session.SessionStart),
			clockTime(session.SessionEnd),
			domain.Minutes(session.TotalTimeSpentSeconds),
			session.CompletedCount(),
			len(session.Checklist),
			session.ApplicationsCount,
			session.Notes,
		})
	}
	if err := writeSheet(f, sheetSessions, header, sessionHeader, sessions); err != nil {
		return nil, err
	}

	apps := make([][]any, 0, len(doc.Applications))
	for _, app := range doc.Applications {
		apps = append(apps, []any{app.Company, app.RoleTitle, string(app.Status), app.DateApplied, app.JobLink, app.Notes})
	}
	if err := writeSheet(f, sheetApplications, header, applicationHeader, apps); err != nil {
		return nil, err
	}

	numbers := make([]int, 0, len(doc.StudyProgress))
	for n := range doc.StudyProgress {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	study := make([][]any, 0, len(numbers))
	for _, n := range numbers {
		day := doc.StudyProgress[n]
		completed := "No"
		if day.Completed {
			completed = "Yes"
		}
		study = append(study, []any{day.DayNumber, completed, day.PracticeTask, day.TopicSQL, day.TopicPython, day.Notes})
	}
	if err := writeSheet(f, sheetStudy, header, studyHeader, study); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, style int, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// clockTime renders a session boundary as local wall time, blank when unset.
func clockTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format("15:04:05")
}
