package out

import (
	"context"
	"fmt"
	"os"
	"strings"

	"switchsprint/internal/modules/study/domain"
	studyout "switchsprint/internal/modules/study/port/out"
	"switchsprint/internal/platform/fsutil"
	"switchsprint/internal/platform/markdown"
)

const reportBlock = "completed-days"

type MarkdownReportWriter struct{}

func NewMarkdownReportWriter() studyout.ReportWriter {
	return MarkdownReportWriter{}
}

func (MarkdownReportWriter) WriteReport(_ context.Context, path string, report domain.Report) error {
	note := markdown.Note{Meta: map[string]any{}, Body: "# SwitchSprint Study Report\n\n"}
	if content, err := os.ReadFile(path); err == nil {
		existing, parseErr := markdown.Parse(string(content))
		if parseErr != nil {
			return fmt.Errorf("parse existing study report: %w", parseErr)
		}
		note = existing
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read study report: %w", err)
	}

	note.Merge(map[string]any{
		"generated_on":   report.GeneratedOn,
		"completed_days": len(report.CompletedDays),
		"total_days":     report.TotalDays,
	})
	note.ReplaceBlock(reportBlock, renderDays(report))

	rendered, err := note.Render()
	if err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(path, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write study report: %w", err)
	}
	return nil
}

func renderDays(report domain.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Days Completed: %d / %d\n", len(report.CompletedDays), report.TotalDays)
	for _, day := range report.CompletedDays {
		custom := "None"
		if len(day.CustomTopics) > 0 {
			custom = strings.Join(day.CustomTopics, ", ")
		}
		fmt.Fprintf(&b, "\n## Day %d\n\n", day.DayNumber)
		fmt.Fprintf(&b, "- SQL: %s\n- Python: %s\n- Spark: %s\n- Custom Topics: %s\n", day.TopicSQL, day.TopicPython, day.TopicSpark, custom)
		if day.CompletedDate != nil {
			fmt.Fprintf(&b, "- Completed: %s\n", *day.CompletedDate)
		}
		if strings.TrimSpace(day.Notes) != "" {
			fmt.Fprintf(&b, "\n%s\n", strings.TrimSpace(day.Notes))
		}
	}
	return b.String()
}

type FilePlanReader struct{}

func NewFilePlanReader() studyout.PlanReader {
	return FilePlanReader{}
}

func (FilePlanReader) ReadPlan(_ context.Context, path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read study plan: %w", err)
	}
	return raw, nil
}
