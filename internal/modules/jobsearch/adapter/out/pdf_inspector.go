package out

import (
	"context"
	"fmt"
	"math"
	"strings"

	"rsc.io/pdf"
	"switchsprint/internal/modules/jobsearch/domain"
	jobsearchout "switchsprint/internal/modules/jobsearch/port/out"
)

type LocalPDFInspector struct{}

func NewLocalPDFInspector() jobsearchout.ResumeInspector {
	return &LocalPDFInspector{}
}

// Inspect counts pages and words. FirstLine is the first non-blank text line,
// usually the candidate's name.
func (r *LocalPDFInspector) Inspect(_ context.Context, path string) (domain.ResumeInfo, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return domain.ResumeInfo{}, fmt.Errorf("open pdf: %w", err)
	}
	info := domain.ResumeInfo{Path: path, Pages: doc.NumPage()}
	for n := 1; n <= info.Pages; n++ {
		page := doc.Page(n)
		if page.V.IsNull() {
			continue
		}
		text := pageText(page.Content().Text)
		if info.FirstLine == "" {
			for _, line := range strings.Split(text, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					info.FirstLine = line
					break
				}
			}
		}
		info.Words += len(strings.Fields(text))
	}
	return info, nil
}

// pageText joins glyph runs, starting a new line whenever the baseline moves.
func pageText(runs []pdf.Text) string {
	var b strings.Builder
	lastY := math.NaN()
	for _, run := range runs {
		if !math.IsNaN(lastY) && math.Abs(run.Y-lastY) > 1 {
			b.WriteByte('\n')
		}
		lastY = run.Y
		b.WriteString(run.S)
	}
	return b.String()
}
