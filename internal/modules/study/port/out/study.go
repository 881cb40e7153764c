package out

import (
	"context"

	docdomain "switchsprint/internal/modules/document/domain"
	"switchsprint/internal/modules/study/domain"
)

type DocumentRepository interface {
	Snapshot() docdomain.AppData
	Update(ctx context.Context, fn func(doc *docdomain.AppData) error) (docdomain.AppData, error)
}

// ReportWriter renders a study report to path, keeping any text the user
// added outside the generated section.
type ReportWriter interface {
	WriteReport(ctx context.Context, path string, report domain.Report) error
}

// PlanReader loads a plan file chosen by the user.
type PlanReader interface {
	ReadPlan(ctx context.Context, path string) ([]byte, error)
}
