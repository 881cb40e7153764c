package out

import (
	"context"

	docdomain "switchsprint/internal/modules/document/domain"
	"switchsprint/internal/modules/jobsearch/domain"
)

type DocumentRepository interface {
	Snapshot() docdomain.AppData
	Update(ctx context.Context, fn func(doc *docdomain.AppData) error) (docdomain.AppData, error)
}

// ResumeInspector reads a local resume file.
type ResumeInspector interface {
	Inspect(ctx context.Context, path string) (domain.ResumeInfo, error)
}
