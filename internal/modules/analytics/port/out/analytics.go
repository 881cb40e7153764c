package out

import (
	"context"

	"switchsprint/internal/modules/analytics/domain"
	docdomain "switchsprint/internal/modules/document/domain"
)

type DocumentSource interface {
	Snapshot() docdomain.AppData
}

// HistoryProjector keeps a queryable copy of session rows.
type HistoryProjector interface {
	Reset(ctx context.Context) error
	UpsertSessions(ctx context.Context, rows []domain.HistoryRow) error
	Range(ctx context.Context, from, to string) ([]domain.HistoryRow, error)
	Weekly(ctx context.Context, limit int) ([]domain.WeekTotal, error)
}

// ReportRenderer produces the spreadsheet report.
type ReportRenderer interface {
	Render(doc docdomain.AppData) ([]byte, error)
}

type ReportStore interface {
	Write(ctx context.Context, path string, payload []byte) error
}
