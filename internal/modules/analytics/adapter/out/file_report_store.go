package out

import (
	"context"
	"fmt"

	analyticsout "switchsprint/internal/modules/analytics/port/out"
	"switchsprint/internal/platform/fsutil"
)

type FileReportStore struct{}

func NewFileReportStore() analyticsout.ReportStore {
	return FileReportStore{}
}

func (FileReportStore) Write(_ context.Context, path string, payload []byte) error {
	if err := fsutil.WriteFileAtomic(path, payload, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
