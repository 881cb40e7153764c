package in

import (
	"context"

	"switchsprint/internal/modules/analytics/dto"
)

type Usecase interface {
	Summary(ctx context.Context) (dto.SummaryOutput, error)
	Funnel(ctx context.Context) ([]dto.FunnelStageOutput, error)
	Recent(ctx context.Context, limit int) ([]dto.ActivityOutput, error)
	WrapUp(ctx context.Context) (dto.WrapUpOutput, error)
	Reindex(ctx context.Context) (int, error)
	History(ctx context.Context, input dto.HistoryInput) ([]dto.HistoryRowOutput, error)
	Weekly(ctx context.Context, limit int) ([]dto.WeekOutput, error)
	ExportReport(ctx context.Context, dir string) (string, error)
}
