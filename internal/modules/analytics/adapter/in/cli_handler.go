package in

import (
	"context"

	analyticsdto "switchsprint/internal/modules/analytics/dto"
	analyticsin "switchsprint/internal/modules/analytics/port/in"
)

type CLIHandler struct {
	usecase analyticsin.Usecase
}

func NewCLIHandler(usecase analyticsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Summary(ctx context.Context) (analyticsdto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}

func (h CLIHandler) Funnel(ctx context.Context) ([]analyticsdto.FunnelStageOutput, error) {
	return h.usecase.Funnel(ctx)
}

func (h CLIHandler) Recent(ctx context.Context, limit int) ([]analyticsdto.ActivityOutput, error) {
	return h.usecase.Recent(ctx, limit)
}

func (h CLIHandler) WrapUp(ctx context.Context) (analyticsdto.WrapUpOutput, error) {
	return h.usecase.WrapUp(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) (int, error) {
	return h.usecase.Reindex(ctx)
}

func (h CLIHandler) History(ctx context.Context, from, to string) ([]analyticsdto.HistoryRowOutput, error) {
	return h.usecase.History(ctx, analyticsdto.HistoryInput{From: from, To: to})
}

func (h CLIHandler) Weekly(ctx context.Context, limit int) ([]analyticsdto.WeekOutput, error) {
	return h.usecase.Weekly(ctx, limit)
}

func (h CLIHandler) Export(ctx context.Context, dir string) (string, error) {
	return h.usecase.ExportReport(ctx, dir)
}
