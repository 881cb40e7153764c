package in

import (
	"context"

	"switchsprint/internal/modules/study/dto"
)

type Usecase interface {
	Plan(ctx context.Context) (dto.PlanOutput, error)
	StartPlan(ctx context.Context, restart bool) (string, error)
	UpdateDay(ctx context.Context, input dto.UpdateDayInput) (dto.DayOutput, error)
	Focus(ctx context.Context, dayNumber int) (int, error)
	Advance(ctx context.Context) (int, error)
	Import(ctx context.Context, path string) (int, error)
	Export(ctx context.Context, path string) (dto.ReportOutput, error)
	ReminderURL(ctx context.Context) (string, error)
}
