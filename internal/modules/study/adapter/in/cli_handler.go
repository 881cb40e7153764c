package in

import (
	"context"

	studydto "switchsprint/internal/modules/study/dto"
	studyin "switchsprint/internal/modules/study/port/in"
)

type CLIHandler struct {
	usecase studyin.Usecase
}

func NewCLIHandler(usecase studyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Plan(ctx context.Context) (studydto.PlanOutput, error) {
	return h.usecase.Plan(ctx)
}

func (h CLIHandler) Start(ctx context.Context, restart bool) (string, error) {
	return h.usecase.StartPlan(ctx, restart)
}

func (h CLIHandler) Update(ctx context.Context, input studydto.UpdateDayInput) (studydto.DayOutput, error) {
	return h.usecase.UpdateDay(ctx, input)
}

func (h CLIHandler) Complete(ctx context.Context, dayNumber int, completed bool) (studydto.DayOutput, error) {
	return h.usecase.UpdateDay(ctx, studydto.UpdateDayInput{DayNumber: dayNumber, Completed: &completed})
}

func (h CLIHandler) Focus(ctx context.Context, dayNumber int) (int, error) {
	return h.usecase.Focus(ctx, dayNumber)
}

func (h CLIHandler) Next(ctx context.Context) (int, error) {
	return h.usecase.Advance(ctx)
}

func (h CLIHandler) Import(ctx context.Context, path string) (int, error) {
	return h.usecase.Import(ctx, path)
}

func (h CLIHandler) Export(ctx context.Context, path string) (studydto.ReportOutput, error) {
	return h.usecase.Export(ctx, path)
}

func (h CLIHandler) Reminder(ctx context.Context) (string, error) {
	return h.usecase.ReminderURL(ctx)
}
