package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	docdomain "switchsprint/internal/modules/document/domain"
	"switchsprint/internal/modules/study/domain"
	studydto "switchsprint/internal/modules/study/dto"
	studyin "switchsprint/internal/modules/study/port/in"
	"switchsprint/internal/modules/study/service"
	apperrors "switchsprint/internal/platform/errors"
)

type Interactor struct {
	svc *service.StudyService
}

func NewInteractor(svc *service.StudyService) studyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Plan(_ context.Context) (studydto.PlanOutput, error) {
	view := i.svc.Plan()
	out := studydto.PlanOutput{
		CurrentDay: view.CurrentDay,
		FocusedDay: view.FocusedDay,
		Completed:  view.Completed,
		Days:       make([]studydto.DayOutput, 0, len(view.Days)),
	}
	if view.StartDate != nil {
		out.StartDate = *view.StartDate
	}
	for _, day := range view.Days {
		dayOut := toDayOutput(day.Day)
		dayOut.Locked = day.Locked
		dayOut.Date = day.Date
		out.Days = append(out.Days, dayOut)
	}
	return out, nil
}

func (i *Interactor) StartPlan(ctx context.Context, restart bool) (string, error) {
	return i.svc.StartPlan(ctx, restart)
}

func (i *Interactor) UpdateDay(ctx context.Context, input studydto.UpdateDayInput) (studydto.DayOutput, error) {
	if input.DayNumber < 1 {
		return studydto.DayOutput{}, fmt.Errorf("%w: day number is required", apperrors.ErrInvalidInput)
	}
	day, err := i.svc.UpdateDay(ctx, input.DayNumber, domain.DayPatch{
		Completed:    input.Completed,
		Notes:        input.Notes,
		CustomTopics: input.CustomTopics,
		AddTopic:     input.AddTopic,
		RemoveTopic:  input.RemoveTopic,
	})
	if err != nil {
		return studydto.DayOutput{}, err
	}
	return toDayOutput(day), nil
}

func (i *Interactor) Focus(ctx context.Context, dayNumber int) (int, error) {
	return i.svc.Focus(ctx, dayNumber)
}

func (i *Interactor) Advance(ctx context.Context) (int, error) {
	return i.svc.Advance(ctx)
}

func (i *Interactor) Import(ctx context.Context, path string) (int, error) {
	if path == "" {
		return 0, fmt.Errorf("%w: plan file is required", apperrors.ErrInvalidInput)
	}
	return i.svc.ImportFile(ctx, path)
}

func (i *Interactor) Export(ctx context.Context, path string) (studydto.ReportOutput, error) {
	if path == "" {
		path = domain.ReportFileName
	} else if filepath.Ext(path) == "" {
		path = filepath.Join(path, domain.ReportFileName)
	}
	report, err := i.svc.ExportReport(ctx, path)
	if err != nil {
		return studydto.ReportOutput{}, err
	}
	return studydto.ReportOutput{Path: path, CompletedDays: len(report.CompletedDays), TotalDays: report.TotalDays}, nil
}

func (i *Interactor) ReminderURL(_ context.Context) (string, error) {
	return i.svc.ReminderURL(), nil
}

func toDayOutput(day docdomain.StudyDay) studydto.DayOutput {
	out := studydto.DayOutput{
		DayNumber:    day.DayNumber,
		TopicSQL:     day.TopicSQL,
		TopicPython:  day.TopicPython,
		TopicSpark:   day.TopicSpark,
		PracticeTask: day.PracticeTask,
		Completed:    day.Completed,
		Notes:        day.Notes,
		CustomTopics: append([]string(nil), day.CustomTopics...),
	}
	if day.CompletedDate != nil {
		out.CompletedDate = *day.CompletedDate
	}
	return out
}
