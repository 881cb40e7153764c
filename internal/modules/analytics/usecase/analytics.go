package usecase

import (
	"context"
	"math"

	"switchsprint/internal/modules/analytics/domain"
	analyticsdto "switchsprint/internal/modules/analytics/dto"
	analyticsin "switchsprint/internal/modules/analytics/port/in"
	"switchsprint/internal/modules/analytics/service"
)

type Interactor struct {
	svc *service.AnalyticsService
}

func NewInteractor(svc *service.AnalyticsService) analyticsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Summary(_ context.Context) (analyticsdto.SummaryOutput, error) {
	s := i.svc.Summary()
	return analyticsdto.SummaryOutput{
		TotalSessions:      s.TotalSessions,
		TotalHours:         s.TotalHours,
		TotalApplications:  s.TotalApplications,
		UsefulDays:         s.UsefulDays,
		StudyDaysCompleted: s.StudyDaysCompleted,
		StudyDaysTotal:     s.StudyDaysTotal,
		ResourcesChecked:   s.ResourcesChecked,
		ResourcesTotal:     s.ResourcesTotal,
	}, nil
}

func (i *Interactor) Funnel(_ context.Context) ([]analyticsdto.FunnelStageOutput, error) {
	stages := i.svc.Funnel()
	out := make([]analyticsdto.FunnelStageOutput, 0, len(stages))
	for _, stage := range stages {
		out = append(out, analyticsdto.FunnelStageOutput{
			Status:  string(stage.Status),
			Count:   stage.Count,
			Percent: int(math.Round(stage.Share * 100)),
		})
	}
	return out, nil
}

func (i *Interactor) Recent(_ context.Context, limit int) ([]analyticsdto.ActivityOutput, error) {
	activity := i.svc.Recent(limit)
	out := make([]analyticsdto.ActivityOutput, 0, len(activity))
	for _, a := range activity {
		out = append(out, analyticsdto.ActivityOutput{Date: a.Date, Minutes: a.Minutes, ItemsDone: a.ItemsDone})
	}
	return out, nil
}

func (i *Interactor) WrapUp(_ context.Context) (analyticsdto.WrapUpOutput, error) {
	w := i.svc.WrapUp()
	out := analyticsdto.WrapUpOutput{
		Date:           w.Date,
		Today:          analyticsdto.TotalsOutput(w.Today),
		TasksCompleted: w.TasksCompleted,
		TasksTotal:     w.TasksTotal,
		TopicsCovered:  append([]int(nil), w.TopicsCovered...),
		Weekly:         analyticsdto.TotalsOutput(w.Weekly),
		Lifetime:       analyticsdto.TotalsOutput(w.Lifetime),
	}
	if w.TasksTotal > 0 {
		out.CompletionPercent = int(math.Round(float64(w.TasksCompleted) * 100 / float64(w.TasksTotal)))
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) (int, error) {
	return i.svc.Reindex(ctx)
}

func (i *Interactor) History(ctx context.Context, input analyticsdto.HistoryInput) ([]analyticsdto.HistoryRowOutput, error) {
	rows, err := i.svc.History(ctx, input.From, input.To)
	if err != nil {
		return nil, err
	}
	out := make([]analyticsdto.HistoryRowOutput, 0, len(rows))
	for _, row := range rows {
		out = append(out, analyticsdto.HistoryRowOutput{
			Date:                   row.Date,
			StartedAt:              row.StartedAt,
			EndedAt:                row.EndedAt,
			Minutes:                domain.Minutes(row.TotalSeconds),
			ItemsDone:              row.ItemsDone,
			ItemsTotal:             row.ItemsTotal,
			ApplicationsCount:      row.ApplicationsCount,
			RecruiterMessagesCount: row.RecruiterMessagesCount,
			Notes:                  row.Notes,
		})
	}
	return out, nil
}

func (i *Interactor) Weekly(ctx context.Context, limit int) ([]analyticsdto.WeekOutput, error) {
	weeks, err := i.svc.Weekly(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]analyticsdto.WeekOutput, 0, len(weeks))
	for _, week := range weeks {
		out = append(out, analyticsdto.WeekOutput{
			Week:         week.Week,
			Sessions:     week.Sessions,
			Minutes:      domain.Minutes(week.TotalSeconds),
			Applications: week.Applications,
		})
	}
	return out, nil
}

func (i *Interactor) ExportReport(ctx context.Context, dir string) (string, error) {
	return i.svc.ExportReport(ctx, dir)
}
