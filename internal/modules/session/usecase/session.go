package usecase

import (
	"context"
	"fmt"
	"strings"

	docdomain "switchsprint/internal/modules/document/domain"
	"switchsprint/internal/modules/session/domain"
	sessiondto "switchsprint/internal/modules/session/dto"
	sessionin "switchsprint/internal/modules/session/port/in"
	"switchsprint/internal/modules/session/service"
	apperrors "switchsprint/internal/platform/errors"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Today(_ context.Context) (sessiondto.SessionOutput, error) {
	session, state, ok := i.svc.GetTodaySession()
	if !ok {
		return sessiondto.SessionOutput{Date: i.svc.Today(), State: string(state)}, nil
	}
	return toOutput(session, state), nil
}

func (i *Interactor) Start(ctx context.Context) (sessiondto.SessionOutput, error) {
	session, err := i.svc.StartSession(ctx)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toOutput(session, domain.StateActive), nil
}

func (i *Interactor) End(ctx context.Context) (sessiondto.SessionOutput, error) {
	session, ok, err := i.svc.EndSession(ctx)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	if !ok {
		return sessiondto.SessionOutput{Date: i.svc.Today(), State: string(domain.StateNonExistent)}, nil
	}
	return toOutput(session, domain.StateEnded), nil
}

func (i *Interactor) UpdateChecklistItem(ctx context.Context, input sessiondto.ChecklistPatchInput) (sessiondto.ChecklistUpdateOutput, error) {
	if strings.TrimSpace(input.ItemID) == "" {
		return sessiondto.ChecklistUpdateOutput{}, fmt.Errorf("%w: item id is required", apperrors.ErrInvalidInput)
	}
	patch := domain.ChecklistPatch{
		Label:              input.Label,
		DefaultTimeMinutes: input.DefaultTimeMinutes,
		TimeSpentSeconds:   input.TimeSpentSeconds,
		Completed:          input.Completed,
		Notes:              input.Notes,
	}
	if patch.Empty() {
		return sessiondto.ChecklistUpdateOutput{}, fmt.Errorf("%w: nothing to update", apperrors.ErrInvalidInput)
	}
	session, found, err := i.svc.UpdateChecklistItem(ctx, input.ItemID, patch)
	if err != nil {
		return sessiondto.ChecklistUpdateOutput{}, err
	}
	if !found {
		return sessiondto.ChecklistUpdateOutput{Found: false}, nil
	}
	_, state, _ := i.svc.GetTodaySession()
	return sessiondto.ChecklistUpdateOutput{Session: toOutput(session, state), Found: true}, nil
}

func (i *Interactor) AddChecklistItem(ctx context.Context, input sessiondto.AddItemInput) (sessiondto.ChecklistItemOutput, error) {
	item, err := i.svc.AddChecklistItem(ctx, input.Label, input.Minutes)
	if err != nil {
		return sessiondto.ChecklistItemOutput{}, err
	}
	return toItemOutput(item), nil
}

func (i *Interactor) RemoveChecklistItem(ctx context.Context, itemID string) error {
	return i.svc.RemoveChecklistItem(ctx, itemID)
}

func (i *Interactor) UpdateDetails(ctx context.Context, input sessiondto.SessionDetailsInput) (sessiondto.SessionOutput, error) {
	session, err := i.svc.UpdateSessionDetails(ctx, domain.SessionPatch{
		Notes:                  input.Notes,
		ApplicationsCount:      input.ApplicationsCount,
		RecruiterMessagesCount: input.RecruiterMessagesCount,
	})
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	_, state, _ := i.svc.GetTodaySession()
	return toOutput(session, state), nil
}

func (i *Interactor) EnsureToday(ctx context.Context) (sessiondto.SessionOutput, error) {
	session, err := i.svc.EnsureToday(ctx)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	_, state, _ := i.svc.GetTodaySession()
	return toOutput(session, state), nil
}

func (i *Interactor) CreditItem(ctx context.Context, input sessiondto.CreditInput) (sessiondto.ChecklistItemOutput, error) {
	item, err := i.svc.CreditItem(ctx, input.ItemID, input.Seconds)
	if err != nil {
		return toItemOutput(item), err
	}
	return toItemOutput(item), nil
}

func (i *Interactor) History(_ context.Context, limit int) ([]sessiondto.SessionOutput, error) {
	rows := i.svc.History(limit)
	out := make([]sessiondto.SessionOutput, 0, len(rows))
	for _, row := range rows {
		sessions := docdomain.Sessions{row.Date: row}
		out = append(out, toOutput(row, domain.StateOf(sessions, row.Date)))
	}
	return out, nil
}

func toOutput(session docdomain.DailySession, state domain.State) sessiondto.SessionOutput {
	items := make([]sessiondto.ChecklistItemOutput, 0, len(session.Checklist))
	for _, item := range session.Checklist {
		items = append(items, toItemOutput(item))
	}
	return sessiondto.SessionOutput{
		Date:                   session.Date,
		State:                  string(state),
		SessionStart:           session.SessionStart,
		SessionEnd:             session.SessionEnd,
		TotalTimeSpentSeconds:  session.TotalTimeSpentSeconds,
		Checklist:              items,
		CompletedItems:         session.CompletedCount(),
		ApplicationsCount:      session.ApplicationsCount,
		RecruiterMessagesCount: session.RecruiterMessagesCount,
		Notes:                  session.Notes,
	}
}

func toItemOutput(item docdomain.ChecklistItem) sessiondto.ChecklistItemOutput {
	return sessiondto.ChecklistItemOutput{
		ID:                 item.ID,
		Label:              item.Label,
		DefaultTimeMinutes: item.DefaultTimeMinutes,
		TimeSpentSeconds:   item.TimeSpentSeconds,
		IsCustom:           item.IsCustom,
		Completed:          item.Completed,
		Notes:              item.Notes,
		Progress:           item.Progress(),
	}
}
