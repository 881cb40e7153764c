package in

import (
	"context"

	sessiondto "switchsprint/internal/modules/session/dto"
	sessionin "switchsprint/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Today(ctx context.Context) (sessiondto.SessionOutput, error) {
	return h.usecase.Today(ctx)
}

func (h CLIHandler) Start(ctx context.Context) (sessiondto.SessionOutput, error) {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) End(ctx context.Context) (sessiondto.SessionOutput, error) {
	return h.usecase.End(ctx)
}

func (h CLIHandler) Wrap(ctx context.Context, input sessiondto.SessionDetailsInput) (sessiondto.SessionOutput, error) {
	return h.usecase.UpdateDetails(ctx, input)
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]sessiondto.SessionOutput, error) {
	return h.usecase.History(ctx, limit)
}

func (h CLIHandler) UpdateItem(ctx context.Context, input sessiondto.ChecklistPatchInput) (sessiondto.ChecklistUpdateOutput, error) {
	return h.usecase.UpdateChecklistItem(ctx, input)
}

func (h CLIHandler) AddItem(ctx context.Context, label string, minutes int) (sessiondto.ChecklistItemOutput, error) {
	return h.usecase.AddChecklistItem(ctx, sessiondto.AddItemInput{Label: label, Minutes: minutes})
}

func (h CLIHandler) RemoveItem(ctx context.Context, itemID string) error {
	return h.usecase.RemoveChecklistItem(ctx, itemID)
}
