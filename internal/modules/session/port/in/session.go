package in

import (
	"context"

	"switchsprint/internal/modules/session/dto"
)

type Usecase interface {
	Today(ctx context.Context) (dto.SessionOutput, error)
	Start(ctx context.Context) (dto.SessionOutput, error)
	End(ctx context.Context) (dto.SessionOutput, error)
	UpdateChecklistItem(ctx context.Context, input dto.ChecklistPatchInput) (dto.ChecklistUpdateOutput, error)
	AddChecklistItem(ctx context.Context, input dto.AddItemInput) (dto.ChecklistItemOutput, error)
	RemoveChecklistItem(ctx context.Context, itemID string) error
	UpdateDetails(ctx context.Context, input dto.SessionDetailsInput) (dto.SessionOutput, error)
	EnsureToday(ctx context.Context) (dto.SessionOutput, error)
	CreditItem(ctx context.Context, input dto.CreditInput) (dto.ChecklistItemOutput, error)
	History(ctx context.Context, limit int) ([]dto.SessionOutput, error)
}
