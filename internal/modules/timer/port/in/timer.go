package in

import (
	"context"

	"switchsprint/internal/modules/timer/dto"
)

type Usecase interface {
	Active(ctx context.Context) (dto.StatusOutput, error)
	Toggle(ctx context.Context, itemID string) (dto.StatusOutput, error)
	Stop(ctx context.Context) error
	Subscribe(fn func(dto.EventOutput))
}
