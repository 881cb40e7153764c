package in

import (
	"context"

	timerdto "switchsprint/internal/modules/timer/dto"
	timerin "switchsprint/internal/modules/timer/port/in"
)

type TUIHandler struct {
	usecase timerin.Usecase
}

func NewTUIHandler(usecase timerin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Active(ctx context.Context) (timerdto.StatusOutput, error) {
	return h.usecase.Active(ctx)
}

func (h TUIHandler) Toggle(ctx context.Context, itemID string) (timerdto.StatusOutput, error) {
	return h.usecase.Toggle(ctx, itemID)
}

func (h TUIHandler) Stop(ctx context.Context) error {
	return h.usecase.Stop(ctx)
}

func (h TUIHandler) Subscribe(fn func(timerdto.EventOutput)) {
	h.usecase.Subscribe(fn)
}
