package in

import (
	"context"

	timerdto "switchsprint/internal/modules/timer/dto"
	timerin "switchsprint/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, itemID string) (timerdto.StatusOutput, error) {
	return h.usecase.Toggle(ctx, itemID)
}

func (h CLIHandler) Stop(ctx context.Context) error {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Subscribe(fn func(timerdto.EventOutput)) {
	h.usecase.Subscribe(fn)
}
