package usecase

import (
	"context"
	"fmt"
	"strings"

	"switchsprint/internal/modules/timer/domain"
	timerdto "switchsprint/internal/modules/timer/dto"
	timerin "switchsprint/internal/modules/timer/port/in"
	"switchsprint/internal/modules/timer/service"
	apperrors "switchsprint/internal/platform/errors"
)

type Interactor struct {
	engine *service.Engine
}

func NewInteractor(engine *service.Engine) timerin.Usecase {
	return &Interactor{engine: engine}
}

func (i *Interactor) Active(_ context.Context) (timerdto.StatusOutput, error) {
	return toStatus(i.engine.Active()), nil
}

func (i *Interactor) Toggle(ctx context.Context, itemID string) (timerdto.StatusOutput, error) {
	if strings.TrimSpace(itemID) == "" {
		return timerdto.StatusOutput{}, fmt.Errorf("%w: item id is required", apperrors.ErrInvalidInput)
	}
	status, err := i.engine.Toggle(ctx, itemID)
	return toStatus(status), err
}

func (i *Interactor) Stop(ctx context.Context) error {
	return i.engine.Stop(ctx)
}

func (i *Interactor) Subscribe(fn func(timerdto.EventOutput)) {
	i.engine.OnEvent(func(event domain.Event) {
		fn(timerdto.EventOutput{
			Kind:             string(event.Kind),
			ItemID:           event.ItemID,
			TimeSpentSeconds: event.TimeSpentSeconds,
			Progress:         event.Progress,
			Reason:           event.Reason,
			At:               event.At,
		})
	})
}

func toStatus(status domain.Status) timerdto.StatusOutput {
	return timerdto.StatusOutput{ItemID: status.ItemID, Running: status.Running}
}
