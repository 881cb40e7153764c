package in

import (
	"context"

	backupdto "switchsprint/internal/modules/backup/dto"
	backupin "switchsprint/internal/modules/backup/port/in"
)

type TUIHandler struct {
	usecase backupin.Usecase
}

func NewTUIHandler(usecase backupin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Status(ctx context.Context) (backupdto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h TUIHandler) Verify(ctx context.Context) (backupdto.StatusOutput, error) {
	return h.usecase.Verify(ctx)
}

func (h TUIHandler) SaveNow(ctx context.Context) error {
	return h.usecase.SaveNow(ctx)
}

func (h TUIHandler) Subscribe(fn func(backupdto.StatusOutput)) {
	h.usecase.Subscribe(fn)
}
