package in

import (
	"context"

	backupdto "switchsprint/internal/modules/backup/dto"
	backupin "switchsprint/internal/modules/backup/port/in"
)

type CLIHandler struct {
	usecase backupin.Usecase
}

func NewCLIHandler(usecase backupin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context) (backupdto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Connect(ctx context.Context, dir string) (backupdto.StatusOutput, error) {
	return h.usecase.Connect(ctx, dir)
}

func (h CLIHandler) Verify(ctx context.Context) (backupdto.StatusOutput, error) {
	return h.usecase.Verify(ctx)
}

func (h CLIHandler) Disconnect(ctx context.Context) error {
	return h.usecase.Disconnect(ctx)
}

func (h CLIHandler) SaveNow(ctx context.Context) error {
	return h.usecase.SaveNow(ctx)
}

func (h CLIHandler) Export(ctx context.Context, dir string, includeReport bool) (backupdto.ExportOutput, error) {
	return h.usecase.Export(ctx, backupdto.ExportInput{Dir: dir, IncludeReport: includeReport})
}

func (h CLIHandler) Import(ctx context.Context, path string) (backupdto.ImportOutput, error) {
	return h.usecase.Import(ctx, path)
}
