package in

import (
	"context"

	"switchsprint/internal/modules/backup/dto"
)

type Usecase interface {
	Status(ctx context.Context) (dto.StatusOutput, error)
	Connect(ctx context.Context, dir string) (dto.StatusOutput, error)
	Verify(ctx context.Context) (dto.StatusOutput, error)
	Disconnect(ctx context.Context) error
	Flush(ctx context.Context) error
	SaveNow(ctx context.Context) error
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	Import(ctx context.Context, path string) (dto.ImportOutput, error)
	Subscribe(fn func(dto.StatusOutput))
}
