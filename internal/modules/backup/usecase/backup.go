package usecase

import (
	"context"

	"switchsprint/internal/modules/backup/domain"
	backupdto "switchsprint/internal/modules/backup/dto"
	backupin "switchsprint/internal/modules/backup/port/in"
	"switchsprint/internal/modules/backup/service"
)

type Interactor struct {
	svc *service.BackupService
}

func NewInteractor(svc *service.BackupService) backupin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Status(_ context.Context) (backupdto.StatusOutput, error) {
	return toOutput(i.svc.Snapshot()), nil
}

func (i *Interactor) Connect(ctx context.Context, dir string) (backupdto.StatusOutput, error) {
	snap, err := i.svc.Connect(ctx, dir)
	return toOutput(snap), err
}

func (i *Interactor) Verify(ctx context.Context) (backupdto.StatusOutput, error) {
	snap, err := i.svc.Verify(ctx)
	return toOutput(snap), err
}

func (i *Interactor) Disconnect(ctx context.Context) error {
	return i.svc.Disconnect(ctx)
}

func (i *Interactor) Flush(ctx context.Context) error {
	return i.svc.Flush(ctx)
}

func (i *Interactor) SaveNow(ctx context.Context) error {
	return i.svc.SaveNow(ctx)
}

func (i *Interactor) Export(ctx context.Context, input backupdto.ExportInput) (backupdto.ExportOutput, error) {
	paths, err := i.svc.ExportNow(ctx, input.Dir, input.IncludeReport)
	if err != nil {
		return backupdto.ExportOutput{Paths: paths}, err
	}
	return backupdto.ExportOutput{Paths: paths}, nil
}

func (i *Interactor) Import(ctx context.Context, path string) (backupdto.ImportOutput, error) {
	doc, err := i.svc.ImportBackup(ctx, path)
	if err != nil {
		return backupdto.ImportOutput{}, err
	}
	return backupdto.ImportOutput{Sessions: len(doc.Sessions), Applications: len(doc.Applications)}, nil
}

func (i *Interactor) Subscribe(fn func(backupdto.StatusOutput)) {
	i.svc.OnStatus(func(snap domain.Snapshot) { fn(toOutput(snap)) })
}

func toOutput(snap domain.Snapshot) backupdto.StatusOutput {
	return backupdto.StatusOutput{
		Status:    string(snap.Status),
		Dir:       snap.Dir,
		LastSaved: snap.LastSaved,
		LastError: snap.LastError,
		Pending:   snap.Pending,
	}
}
