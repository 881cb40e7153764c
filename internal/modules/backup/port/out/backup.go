package out

import (
	"context"

	"switchsprint/internal/modules/backup/domain"
	docdomain "switchsprint/internal/modules/document/domain"
)

// GrantStore remembers the granted folder across restarts. Load returns
// apperrors.ErrNotFound when nothing was granted.
type GrantStore interface {
	Load(ctx context.Context) (domain.Grant, error)
	Save(ctx context.Context, grant domain.Grant) error
	Clear(ctx context.Context) error
}

// Folder is the external backup medium.
type Folder interface {
	// Check verifies the folder is still present and writable.
	Check(dir string) error
	Write(dir, name string, payload []byte) error
	Read(path string) ([]byte, error)
}

// FolderWatcher reports when a granted folder disappears.
type FolderWatcher interface {
	Watch(dir string, onGone func(reason string)) (stop func(), err error)
}

// ReportRenderer produces the tabular report written next to the backup.
type ReportRenderer interface {
	Render(doc docdomain.AppData) ([]byte, error)
}

// DocumentSource is the document store as seen by the backup sink.
type DocumentSource interface {
	Snapshot() docdomain.AppData
	Replace(ctx context.Context, doc docdomain.AppData) (docdomain.AppData, error)
}
