package out

import "context"

// PrimaryStore holds the encoded document. Load returns os.ErrNotExist
// (wrapped) when nothing has been written yet.
type PrimaryStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
}
