package out

import (
	"context"

	docdomain "switchsprint/internal/modules/document/domain"
)

// DocumentRepository is the view of the document store the session manager needs.
type DocumentRepository interface {
	Snapshot() docdomain.AppData
	Update(ctx context.Context, fn func(doc *docdomain.AppData) error) (docdomain.AppData, error)
}
