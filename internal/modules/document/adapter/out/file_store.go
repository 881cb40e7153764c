package out

import (
	"context"
	"fmt"
	"os"

	documentout "switchsprint/internal/modules/document/port/out"
	"switchsprint/internal/platform/fsutil"
)

type FileDocumentStore struct {
	path string
}

func NewFileDocumentStore(path string) documentout.PrimaryStore {
	return &FileDocumentStore{path: path}
}

func (s *FileDocumentStore) Load(_ context.Context) ([]byte, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return payload, nil
}

func (s *FileDocumentStore) Save(_ context.Context, payload []byte) error {
	if err := fsutil.WriteFileAtomic(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
