package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"switchsprint/internal/modules/backup/domain"
	backupout "switchsprint/internal/modules/backup/port/out"
	apperrors "switchsprint/internal/platform/errors"
	"switchsprint/internal/platform/fsutil"
)

type FileGrantStore struct {
	path string
}

func NewFileGrantStore(path string) backupout.GrantStore {
	return &FileGrantStore{path: path}
}

func (s *FileGrantStore) Load(_ context.Context) (domain.Grant, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Grant{}, apperrors.ErrNotFound
		}
		return domain.Grant{}, fmt.Errorf("read backup grant: %w", err)
	}
	grant := domain.Grant{}
	if err := json.Unmarshal(payload, &grant); err != nil {
		return domain.Grant{}, fmt.Errorf("decode backup grant: %w", err)
	}
	if grant.Dir == "" {
		return domain.Grant{}, apperrors.ErrNotFound
	}
	return grant, nil
}

func (s *FileGrantStore) Save(_ context.Context, grant domain.Grant) error {
	payload, err := json.MarshalIndent(grant, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal backup grant: %w", err)
	}
	if err := fsutil.WriteFileAtomic(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write backup grant: %w", err)
	}
	return nil
}

func (s *FileGrantStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear backup grant: %w", err)
	}
	return nil
}
