package out

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileDocumentStoreRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	store := NewFileDocumentStore(path)

	if _, err := store.Load(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if err := store.Save(context.Background(), []byte(`{"a":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(context.Background(), []byte(`{"a":2}`)); err != nil {
		t.Fatalf("save again: %v", err)
	}
	payload, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(payload) != `{"a":2}` {
		t.Fatalf("unexpected payload %s", payload)
	}
}
