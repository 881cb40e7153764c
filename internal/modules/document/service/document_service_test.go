package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switchsprint/internal/modules/document/domain"
	apperrors "switchsprint/internal/platform/errors"
)

type memoryStore struct {
	mu      sync.Mutex
	payload []byte
	saves   int
	failErr error
}

func (m *memoryStore) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.payload == nil {
		return nil, fmt.Errorf("read document: %w", os.ErrNotExist)
	}
	return append([]byte(nil), m.payload...), nil
}

func (m *memoryStore) Save(_ context.Context, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.saves++
	m.payload = append([]byte(nil), payload...)
	return nil
}

func newTestService(store *memoryStore, w io.Writer) *DocumentService {
	if w == nil {
		w = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewDocumentService(store, logger, nil)
}

func TestLoadMissingUsesDefaults(t *testing.T) {
	t.Parallel()
	svc := newTestService(&memoryStore{}, nil)
	doc, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, doc.StudyProgress, domain.PlanLength)
	assert.Empty(t, doc.Sessions)
}

func TestLoadCorruptUsesDefaultsAndWarns(t *testing.T) {
	t.Parallel()
	var logs strings.Builder
	svc := newTestService(&memoryStore{payload: []byte("{broken")}, &logs)
	doc, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, doc.StudyProgress, domain.PlanLength)
	assert.Contains(t, logs.String(), "document corrupt, using defaults")
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestUpdatePersistsBeforeSwap(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	svc := newTestService(store, nil)
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), func(doc *domain.AppData) error {
		doc.FocusedStudyDay = 3
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, svc.Snapshot().FocusedStudyDay)

	reloaded := newTestService(store, nil)
	doc, err := reloaded.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, doc.FocusedStudyDay)
}

func TestUpdateFailedSaveKeepsPreviousDocument(t *testing.T) {
	t.Parallel()
	store := &memoryStore{failErr: errors.New("disk full")}
	svc := newTestService(store, nil)
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	notified := 0
	svc.Subscribe(ObserverFunc(func(domain.AppData) { notified++ }))
	doc, err := svc.Update(context.Background(), func(doc *domain.AppData) error {
		doc.FocusedStudyDay = 9
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, 1, doc.FocusedStudyDay)
	assert.Equal(t, 1, svc.Snapshot().FocusedStudyDay)
	assert.Zero(t, notified)
}

func TestUpdateNoChangeSkipsWrite(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	svc := newTestService(store, nil)
	_, err := svc.Update(context.Background(), func(doc *domain.AppData) error {
		doc.FocusedStudyDay = 5
		return apperrors.ErrNoChange
	})
	require.NoError(t, err)
	assert.Zero(t, store.saves)
	assert.Equal(t, 1, svc.Snapshot().FocusedStudyDay)
}

func TestUpdateErrorDiscardsMutation(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	svc := newTestService(store, nil)
	_, err := svc.Update(context.Background(), func(doc *domain.AppData) error {
		doc.FocusedStudyDay = 5
		return apperrors.ErrInvalidInput
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Zero(t, store.saves)
	assert.Equal(t, 1, svc.Snapshot().FocusedStudyDay)
}

func TestObserversReceiveCommittedCopy(t *testing.T) {
	t.Parallel()
	svc := newTestService(&memoryStore{}, nil)
	var seen []int
	svc.Subscribe(ObserverFunc(func(doc domain.AppData) {
		seen = append(seen, doc.FocusedStudyDay)
		doc.FocusedStudyDay = 14
	}))
	for _, day := range []int{2, 3} {
		_, err := svc.Update(context.Background(), func(doc *domain.AppData) error {
			doc.FocusedStudyDay = day
			return nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, []int{2, 3}, seen)
	assert.Equal(t, 3, svc.Snapshot().FocusedStudyDay)
}

func TestConcurrentUpdatesAreNotLost(t *testing.T) {
	t.Parallel()
	svc := newTestService(&memoryStore{}, nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Update(context.Background(), func(doc *domain.AppData) error {
				doc.Applications = append(doc.Applications, domain.JobApplication{ID: fmt.Sprint(len(doc.Applications))})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Len(t, svc.Snapshot().Applications, 50)
}

func TestSnapshotIsIsolated(t *testing.T) {
	t.Parallel()
	svc := newTestService(&memoryStore{}, nil)
	snap := svc.Snapshot()
	snap.Resources[0].Title = "changed"
	assert.Equal(t, "SQL Resources", svc.Snapshot().Resources[0].Title)
}
