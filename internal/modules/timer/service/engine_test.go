package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docdomain "switchsprint/internal/modules/document/domain"
	documentservice "switchsprint/internal/modules/document/service"
	sessiondto "switchsprint/internal/modules/session/dto"
	sessionin "switchsprint/internal/modules/session/port/in"
	sessionservice "switchsprint/internal/modules/session/service"
	sessionusecase "switchsprint/internal/modules/session/usecase"
	"switchsprint/internal/modules/timer/domain"
	"switchsprint/internal/modules/timer/service"
	apperrors "switchsprint/internal/platform/errors"
)

type memoryStore struct {
	mu      sync.Mutex
	payload []byte
}

func (m *memoryStore) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.payload == nil {
		return nil, fmt.Errorf("read document: %w", os.ErrNotExist)
	}
	return m.payload, nil
}

func (m *memoryStore) Save(_ context.Context, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payload = payload
	return nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t
}

type fakeID struct{}

func (fakeID) New() string { return "id-1" }

type manualTicker struct {
	mu    sync.Mutex
	chans []chan time.Time
}

func (m *manualTicker) New(time.Duration) (<-chan time.Time, func()) {
	ch := make(chan time.Time)
	m.mu.Lock()
	m.chans = append(m.chans, ch)
	m.mu.Unlock()
	return ch, func() {}
}

func (m *manualTicker) latest(t *testing.T) chan time.Time {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.chans, "no ticker created")
	return m.chans[len(m.chans)-1]
}

type harness struct {
	engine   *service.Engine
	sessions sessionin.Usecase
	docs     *documentservice.DocumentService
	clock    *fakeClock
	ticker   *manualTicker
	events   chan domain.Event
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	docs := documentservice.NewDocumentService(&memoryStore{}, logger, nil)
	clk := &fakeClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	sessions := sessionusecase.NewInteractor(sessionservice.NewSessionService(clk, fakeID{}, docs, logger))
	h := &harness{sessions: sessions, docs: docs, clock: clk, ticker: &manualTicker{}, events: make(chan domain.Event, 4096)}
	h.engine = service.NewEngine(sessions, clk, service.Options{
		Interval:  time.Second,
		NewTicker: h.ticker.New,
		OnEvent:   func(e domain.Event) { h.events <- e },
		Logger:    logger,
	})
	docs.Subscribe(h.engine)
	t.Cleanup(func() { _ = h.engine.Close() })
	return h
}

func (h *harness) tick(t *testing.T, n int) {
	t.Helper()
	ch := h.ticker.latest(t)
	for i := 0; i < n; i++ {
		select {
		case ch <- h.clock.Now():
		case <-time.After(2 * time.Second):
			t.Fatalf("tick %d not consumed", i)
		}
		event := h.next(t)
		require.Equal(t, domain.EventTick, event.Kind, "tick %d: %+v", i, event)
	}
}

func (h *harness) next(t *testing.T) domain.Event {
	t.Helper()
	select {
	case event := <-h.events:
		return event
	case <-time.After(2 * time.Second):
		t.Fatalf("no timer event")
		return domain.Event{}
	}
}

func (h *harness) item(t *testing.T, date, id string) docdomain.ChecklistItem {
	t.Helper()
	session, ok := h.docs.Snapshot().Sessions[date]
	require.True(t, ok, "no session for %s", date)
	idx := session.Item(id)
	require.GreaterOrEqual(t, idx, 0)
	return session.Checklist[idx]
}

func (h *harness) start(t *testing.T) {
	t.Helper()
	_, err := h.sessions.Start(context.Background())
	require.NoError(t, err)
}

func TestToggleRequiresActiveSession(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	_, err := h.engine.Toggle(context.Background(), "sql")
	require.ErrorIs(t, err, apperrors.ErrNoActiveSession)
	assert.False(t, h.engine.Active().Running)

	h.start(t)
	_, err = h.engine.Toggle(context.Background(), "missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = h.sessions.UpdateChecklistItem(context.Background(), sessiondto.ChecklistPatchInput{ItemID: "wrap", Completed: boolPtr(true)})
	require.NoError(t, err)
	_, err = h.engine.Toggle(context.Background(), "wrap")
	require.ErrorIs(t, err, apperrors.ErrItemCompleted)
}

func TestTickingToTargetCapsProgress(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.start(t)
	status, err := h.engine.Toggle(context.Background(), "sql")
	require.NoError(t, err)
	assert.Equal(t, domain.Status{ItemID: "sql", Running: true}, status)

	h.tick(t, 1500)
	item := h.item(t, "2026-03-02", "sql")
	assert.Equal(t, 1500, item.TimeSpentSeconds)
	assert.InDelta(t, 1.0, service.Progress(item), 1e-9)

	h.tick(t, 10)
	item = h.item(t, "2026-03-02", "sql")
	assert.Equal(t, 1510, item.TimeSpentSeconds)
	assert.InDelta(t, 1.0, service.Progress(item), 1e-9)
	assert.Equal(t, 1510, h.docs.Snapshot().Sessions["2026-03-02"].TotalTimeSpentSeconds)
}

func TestToggleSwapsActiveItem(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.start(t)
	_, err := h.engine.Toggle(context.Background(), "sql")
	require.NoError(t, err)
	h.tick(t, 3)

	_, err = h.engine.Toggle(context.Background(), "python")
	require.NoError(t, err)
	stopped := h.next(t)
	assert.Equal(t, domain.EventStopped, stopped.Kind)
	assert.Equal(t, "sql", stopped.ItemID)
	assert.Equal(t, domain.ReasonSwitched, stopped.Reason)

	h.tick(t, 2)
	assert.Equal(t, 3, h.item(t, "2026-03-02", "sql").TimeSpentSeconds)
	assert.Equal(t, 2, h.item(t, "2026-03-02", "python").TimeSpentSeconds)
	assert.Equal(t, "python", h.engine.Active().ItemID)
}

func TestToggleSameItemStops(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.start(t)
	_, err := h.engine.Toggle(context.Background(), "sql")
	require.NoError(t, err)
	h.tick(t, 2)

	status, err := h.engine.Toggle(context.Background(), "sql")
	require.NoError(t, err)
	assert.False(t, status.Running)
	event := h.next(t)
	assert.Equal(t, domain.ReasonToggled, event.Reason)
	assert.False(t, h.engine.Active().Running)
	assert.Equal(t, 2, h.item(t, "2026-03-02", "sql").TimeSpentSeconds)
}

func TestCompletingActiveItemStopsTimer(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.start(t)
	_, err := h.engine.Toggle(context.Background(), "sql")
	require.NoError(t, err)
	h.tick(t, 4)

	_, err = h.sessions.UpdateChecklistItem(context.Background(), sessiondto.ChecklistPatchInput{ItemID: "sql", Completed: boolPtr(true)})
	require.NoError(t, err)
	event := h.next(t)
	assert.Equal(t, domain.EventStopped, event.Kind)
	assert.Equal(t, domain.ReasonItemCompleted, event.Reason)
	assert.False(t, h.engine.Active().Running)
	item := h.item(t, "2026-03-02", "sql")
	assert.Equal(t, 4, item.TimeSpentSeconds)
	assert.True(t, item.Completed)
}

func TestEndingSessionStopsTimerAndKeepsTime(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.start(t)
	_, err := h.engine.Toggle(context.Background(), "apply")
	require.NoError(t, err)
	h.tick(t, 7)

	_, err = h.sessions.End(context.Background())
	require.NoError(t, err)
	event := h.next(t)
	assert.Equal(t, domain.ReasonSessionNotActive, event.Reason)
	assert.Equal(t, 7, h.item(t, "2026-03-02", "apply").TimeSpentSeconds)

	_, err = h.engine.Toggle(context.Background(), "apply")
	require.ErrorIs(t, err, apperrors.ErrNoActiveSession)
}

func TestTickAfterMidnightIsRefused(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.clock.Set(time.Date(2026, 3, 2, 23, 59, 58, 0, time.UTC))
	h.start(t)
	_, err := h.engine.Toggle(context.Background(), "sql")
	require.NoError(t, err)
	h.tick(t, 1)

	h.clock.Set(time.Date(2026, 3, 3, 0, 0, 1, 0, time.UTC))
	ch := h.ticker.latest(t)
	ch <- h.clock.Now()
	event := h.next(t)
	assert.Equal(t, domain.EventStopped, event.Kind)
	assert.Equal(t, domain.ReasonSessionNotActive, event.Reason)

	doc := h.docs.Snapshot()
	assert.Equal(t, 1, h.item(t, "2026-03-02", "sql").TimeSpentSeconds)
	_, ok := doc.Sessions["2026-03-03"]
	assert.False(t, ok)
}

func TestCloseStopsAndRejectsToggle(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.start(t)
	_, err := h.engine.Toggle(context.Background(), "sql")
	require.NoError(t, err)
	require.NoError(t, h.engine.Close())
	event := h.next(t)
	assert.Equal(t, domain.ReasonClosed, event.Reason)

	_, err = h.engine.Toggle(context.Background(), "sql")
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrNoActiveSession))
}

func TestStopWithoutTimerIsNoop(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	require.NoError(t, h.engine.Stop(context.Background()))
}

func boolPtr(v bool) *bool { return &v }
