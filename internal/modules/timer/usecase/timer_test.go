package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	documentout "switchsprint/internal/modules/document/adapter/out"
	documentservice "switchsprint/internal/modules/document/service"
	sessionservice "switchsprint/internal/modules/session/service"
	sessionusecase "switchsprint/internal/modules/session/usecase"
	timerdto "switchsprint/internal/modules/timer/dto"
	"switchsprint/internal/modules/timer/service"
	"switchsprint/internal/modules/timer/usecase"
	apperrors "switchsprint/internal/platform/errors"
	"switchsprint/internal/platform/logging"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type oneID struct{}

func (oneID) New() string { return "id-1" }

func TestInteractorForwardsEngineEvents(t *testing.T) {
	t.Parallel()
	logger := logging.Discard()
	docs := documentservice.NewDocumentService(documentout.NewFileDocumentStore(t.TempDir()+"/state.json"), logger, nil)
	clk := fixedClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	sessions := sessionusecase.NewInteractor(sessionservice.NewSessionService(clk, oneID{}, docs, logger))

	ticks := make(chan time.Time)
	engine := service.NewEngine(sessions, clk, service.Options{
		NewTicker: func(time.Duration) (<-chan time.Time, func()) { return ticks, func() {} },
		Logger:    logger,
	})
	docs.Subscribe(engine)
	t.Cleanup(func() { _ = engine.Close() })

	timer := usecase.NewInteractor(engine)
	events := make(chan timerdto.EventOutput, 16)
	timer.Subscribe(func(e timerdto.EventOutput) { events <- e })

	_, err := timer.Toggle(context.Background(), " ")
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = sessions.Start(context.Background())
	require.NoError(t, err)
	status, err := timer.Toggle(context.Background(), "python")
	require.NoError(t, err)
	assert.Equal(t, timerdto.StatusOutput{ItemID: "python", Running: true}, status)

	ticks <- clk.now
	event := <-events
	assert.Equal(t, "tick", event.Kind)
	assert.Equal(t, 1, event.TimeSpentSeconds)

	require.NoError(t, timer.Stop(context.Background()))
	event = <-events
	assert.Equal(t, "stopped", event.Kind)
	assert.Equal(t, "stopped", event.Reason)

	active, err := timer.Active(context.Background())
	require.NoError(t, err)
	assert.False(t, active.Running)
}
