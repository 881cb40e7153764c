package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	docdomain "switchsprint/internal/modules/document/domain"
	sessiondto "switchsprint/internal/modules/session/dto"
	sessionin "switchsprint/internal/modules/session/port/in"
	"switchsprint/internal/modules/timer/domain"
	"switchsprint/internal/platform/clock"
	apperrors "switchsprint/internal/platform/errors"
	"switchsprint/internal/platform/metrics"
)

// TickerFunc returns a tick channel and its stop function.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

func systemTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

type Options struct {
	Interval  time.Duration
	NewTicker TickerFunc
	// OnEvent is called without engine locks held. It must not block for long.
	OnEvent func(domain.Event)
	Logger  *slog.Logger
	Metrics *metrics.Registry
}

type activation struct {
	itemID string
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
	reason string
}

// Engine owns the single active checklist timer. At most one item accrues
// time; switching items stops the previous activation before the next one
// can credit.
type Engine struct {
	sessions  sessionin.Usecase
	clock     clock.Clock
	interval  time.Duration
	newTicker TickerFunc
	logger    *slog.Logger
	metrics   *metrics.Registry

	base       context.Context
	cancelBase context.CancelFunc

	// tickMu serialises crediting against swaps; lock order is tickMu then mu.
	tickMu    sync.Mutex
	mu        sync.Mutex
	gen       uint64
	active    *activation
	closed    bool
	listeners []func(domain.Event)
}

func NewEngine(sessions sessionin.Usecase, clk clock.Clock, opts Options) *Engine {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.NewTicker == nil {
		opts.NewTicker = systemTicker
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	base, cancel := context.WithCancel(context.Background())
	e := &Engine{
		sessions:   sessions,
		clock:      clk,
		interval:   opts.Interval,
		newTicker:  opts.NewTicker,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
		base:       base,
		cancelBase: cancel,
	}
	if opts.OnEvent != nil {
		e.listeners = append(e.listeners, opts.OnEvent)
	}
	return e
}

// OnEvent registers a callback for tick and stop events. Callbacks run
// without engine locks held.
func (e *Engine) OnEvent(fn func(domain.Event)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

// Active reports the item currently accruing time.
func (e *Engine) Active() domain.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == nil {
		return domain.Status{}
	}
	return domain.Status{ItemID: e.active.itemID, Running: true}
}

// Toggle stops itemID when it is the active timer, otherwise makes it the
// active timer in place of any previous one.
func (e *Engine) Toggle(ctx context.Context, itemID string) (domain.Status, error) {
	e.tickMu.Lock()
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		e.tickMu.Unlock()
		return domain.Status{}, fmt.Errorf("timer engine closed")
	}
	if e.active != nil && e.active.itemID == itemID {
		done := e.stopLocked(domain.ReasonToggled)
		e.mu.Unlock()
		e.tickMu.Unlock()
		return domain.Status{}, wait(ctx, done)
	}

	if err := e.checkStartable(ctx, itemID); err != nil {
		e.mu.Unlock()
		e.tickMu.Unlock()
		return e.Active(), err
	}
	prev := e.stopLocked(domain.ReasonSwitched)
	e.gen++
	runCtx, cancel := context.WithCancel(e.base)
	act := &activation{itemID: itemID, gen: e.gen, cancel: cancel, done: make(chan struct{})}
	e.active = act
	ticks, stopTicker := e.newTicker(e.interval)
	e.mu.Unlock()
	e.tickMu.Unlock()

	go e.run(runCtx, act, ticks, stopTicker)
	e.logger.Debug("timer started", "item", itemID)
	if err := wait(ctx, prev); err != nil {
		return domain.Status{ItemID: itemID, Running: true}, err
	}
	return domain.Status{ItemID: itemID, Running: true}, nil
}

// Stop halts the active timer, if any, and waits for it to exit.
func (e *Engine) Stop(ctx context.Context) error {
	e.tickMu.Lock()
	e.mu.Lock()
	done := e.stopLocked(domain.ReasonStopped)
	e.mu.Unlock()
	e.tickMu.Unlock()
	return wait(ctx, done)
}

// Close stops the active timer and rejects further toggles.
func (e *Engine) Close() error {
	e.tickMu.Lock()
	e.mu.Lock()
	e.closed = true
	done := e.stopLocked(domain.ReasonClosed)
	e.mu.Unlock()
	e.tickMu.Unlock()
	e.cancelBase()
	if done != nil {
		<-done
	}
	return nil
}

// DocumentChanged stops the active timer when its item is completed or
// removed, or today's session is no longer active.
func (e *Engine) DocumentChanged(doc docdomain.AppData) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == nil {
		return
	}
	session, ok := doc.Sessions[clock.DayKey(e.clock.Now())]
	reason := ""
	switch {
	case !ok || !session.Active():
		reason = domain.ReasonSessionNotActive
	case session.Item(e.active.itemID) < 0:
		reason = domain.ReasonItemMissing
	case session.Checklist[session.Item(e.active.itemID)].Completed:
		reason = domain.ReasonItemCompleted
	}
	if reason != "" {
		e.stopLocked(reason)
	}
}

// Progress is the share of an item's target time already spent.
func Progress(item docdomain.ChecklistItem) float64 {
	return item.Progress()
}

func (e *Engine) checkStartable(ctx context.Context, itemID string) error {
	today, err := e.sessions.Today(ctx)
	if err != nil {
		return err
	}
	if today.State != "active" {
		return apperrors.ErrNoActiveSession
	}
	for _, item := range today.Checklist {
		if item.ID != itemID {
			continue
		}
		if item.Completed {
			return apperrors.ErrItemCompleted
		}
		return nil
	}
	return fmt.Errorf("%w: checklist item %s", apperrors.ErrNotFound, itemID)
}

// stopLocked ends the active activation and returns its done channel.
// Callers hold mu.
func (e *Engine) stopLocked(reason string) chan struct{} {
	act := e.active
	if act == nil {
		return nil
	}
	act.reason = reason
	act.cancel()
	e.active = nil
	e.gen++
	return act.done
}

func (e *Engine) current(act *activation) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active == act && e.gen == act.gen
}

func (e *Engine) run(ctx context.Context, act *activation, ticks <-chan time.Time, stopTicker func()) {
	defer stopTicker()
	defer func() {
		e.mu.Lock()
		reason := act.reason
		e.mu.Unlock()
		e.logger.Debug("timer stopped", "item", act.itemID, "reason", reason)
		e.emit(domain.Event{Kind: domain.EventStopped, ItemID: act.itemID, Reason: reason, At: e.clock.Now()})
		close(act.done)
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			event, ok := e.tick(ctx, act)
			if !ok {
				return
			}
			if event != nil {
				e.emit(*event)
			}
		}
	}
}

// tick credits one interval to the activation's item. It returns false once
// the activation must end.
func (e *Engine) tick(ctx context.Context, act *activation) (*domain.Event, bool) {
	e.tickMu.Lock()
	defer e.tickMu.Unlock()
	if !e.current(act) {
		e.metrics.CountTick("stale")
		return nil, false
	}
	seconds := int(e.interval / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	item, err := e.sessions.CreditItem(ctx, sessiondto.CreditInput{ItemID: act.itemID, Seconds: seconds})
	switch {
	case err == nil:
		e.metrics.CountTick("credited")
		return &domain.Event{
			Kind:             domain.EventTick,
			ItemID:           act.itemID,
			TimeSpentSeconds: item.TimeSpentSeconds,
			Progress:         item.Progress,
			At:               e.clock.Now(),
		}, true
	case errors.Is(err, apperrors.ErrNoActiveSession), errors.Is(err, apperrors.ErrItemCompleted), errors.Is(err, apperrors.ErrNotFound):
		e.metrics.CountTick("refused")
		reason := domain.ReasonSessionNotActive
		switch {
		case errors.Is(err, apperrors.ErrItemCompleted):
			reason = domain.ReasonItemCompleted
		case errors.Is(err, apperrors.ErrNotFound):
			reason = domain.ReasonItemMissing
		}
		e.mu.Lock()
		if e.active == act {
			e.stopLocked(reason)
		}
		e.mu.Unlock()
		return nil, false
	default:
		e.metrics.CountTick("error")
		e.logger.Error("timer credit failed", "item", act.itemID, "error", err)
		return nil, true
	}
}

func (e *Engine) emit(event domain.Event) {
	e.mu.Lock()
	listeners := slices.Clone(e.listeners)
	e.mu.Unlock()
	for _, fn := range listeners {
		fn(event)
	}
}

func wait(ctx context.Context, done chan struct{}) error {
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
