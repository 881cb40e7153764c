package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	docdomain "switchsprint/internal/modules/document/domain"
	"switchsprint/internal/modules/session/domain"
	sessionout "switchsprint/internal/modules/session/port/out"
	"switchsprint/internal/platform/clock"
	apperrors "switchsprint/internal/platform/errors"
	"switchsprint/internal/platform/id"
)

type SessionService struct {
	clock  clock.Clock
	idGen  id.Generator
	docs   sessionout.DocumentRepository
	logger *slog.Logger
}

func NewSessionService(clock clock.Clock, idGen id.Generator, docs sessionout.DocumentRepository, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{clock: clock, idGen: idGen, docs: docs, logger: logger}
}

// Today resolves the current calendar day from the clock on every call.
func (s *SessionService) Today() string {
	return clock.DayKey(s.clock.Now())
}

// GetTodaySession returns today's row, if any.
func (s *SessionService) GetTodaySession() (docdomain.DailySession, domain.State, bool) {
	today := s.Today()
	doc := s.docs.Snapshot()
	session, ok := doc.Sessions[today]
	return session, domain.StateOf(doc.Sessions, today), ok
}

// upsertTodaySession is the only place a day row is created. It loads or
// creates the row for today, applies mutate and writes it back by key.
func upsertTodaySession(doc *docdomain.AppData, today string, mutate func(session *docdomain.DailySession) error) (docdomain.DailySession, error) {
	session, ok := doc.Sessions[today]
	if !ok {
		session = domain.NewDay(today)
	}
	if err := mutate(&session); err != nil {
		return docdomain.DailySession{}, err
	}
	session.Recompute()
	doc.Sessions.Upsert(session)
	return session, nil
}

func (s *SessionService) StartSession(ctx context.Context) (docdomain.DailySession, error) {
	now := s.clock.Now()
	today := clock.DayKey(now)
	var result docdomain.DailySession
	doc, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		if domain.StateOf(doc.Sessions, today) == domain.StateActive {
			return apperrors.ErrNoChange
		}
		session, err := upsertTodaySession(doc, today, func(session *docdomain.DailySession) error {
			if session.SessionStart == nil {
				session.SessionStart = docdomain.TimePtr(now)
			}
			session.SessionEnd = nil
			return nil
		})
		result = session
		return err
	})
	if err != nil {
		return docdomain.DailySession{}, fmt.Errorf("start session: %w", err)
	}
	if result.Date == "" {
		result = doc.Sessions[today]
	}
	s.logger.Debug("session started", "date", today)
	return result, nil
}

// EndSession stamps the end time on today's row. It returns false when no
// row exists for today.
func (s *SessionService) EndSession(ctx context.Context) (docdomain.DailySession, bool, error) {
	now := s.clock.Now()
	today := clock.DayKey(now)
	doc, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		session, ok := doc.Sessions[today]
		if !ok {
			return apperrors.ErrNoChange
		}
		session.SessionEnd = docdomain.TimePtr(now)
		doc.Sessions.Upsert(session)
		return nil
	})
	if err != nil {
		return docdomain.DailySession{}, false, fmt.Errorf("end session: %w", err)
	}
	session, ok := doc.Sessions[today]
	return session, ok, nil
}

// UpdateChecklistItem patches one item of today's row, creating the row
// first when needed. An unknown item id leaves the document untouched and
// reports found=false.
func (s *SessionService) UpdateChecklistItem(ctx context.Context, itemID string, patch domain.ChecklistPatch) (docdomain.DailySession, bool, error) {
	if err := patch.Validate(); err != nil {
		return docdomain.DailySession{}, false, err
	}
	today := s.Today()
	found := true
	doc, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		existing, ok := doc.Sessions[today]
		if !ok {
			existing = domain.NewDay(today)
		}
		if existing.Item(itemID) < 0 {
			found = false
			return apperrors.ErrNoChange
		}
		if patch.FreezesTime(existing.Checklist[existing.Item(itemID)]) {
			return apperrors.ErrItemCompleted
		}
		_, err := upsertTodaySession(doc, today, func(session *docdomain.DailySession) error {
			patch.Apply(&session.Checklist[session.Item(itemID)])
			return nil
		})
		return err
	})
	if err != nil {
		return docdomain.DailySession{}, false, fmt.Errorf("update checklist item: %w", err)
	}
	if !found {
		s.logger.Warn("checklist item not found", "item", itemID, "date", today)
	}
	return doc.Sessions[today], found, nil
}

// AddChecklistItem appends a custom item to today's row.
func (s *SessionService) AddChecklistItem(ctx context.Context, label string, minutes int) (docdomain.ChecklistItem, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return docdomain.ChecklistItem{}, fmt.Errorf("%w: label is required", apperrors.ErrInvalidInput)
	}
	if minutes <= 0 {
		return docdomain.ChecklistItem{}, fmt.Errorf("%w: default time must be positive", apperrors.ErrInvalidInput)
	}
	today := s.Today()
	item := docdomain.ChecklistItem{ID: s.idGen.New(), Label: label, DefaultTimeMinutes: minutes, IsCustom: true}
	_, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		_, err := upsertTodaySession(doc, today, func(session *docdomain.DailySession) error {
			session.Checklist = append(session.Checklist, item)
			return nil
		})
		return err
	})
	if err != nil {
		return docdomain.ChecklistItem{}, fmt.Errorf("add checklist item: %w", err)
	}
	return item, nil
}

// RemoveChecklistItem deletes a custom item from today's row.
func (s *SessionService) RemoveChecklistItem(ctx context.Context, itemID string) error {
	today := s.Today()
	_, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		session, ok := doc.Sessions[today]
		if !ok {
			return apperrors.ErrNotFound
		}
		idx := session.Item(itemID)
		if idx < 0 {
			return apperrors.ErrNotFound
		}
		if !session.Checklist[idx].IsCustom {
			return fmt.Errorf("%w: only custom items can be removed", apperrors.ErrInvalidInput)
		}
		session.Checklist = append(session.Checklist[:idx], session.Checklist[idx+1:]...)
		session.Recompute()
		doc.Sessions.Upsert(session)
		return nil
	})
	if err != nil {
		return fmt.Errorf("remove checklist item: %w", err)
	}
	return nil
}

// UpdateSessionDetails records the wrap-up fields for today.
func (s *SessionService) UpdateSessionDetails(ctx context.Context, patch domain.SessionPatch) (docdomain.DailySession, error) {
	if err := patch.Validate(); err != nil {
		return docdomain.DailySession{}, err
	}
	today := s.Today()
	var result docdomain.DailySession
	_, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		session, err := upsertTodaySession(doc, today, func(session *docdomain.DailySession) error {
			patch.Apply(session)
			return nil
		})
		result = session
		return err
	})
	if err != nil {
		return docdomain.DailySession{}, fmt.Errorf("update session details: %w", err)
	}
	return result, nil
}

// EnsureToday materializes today's row without starting it.
func (s *SessionService) EnsureToday(ctx context.Context) (docdomain.DailySession, error) {
	today := s.Today()
	doc, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		if _, ok := doc.Sessions[today]; ok {
			return apperrors.ErrNoChange
		}
		_, err := upsertTodaySession(doc, today, func(*docdomain.DailySession) error { return nil })
		return err
	})
	if err != nil {
		return docdomain.DailySession{}, fmt.Errorf("ensure today session: %w", err)
	}
	return doc.Sessions[today], nil
}

// CreditItem adds seconds to an item of today's row. It refuses when today's
// session is not active or the item is completed; accumulated time is never
// reduced.
func (s *SessionService) CreditItem(ctx context.Context, itemID string, seconds int) (docdomain.ChecklistItem, error) {
	if seconds <= 0 {
		return docdomain.ChecklistItem{}, fmt.Errorf("%w: credit must be positive", apperrors.ErrInvalidInput)
	}
	today := s.Today()
	var item docdomain.ChecklistItem
	_, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		if domain.StateOf(doc.Sessions, today) != domain.StateActive {
			return apperrors.ErrNoActiveSession
		}
		session := doc.Sessions[today]
		idx := session.Item(itemID)
		if idx < 0 {
			return apperrors.ErrNotFound
		}
		if session.Checklist[idx].Completed {
			item = session.Checklist[idx]
			return apperrors.ErrItemCompleted
		}
		session.Checklist[idx].TimeSpentSeconds += seconds
		session.Recompute()
		doc.Sessions.Upsert(session)
		item = session.Checklist[idx]
		return nil
	})
	if err != nil {
		return item, fmt.Errorf("credit %s: %w", itemID, err)
	}
	return item, nil
}

// History returns rows newest first; limit <= 0 returns all.
func (s *SessionService) History(limit int) []docdomain.DailySession {
	rows := s.docs.Snapshot().Sessions.Sorted()
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date > rows[j].Date })
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
