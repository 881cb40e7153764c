package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"switchsprint/internal/modules/document/domain"
	documentout "switchsprint/internal/modules/document/port/out"
	apperrors "switchsprint/internal/platform/errors"
	"switchsprint/internal/platform/metrics"
)

// Observer is notified with a copy of every committed document.
type Observer interface {
	DocumentChanged(doc domain.AppData)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(doc domain.AppData)

func (f ObserverFunc) DocumentChanged(doc domain.AppData) { f(doc) }

type DocumentService struct {
	store   documentout.PrimaryStore
	logger  *slog.Logger
	metrics *metrics.Registry

	mu        sync.Mutex
	doc       domain.AppData
	observers []Observer
}

func NewDocumentService(store documentout.PrimaryStore, logger *slog.Logger, reg *metrics.Registry) *DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentService{store: store, logger: logger, metrics: reg, doc: domain.Default()}
}

// Load replaces the in-memory document with the stored one. A missing or
// unreadable document yields defaults; Load only fails on I/O errors.
func (s *DocumentService) Load(ctx context.Context) (domain.AppData, error) {
	payload, err := s.store.Load(ctx)
	doc := domain.Default()
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.logger.Info("document not found, using defaults")
	case err != nil:
		return domain.AppData{}, fmt.Errorf("load document: %w", err)
	default:
		decoded, decodeErr := domain.Decode(payload)
		if decodeErr != nil {
			s.logger.Warn("document corrupt, using defaults", "error", decodeErr)
		} else {
			doc = decoded
		}
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	return doc.Clone(), nil
}

func (s *DocumentService) Snapshot() domain.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

func (s *DocumentService) Subscribe(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// Update applies fn to a copy of the latest document, persists the copy and
// then makes it current. fn returning apperrors.ErrNoChange skips the write
// and Update returns nil.
func (s *DocumentService) Update(ctx context.Context, fn func(doc *domain.AppData) error) (domain.AppData, error) {
	s.mu.Lock()
	next := s.doc.Clone()
	if err := fn(&next); err != nil {
		current := s.doc.Clone()
		s.mu.Unlock()
		if errors.Is(err, apperrors.ErrNoChange) {
			return current, nil
		}
		return current, err
	}
	payload, err := domain.Encode(next)
	if err != nil {
		s.mu.Unlock()
		return domain.AppData{}, err
	}
	if err := s.store.Save(ctx, payload); err != nil {
		current := s.doc.Clone()
		s.mu.Unlock()
		s.metrics.CountSave("error")
		s.logger.Error("document save failed", "error", err)
		return current, fmt.Errorf("save document: %w", err)
	}
	s.doc = next
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	s.metrics.CountSave("ok")
	for _, observer := range observers {
		observer.DocumentChanged(next.Clone())
	}
	return next.Clone(), nil
}

// Replace swaps in a whole document, used by restore from a backup file.
func (s *DocumentService) Replace(ctx context.Context, doc domain.AppData) (domain.AppData, error) {
	return s.Update(ctx, func(current *domain.AppData) error {
		*current = doc.Clone()
		return nil
	})
}
