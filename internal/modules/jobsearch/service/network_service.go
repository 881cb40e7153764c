package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	docdomain "switchsprint/internal/modules/document/domain"
	"switchsprint/internal/modules/jobsearch/domain"
	apperrors "switchsprint/internal/platform/errors"
)

func (s *JobSearchService) Contacts(query string) []docdomain.Contact {
	return domain.FilterContacts(s.docs.Snapshot().Contacts, query)
}

func (s *JobSearchService) AddContact(ctx context.Context, input domain.NewContact) (docdomain.Contact, error) {
	contact, err := input.Build(s.ids.New(), s.clock.Now())
	if err != nil {
		return docdomain.Contact{}, err
	}
	if _, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		doc.Contacts = append(doc.Contacts, contact)
		return nil
	}); err != nil {
		return docdomain.Contact{}, fmt.Errorf("add contact: %w", err)
	}
	return contact, nil
}

func (s *JobSearchService) UpdateContact(ctx context.Context, contactID string, patch domain.ContactPatch) (docdomain.Contact, error) {
	if patch.Empty() {
		return docdomain.Contact{}, fmt.Errorf("%w: nothing to update", apperrors.ErrInvalidInput)
	}
	if err := patch.Validate(); err != nil {
		return docdomain.Contact{}, err
	}
	now := s.clock.Now()
	var updated docdomain.Contact
	_, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		i := domain.FindContact(doc.Contacts, contactID)
		if i < 0 {
			return fmt.Errorf("%w: contact %q", apperrors.ErrNotFound, contactID)
		}
		patch.Apply(&doc.Contacts[i], now)
		updated = doc.Contacts[i]
		return nil
	})
	if err != nil {
		return docdomain.Contact{}, fmt.Errorf("update contact: %w", err)
	}
	return updated, nil
}

func (s *JobSearchService) DeleteContact(ctx context.Context, contactID string) error {
	_, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		i := domain.FindContact(doc.Contacts, contactID)
		if i < 0 {
			return fmt.Errorf("%w: contact %q", apperrors.ErrNotFound, contactID)
		}
		doc.Contacts = append(doc.Contacts[:i], doc.Contacts[i+1:]...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

func (s *JobSearchService) Resumes() []docdomain.ResumeVersion {
	return s.docs.Snapshot().Resumes
}

func (s *JobSearchService) AddResume(ctx context.Context, input domain.NewResume) (docdomain.ResumeVersion, error) {
	resume, err := input.Build(s.ids.New(), s.clock.Now())
	if err != nil {
		return docdomain.ResumeVersion{}, err
	}
	if _, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		doc.Resumes = append(doc.Resumes, resume)
		return nil
	}); err != nil {
		return docdomain.ResumeVersion{}, fmt.Errorf("add resume: %w", err)
	}
	return resume, nil
}

func (s *JobSearchService) DeleteResume(ctx context.Context, resumeID string) error {
	_, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		i := domain.FindResume(doc.Resumes, resumeID)
		if i < 0 {
			return fmt.Errorf("%w: resume %q", apperrors.ErrNotFound, resumeID)
		}
		doc.Resumes = append(doc.Resumes[:i], doc.Resumes[i+1:]...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	return nil
}

// InspectResume reads the local PDF behind a stored resume and bumps its
// last-updated stamp.
func (s *JobSearchService) InspectResume(ctx context.Context, resumeID string) (domain.ResumeInfo, error) {
	doc := s.docs.Snapshot()
	i := domain.FindResume(doc.Resumes, resumeID)
	if i < 0 {
		return domain.ResumeInfo{}, fmt.Errorf("%w: resume %q", apperrors.ErrNotFound, resumeID)
	}
	resume := doc.Resumes[i]
	if resume.Type != docdomain.ResumePDF {
		return domain.ResumeInfo{}, fmt.Errorf("%w: only PDF resumes can be inspected", apperrors.ErrInvalidInput)
	}
	path := strings.TrimPrefix(resume.FileURL, "file://")
	if path == "" || strings.Contains(path, "://") {
		return domain.ResumeInfo{}, fmt.Errorf("%w: resume %q has no local file", apperrors.ErrInvalidInput, resume.Name)
	}
	info, err := s.inspector.Inspect(ctx, path)
	if err != nil {
		return domain.ResumeInfo{}, err
	}
	stamp := s.clock.Now().UTC().Format(time.RFC3339)
	if _, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		i := domain.FindResume(doc.Resumes, resumeID)
		if i < 0 {
			return apperrors.ErrNoChange
		}
		doc.Resumes[i].LastUpdated = stamp
		return nil
	}); err != nil {
		return domain.ResumeInfo{}, fmt.Errorf("stamp resume: %w", err)
	}
	return info, nil
}
