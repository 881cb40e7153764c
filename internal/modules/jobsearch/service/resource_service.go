package service

import (
	"context"
	"fmt"

	docdomain "switchsprint/internal/modules/document/domain"
	"switchsprint/internal/modules/jobsearch/domain"
	apperrors "switchsprint/internal/platform/errors"
)

func (s *JobSearchService) Resources() []docdomain.ResourceCategory {
	return s.docs.Snapshot().Resources
}

func (s *JobSearchService) AddCategory(ctx context.Context, title string) (docdomain.ResourceCategory, error) {
	var created docdomain.ResourceCategory
	_, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		category, err := domain.NewCategory(doc.Resources, title)
		if err != nil {
			return err
		}
		doc.Resources = append(doc.Resources, category)
		created = category
		return nil
	})
	if err != nil {
		return docdomain.ResourceCategory{}, fmt.Errorf("add resource category: %w", err)
	}
	return created, nil
}

func (s *JobSearchService) RemoveCategory(ctx context.Context, categoryID string) error {
	_, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		i := domain.FindCategory(doc.Resources, categoryID)
		if i < 0 {
			return fmt.Errorf("%w: resource category %q", apperrors.ErrNotFound, categoryID)
		}
		doc.Resources = append(doc.Resources[:i], doc.Resources[i+1:]...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("remove resource category: %w", err)
	}
	return nil
}

func (s *JobSearchService) AddLink(ctx context.Context, categoryID, title, url string) (docdomain.ResourceLink, error) {
	link := domain.NewLink(s.ids.New(), title, url)
	_, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		i := domain.FindCategory(doc.Resources, categoryID)
		if i < 0 {
			return fmt.Errorf("%w: resource category %q", apperrors.ErrNotFound, categoryID)
		}
		doc.Resources[i].Links = append(doc.Resources[i].Links, link)
		return nil
	})
	if err != nil {
		return docdomain.ResourceLink{}, fmt.Errorf("add resource link: %w", err)
	}
	return link, nil
}

func (s *JobSearchService) UpdateLink(ctx context.Context, categoryID, linkID string, patch domain.LinkPatch) (docdomain.ResourceLink, error) {
	if patch.Empty() {
		return docdomain.ResourceLink{}, fmt.Errorf("%w: nothing to update", apperrors.ErrInvalidInput)
	}
	var updated docdomain.ResourceLink
	_, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		c, l, err := domain.FindLink(doc.Resources, categoryID, linkID)
		if err != nil {
			return err
		}
		patch.Apply(&doc.Resources[c].Links[l])
		updated = doc.Resources[c].Links[l]
		return nil
	})
	if err != nil {
		return docdomain.ResourceLink{}, fmt.Errorf("update resource link: %w", err)
	}
	return updated, nil
}

func (s *JobSearchService) RemoveLink(ctx context.Context, categoryID, linkID string) error {
	_, err := s.docs.Update(ctx, func(doc *docdomain.AppData) error {
		c, l, err := domain.FindLink(doc.Resources, categoryID, linkID)
		if err != nil {
			return err
		}
		links := doc.Resources[c].Links
		doc.Resources[c].Links = append(links[:l], links[l+1:]...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("remove resource link: %w", err)
	}
	return nil
}
