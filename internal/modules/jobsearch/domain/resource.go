package domain

import (
	"strings"

	docdomain "switchsprint/internal/modules/document/domain"
	"switchsprint/internal/platform/slug"
)

const (
	DefaultLinkTitle = "New Resource"
	DefaultLinkURL   = "https://"
)

// NewCategory derives a readable id from title that no existing category uses.
func NewCategory(categories []docdomain.ResourceCategory, title string) (docdomain.ResourceCategory, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return docdomain.ResourceCategory{}, errInvalid("category title is required")
	}
	id := slug.Unique(title, func(candidate string) bool {
		return FindCategory(categories, candidate) >= 0
	})
	return docdomain.ResourceCategory{ID: id, Title: title, Links: []docdomain.ResourceLink{}}, nil
}

// NewLink fills the placeholder title and url when they are blank.
func NewLink(id, title, url string) docdomain.ResourceLink {
	if strings.TrimSpace(title) == "" {
		title = DefaultLinkTitle
	}
	if strings.TrimSpace(url) == "" {
		url = DefaultLinkURL
	}
	return docdomain.ResourceLink{ID: id, Title: strings.TrimSpace(title), URL: strings.TrimSpace(url)}
}

type LinkPatch struct {
	Title   *string
	URL     *string
	Checked *bool
}

func (p LinkPatch) Empty() bool {
	return p.Title == nil && p.URL == nil && p.Checked == nil
}

func (p LinkPatch) Apply(link *docdomain.ResourceLink) {
	if p.Title != nil {
		link.Title = *p.Title
	}
	if p.URL != nil {
		link.URL = *p.URL
	}
	if p.Checked != nil {
		link.Checked = *p.Checked
	}
}

func FindCategory(categories []docdomain.ResourceCategory, id string) int {
	for i := range categories {
		if categories[i].ID == id {
			return i
		}
	}
	return -1
}

// FindLink returns the category and link index of linkID within categoryID.
func FindLink(categories []docdomain.ResourceCategory, categoryID, linkID string) (int, int, error) {
	c := FindCategory(categories, categoryID)
	if c < 0 {
		return -1, -1, errNotFound("resource category", categoryID)
	}
	for l := range categories[c].Links {
		if categories[c].Links[l].ID == linkID {
			return c, l, nil
		}
	}
	return c, -1, errNotFound("resource link", linkID)
}

// CheckedRatio is the share of checked links across every category.
func CheckedRatio(categories []docdomain.ResourceCategory) (checked, total int) {
	for _, cat := range categories {
		for _, link := range cat.Links {
			total++
			if link.Checked {
				checked++
			}
		}
	}
	return checked, total
}
