package domain

import (
	"strings"
	"time"

	docdomain "switchsprint/internal/modules/document/domain"
)

type NewResume struct {
	Name    string
	FileURL string
	Type    docdomain.ResumeType
	Notes   string
}

func (n NewResume) Build(id string, now time.Time) (docdomain.ResumeVersion, error) {
	if strings.TrimSpace(n.Name) == "" {
		return docdomain.ResumeVersion{}, errInvalid("resume name is required")
	}
	kind := n.Type
	if kind == "" {
		kind = docdomain.ResumePDF
	}
	if err := kind.Validate(); err != nil {
		return docdomain.ResumeVersion{}, errInvalid("%v", err)
	}
	return docdomain.ResumeVersion{
		ID:          id,
		Name:        strings.TrimSpace(n.Name),
		FileURL:     n.FileURL,
		Type:        kind,
		LastUpdated: now.UTC().Format(time.RFC3339),
		Notes:       n.Notes,
	}, nil
}

func FindResume(resumes []docdomain.ResumeVersion, id string) int {
	for i := range resumes {
		if resumes[i].ID == id {
			return i
		}
	}
	return -1
}

// ResumeInfo describes a local resume file.
type ResumeInfo struct {
	Path      string
	Pages     int
	Words     int
	FirstLine string
}
