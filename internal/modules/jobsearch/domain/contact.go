package domain

import (
	"fmt"
	"strings"
	"time"

	docdomain "switchsprint/internal/modules/document/domain"
)

type NewContact struct {
	Name    string
	Role    string
	Company string
	Link    string
	Email   string
	Status  docdomain.ContactStatus
	Notes   string
}

func (n NewContact) Build(id string, now time.Time) (docdomain.Contact, error) {
	if strings.TrimSpace(n.Name) == "" || strings.TrimSpace(n.Company) == "" {
		return docdomain.Contact{}, errInvalid("name and company are required")
	}
	status := n.Status
	if status == "" {
		status = docdomain.ContactNew
	}
	if err := status.Validate(); err != nil {
		return docdomain.Contact{}, errInvalid("%v", err)
	}
	return docdomain.Contact{
		ID:              id,
		Name:            strings.TrimSpace(n.Name),
		Role:            n.Role,
		Company:         strings.TrimSpace(n.Company),
		Link:            n.Link,
		Status:          status,
		LastContactDate: docdomain.StringPtr(now.UTC().Format(time.RFC3339)),
		Notes:           n.Notes,
		Email:           n.Email,
	}, nil
}

type ContactPatch struct {
	Name    *string
	Role    *string
	Company *string
	Link    *string
	Email   *string
	Status  *docdomain.ContactStatus
	Notes   *string
}

func (p ContactPatch) Empty() bool {
	return p.Name == nil && p.Role == nil && p.Company == nil && p.Link == nil &&
		p.Email == nil && p.Status == nil && p.Notes == nil
}

func (p ContactPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return errInvalid("name must not be empty")
	}
	if p.Company != nil && strings.TrimSpace(*p.Company) == "" {
		return errInvalid("company must not be empty")
	}
	if p.Status != nil {
		if err := p.Status.Validate(); err != nil {
			return errInvalid("%v", err)
		}
	}
	return nil
}

// Apply mutates contact. A status change records now as the last contact.
func (p ContactPatch) Apply(contact *docdomain.Contact, now time.Time) {
	if p.Name != nil {
		contact.Name = strings.TrimSpace(*p.Name)
	}
	if p.Role != nil {
		contact.Role = *p.Role
	}
	if p.Company != nil {
		contact.Company = strings.TrimSpace(*p.Company)
	}
	if p.Link != nil {
		contact.Link = *p.Link
	}
	if p.Email != nil {
		contact.Email = *p.Email
	}
	if p.Notes != nil {
		contact.Notes = *p.Notes
	}
	if p.Status != nil && *p.Status != contact.Status {
		contact.Status = *p.Status
		contact.LastContactDate = docdomain.StringPtr(now.UTC().Format(time.RFC3339))
	}
}

// FilterContacts matches query against name and company, ignoring case.
func FilterContacts(contacts []docdomain.Contact, query string) []docdomain.Contact {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]docdomain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if query == "" || strings.Contains(strings.ToLower(c.Name), query) || strings.Contains(strings.ToLower(c.Company), query) {
			out = append(out, c)
		}
	}
	return out
}

func FindContact(contacts []docdomain.Contact, id string) int {
	for i := range contacts {
		if contacts[i].ID == id {
			return i
		}
	}
	return -1
}

// OutreachEmail drafts a short cold message asking for a call.
func OutreachEmail(name, company, topic, role string) string {
	return fmt.Sprintf(`Hi %s,

I hope you're having a great week.

I've been following %s's work on %s and am really impressed. As a %s myself, I'd love to learn more about how your team approaches this.

Would you be open to a brief 15-minute chat next week? No pressure at all, but I'd value your perspective.

Best,
[Your Name]`, name, company, topic, role)
}
