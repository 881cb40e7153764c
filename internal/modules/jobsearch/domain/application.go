package domain

import (
	"sort"
	"strings"
	"time"

	docdomain "switchsprint/internal/modules/document/domain"
	"switchsprint/internal/platform/clock"
)

// FollowUpDays is how many days after applying the first follow-up falls due.
const FollowUpDays = 3

// TodoTag in an application's notes marks it as not yet sent.
const TodoTag = "#todo"

type Column string

const (
	ColumnToApply   Column = "To Apply"
	ColumnApplied   Column = "Applied"
	ColumnInterview Column = "Interview"
	ColumnOffer     Column = "Offer!"
	ColumnRejected  Column = "Rejected"
)

// Columns is the board order.
var Columns = []Column{ColumnToApply, ColumnApplied, ColumnInterview, ColumnOffer, ColumnRejected}

type NewApplication struct {
	Company          string
	RoleTitle        string
	Location         string
	JobLink          string
	Source           string
	Status           docdomain.ApplicationStatus
	DateApplied      string
	Notes            string
	RecruiterName    string
	RecruiterContact string
	SalaryExpected   string
}

// Build validates input and returns the stored application. An empty
// DateApplied means today; the follow-up is due three days after it.
func (n NewApplication) Build(id string, now time.Time) (docdomain.JobApplication, error) {
	if strings.TrimSpace(n.Company) == "" {
		return docdomain.JobApplication{}, errInvalid("company is required")
	}
	if strings.TrimSpace(n.RoleTitle) == "" {
		return docdomain.JobApplication{}, errInvalid("role title is required")
	}
	status := n.Status
	if status == "" {
		status = docdomain.StatusApplied
	}
	if err := status.Validate(); err != nil {
		return docdomain.JobApplication{}, errInvalid("%v", err)
	}
	source := n.Source
	if source == "" {
		source = "LinkedIn"
	}
	applied := n.DateApplied
	if applied == "" {
		applied = clock.DayKey(now)
	}
	appliedOn, err := clock.ParseDay(applied, now.Location())
	if err != nil {
		return docdomain.JobApplication{}, errInvalid("date applied %q is not YYYY-MM-DD", applied)
	}
	followUp := clock.DayKey(appliedOn.AddDate(0, 0, FollowUpDays))
	return docdomain.JobApplication{
		ID:               id,
		Company:          strings.TrimSpace(n.Company),
		RoleTitle:        strings.TrimSpace(n.RoleTitle),
		Location:         n.Location,
		JobLink:          n.JobLink,
		Source:           source,
		Status:           status,
		DateApplied:      applied,
		Notes:            n.Notes,
		LastActionDate:   applied,
		NextFollowUpDate: &followUp,
		RecruiterName:    n.RecruiterName,
		RecruiterContact: n.RecruiterContact,
		FollowUpStatus:   docdomain.FollowUpPending,
		SalaryExpected:   n.SalaryExpected,
	}, nil
}

// ApplicationPatch carries the fields to change; nil fields are kept.
type ApplicationPatch struct {
	Company          *string
	RoleTitle        *string
	Location         *string
	JobLink          *string
	Source           *string
	Status           *docdomain.ApplicationStatus
	Notes            *string
	NextFollowUpDate *string
	FollowUpStatus   *docdomain.FollowUpStatus
	RecruiterName    *string
	RecruiterContact *string
	SalaryExpected   *string
	SalaryOffered    *string
}

func (p ApplicationPatch) Empty() bool {
	return p.Company == nil && p.RoleTitle == nil && p.Location == nil && p.JobLink == nil &&
		p.Source == nil && p.Status == nil && p.Notes == nil && p.NextFollowUpDate == nil &&
		p.FollowUpStatus == nil && p.RecruiterName == nil && p.RecruiterContact == nil &&
		p.SalaryExpected == nil && p.SalaryOffered == nil
}

func (p ApplicationPatch) Validate() error {
	if p.Company != nil && strings.TrimSpace(*p.Company) == "" {
		return errInvalid("company must not be empty")
	}
	if p.RoleTitle != nil && strings.TrimSpace(*p.RoleTitle) == "" {
		return errInvalid("role title must not be empty")
	}
	if p.Status != nil {
		if err := p.Status.Validate(); err != nil {
			return errInvalid("%v", err)
		}
	}
	if p.FollowUpStatus != nil {
		if err := p.FollowUpStatus.Validate(); err != nil {
			return errInvalid("%v", err)
		}
	}
	if p.NextFollowUpDate != nil && *p.NextFollowUpDate != "" {
		if _, err := clock.ParseDay(*p.NextFollowUpDate, time.UTC); err != nil {
			return errInvalid("follow-up date %q is not YYYY-MM-DD", *p.NextFollowUpDate)
		}
	}
	return nil
}

// Apply mutates app. A status change or a completed follow-up counts as an
// action taken today. An empty follow-up date clears it.
func (p ApplicationPatch) Apply(app *docdomain.JobApplication, today string) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&app.Company, p.Company)
	set(&app.RoleTitle, p.RoleTitle)
	set(&app.Location, p.Location)
	set(&app.JobLink, p.JobLink)
	set(&app.Source, p.Source)
	set(&app.RecruiterName, p.RecruiterName)
	set(&app.RecruiterContact, p.RecruiterContact)
	set(&app.SalaryExpected, p.SalaryExpected)
	set(&app.SalaryOffered, p.SalaryOffered)
	if p.Notes != nil {
		app.Notes = *p.Notes
	}
	if p.Status != nil && *p.Status != app.Status {
		app.Status = *p.Status
		app.LastActionDate = today
	}
	if p.FollowUpStatus != nil && *p.FollowUpStatus != app.FollowUpStatus {
		app.FollowUpStatus = *p.FollowUpStatus
		if app.FollowUpStatus == docdomain.FollowUpDone {
			app.LastActionDate = today
		}
	}
	if p.NextFollowUpDate != nil {
		if *p.NextFollowUpDate == "" {
			app.NextFollowUpDate = nil
		} else {
			app.NextFollowUpDate = docdomain.StringPtr(*p.NextFollowUpDate)
		}
	}
}

// ColumnOf places app on the board.
func ColumnOf(app docdomain.JobApplication) Column {
	switch app.Status {
	case docdomain.StatusApplied:
		if strings.Contains(app.Notes, TodoTag) {
			return ColumnToApply
		}
		return ColumnApplied
	case docdomain.StatusHRScreen, docdomain.StatusTechRound, docdomain.StatusAssignment:
		return ColumnInterview
	case docdomain.StatusOffer, docdomain.StatusJoined:
		return ColumnOffer
	default:
		return ColumnRejected
	}
}

// DueFollowUps returns pending follow-ups due on or before today, oldest first.
func DueFollowUps(apps []docdomain.JobApplication, today string) []docdomain.JobApplication {
	due := make([]docdomain.JobApplication, 0)
	for _, app := range apps {
		if app.FollowUpStatus != docdomain.FollowUpPending || app.NextFollowUpDate == nil {
			continue
		}
		if *app.NextFollowUpDate <= today {
			due = append(due, app)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return *due[i].NextFollowUpDate < *due[j].NextFollowUpDate
	})
	return due
}

// FindApplication returns the index of id, or -1.
func FindApplication(apps []docdomain.JobApplication, id string) int {
	for i := range apps {
		if apps[i].ID == id {
			return i
		}
	}
	return -1
}
