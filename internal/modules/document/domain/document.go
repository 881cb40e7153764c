// Package domain holds the single persisted aggregate and its invariants.
package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"
)

type ChecklistItem struct {
	ID                 string `json:"id"`
	Label              string `json:"label"`
	DefaultTimeMinutes int    `json:"defaultTimeMinutes"`
	TimeSpentSeconds   int    `json:"timeSpentSeconds"`
	IsCustom           bool   `json:"isCustom"`
	Notes              string `json:"notes"`
	Completed          bool   `json:"completed"`
}

// Progress is the share of the target time already spent, capped at 1.
// A completed item always reports 1.
func (c ChecklistItem) Progress() float64 {
	if c.Completed {
		return 1
	}
	target := float64(c.DefaultTimeMinutes * 60)
	if target <= 0 {
		return 0
	}
	return math.Min(1, float64(c.TimeSpentSeconds)/target)
}

type DailySession struct {
	Date                   string          `json:"date"`
	SessionStart           *time.Time      `json:"sessionStart"`
	SessionEnd             *time.Time      `json:"sessionEnd"`
	TotalTimeSpentSeconds  int             `json:"totalTimeSpentSeconds"`
	Checklist              []ChecklistItem `json:"checklist"`
	ApplicationsCount      int             `json:"applicationsCount"`
	RecruiterMessagesCount int             `json:"recruiterMessagesCount"`
	Notes                  string          `json:"notes"`
}

// Active reports whether the session is started and not ended.
func (s DailySession) Active() bool {
	return s.SessionStart != nil && s.SessionEnd == nil
}

// Recompute derives the total from the checklist.
func (s *DailySession) Recompute() {
	total := 0
	for _, item := range s.Checklist {
		total += item.TimeSpentSeconds
	}
	s.TotalTimeSpentSeconds = total
}

// Item returns the index of the checklist item with id, or -1.
func (s DailySession) Item(id string) int {
	for i, item := range s.Checklist {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s DailySession) CompletedCount() int {
	n := 0
	for _, item := range s.Checklist {
		if item.Completed {
			n++
		}
	}
	return n
}

// Sessions holds one row per calendar day. It is stored as a JSON array of
// rows sorted by date.
type Sessions map[string]DailySession

// Upsert replaces the row for s.Date.
func (m Sessions) Upsert(s DailySession) {
	m[s.Date] = s
}

// Sorted returns the rows ordered by date ascending.
func (m Sessions) Sorted() []DailySession {
	out := make([]DailySession, 0, len(m))
	for _, s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func (m Sessions) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Sorted())
}

// UnmarshalJSON accepts the array form. Rows sharing a date collapse, last wins.
func (m *Sessions) UnmarshalJSON(raw []byte) error {
	var rows []DailySession
	if err := json.Unmarshal(raw, &rows); err != nil {
		return fmt.Errorf("decode sessions: %w", err)
	}
	out := make(Sessions, len(rows))
	for _, row := range rows {
		out[row.Date] = row
	}
	*m = out
	return nil
}

type ApplicationStatus string

const (
	StatusApplied    ApplicationStatus = "Applied"
	StatusHRScreen   ApplicationStatus = "HR Screen"
	StatusTechRound  ApplicationStatus = "Tech Round"
	StatusAssignment ApplicationStatus = "Assignment"
	StatusRejected   ApplicationStatus = "Rejected"
	StatusOffer      ApplicationStatus = "Offer"
	StatusJoined     ApplicationStatus = "Joined"
)

// ApplicationStatuses lists the statuses in funnel order.
var ApplicationStatuses = []ApplicationStatus{
	StatusApplied, StatusHRScreen, StatusTechRound, StatusAssignment, StatusRejected, StatusOffer, StatusJoined,
}

func (s ApplicationStatus) Validate() error {
	for _, known := range ApplicationStatuses {
		if s == known {
			return nil
		}
	}
	return fmt.Errorf("unsupported application status %q", string(s))
}

type FollowUpStatus string

const (
	FollowUpPending FollowUpStatus = "Pending"
	FollowUpDone    FollowUpStatus = "Done"
	FollowUpStale   FollowUpStatus = "Stale"
)

func (s FollowUpStatus) Validate() error {
	switch s {
	case FollowUpPending, FollowUpDone, FollowUpStale:
		return nil
	default:
		return fmt.Errorf("unsupported follow-up status %q", string(s))
	}
}

type JobApplication struct {
	ID               string            `json:"id"`
	Company          string            `json:"company"`
	RoleTitle        string            `json:"roleTitle"`
	Location         string            `json:"location"`
	JobLink          string            `json:"jobLink"`
	Source           string            `json:"source"`
	Status           ApplicationStatus `json:"status"`
	DateApplied      string            `json:"dateApplied"`
	Notes            string            `json:"notes"`
	LastActionDate   string            `json:"lastActionDate"`
	NextFollowUpDate *string           `json:"nextFollowUpDate"`
	RecruiterName    string            `json:"recruiterName,omitempty"`
	RecruiterContact string            `json:"recruiterContact,omitempty"`
	FollowUpStatus   FollowUpStatus    `json:"followUpStatus"`
	SalaryExpected   string            `json:"salaryExpected,omitempty"`
	SalaryOffered    string            `json:"salaryOffered,omitempty"`
}

// PlanLength is the number of days in the study curriculum.
const PlanLength = 14

type StudyDay struct {
	DayNumber     int      `json:"dayNumber"`
	TopicSQL      string   `json:"topicSQL"`
	TopicPython   string   `json:"topicPython"`
	TopicSpark    string   `json:"topicSpark"`
	PracticeTask  string   `json:"practiceTask"`
	Completed     bool     `json:"completed"`
	CompletedDate *string  `json:"completedDate,omitempty"`
	Notes         string   `json:"notes"`
	CustomTopics  []string `json:"customTopics,omitempty"`
}

type ContactStatus string

const (
	ContactNew        ContactStatus = "New"
	ContactContacted  ContactStatus = "Contacted"
	ContactResponded  ContactStatus = "Responded"
	ContactGhosted    ContactStatus = "Ghosted"
	ContactMeetingSet ContactStatus = "Meeting Set"
)

func (s ContactStatus) Validate() error {
	switch s {
	case ContactNew, ContactContacted, ContactResponded, ContactGhosted, ContactMeetingSet:
		return nil
	default:
		return fmt.Errorf("unsupported contact status %q", string(s))
	}
}

type Contact struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Role            string        `json:"role"`
	Company         string        `json:"company"`
	Link            string        `json:"link"`
	Status          ContactStatus `json:"status"`
	LastContactDate *string       `json:"lastContactDate"`
	Notes           string        `json:"notes"`
	Email           string        `json:"email,omitempty"`
}

type ResumeType string

const (
	ResumePDF       ResumeType = "PDF"
	ResumeWord      ResumeType = "Word"
	ResumeGoogleDoc ResumeType = "Google Doc"
)

func (t ResumeType) Validate() error {
	switch t {
	case ResumePDF, ResumeWord, ResumeGoogleDoc:
		return nil
	default:
		return fmt.Errorf("unsupported resume type %q", string(t))
	}
}

type ResumeVersion struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	FileURL     string     `json:"fileUrl"`
	Type        ResumeType `json:"type"`
	LastUpdated string     `json:"lastUpdated"`
	Notes       string     `json:"notes"`
}

type ResourceLink struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Checked bool   `json:"checked"`
}

type ResourceCategory struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Links []ResourceLink `json:"links"`
}

// AppData is the document: every persisted piece of state.
type AppData struct {
	Sessions           Sessions           `json:"sessions"`
	Applications       []JobApplication   `json:"applications"`
	Contacts           []Contact          `json:"contacts"`
	Resumes            []ResumeVersion    `json:"resumes"`
	StudyPlanStartDate *string            `json:"studyPlanStartDate"`
	FocusedStudyDay    int                `json:"focusedStudyDay"`
	StudyProgress      map[int]StudyDay   `json:"studyProgress"`
	Resources          []ResourceCategory `json:"resources"`
}
