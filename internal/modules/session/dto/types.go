package dto

import "time"

type ChecklistItemOutput struct {
	ID                 string
	Label              string
	DefaultTimeMinutes int
	TimeSpentSeconds   int
	IsCustom           bool
	Completed          bool
	Notes              string
	Progress           float64
}

type SessionOutput struct {
	Date                   string
	State                  string
	SessionStart           *time.Time
	SessionEnd             *time.Time
	TotalTimeSpentSeconds  int
	Checklist              []ChecklistItemOutput
	CompletedItems         int
	ApplicationsCount      int
	RecruiterMessagesCount int
	Notes                  string
}

type ChecklistPatchInput struct {
	ItemID             string
	Label              *string
	DefaultTimeMinutes *int
	TimeSpentSeconds   *int
	Completed          *bool
	Notes              *string
}

type ChecklistUpdateOutput struct {
	Session SessionOutput
	Found   bool
}

type AddItemInput struct {
	Label   string
	Minutes int
}

type SessionDetailsInput struct {
	Notes                  *string
	ApplicationsCount      *int
	RecruiterMessagesCount *int
}

type CreditInput struct {
	ItemID  string
	Seconds int
}
