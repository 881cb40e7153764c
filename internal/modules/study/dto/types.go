package dto

type DayOutput struct {
	DayNumber     int
	TopicSQL      string
	TopicPython   string
	TopicSpark    string
	PracticeTask  string
	Completed     bool
	CompletedDate string
	Notes         string
	CustomTopics  []string
	Locked        bool
	Date          string
}

type PlanOutput struct {
	StartDate  string
	CurrentDay int
	FocusedDay int
	Completed  int
	Days       []DayOutput
}

type UpdateDayInput struct {
	DayNumber    int
	Completed    *bool
	Notes        *string
	CustomTopics *[]string
	AddTopic     string
	RemoveTopic  string
}

type ReportOutput struct {
	Path          string
	CompletedDays int
	TotalDays     int
}
