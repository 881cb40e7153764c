package dto

type SummaryOutput struct {
	TotalSessions      int
	TotalHours         int
	TotalApplications  int
	UsefulDays         int
	StudyDaysCompleted int
	StudyDaysTotal     int
	ResourcesChecked   int
	ResourcesTotal     int
}

type FunnelStageOutput struct {
	Status  string
	Count   int
	Percent int
}

type ActivityOutput struct {
	Date      string
	Minutes   int
	ItemsDone int
}

type TotalsOutput struct {
	Minutes      int
	Applications int
}

type WrapUpOutput struct {
	Date              string
	Today             TotalsOutput
	TasksCompleted    int
	TasksTotal        int
	CompletionPercent int
	TopicsCovered     []int
	Weekly            TotalsOutput
	Lifetime          TotalsOutput
}

type HistoryInput struct {
	From string
	To   string
}

type HistoryRowOutput struct {
	Date                   string
	StartedAt              string
	EndedAt                string
	Minutes                int
	ItemsDone              int
	ItemsTotal             int
	ApplicationsCount      int
	RecruiterMessagesCount int
	Notes                  string
}

type WeekOutput struct {
	Week         string
	Sessions     int
	Minutes      int
	Applications int
}
