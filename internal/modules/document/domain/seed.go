package domain

// DefaultChecklist returns a fresh copy of the daily checklist template.
func DefaultChecklist() []ChecklistItem {
	return []ChecklistItem{
		{ID: "setup", Label: "Setup", DefaultTimeMinutes: 5},
		{ID: "apply", Label: "Apply to jobs (10-15 apps)", DefaultTimeMinutes: 35},
		{ID: "outreach", Label: "Recruiter outreach (5 msgs)", DefaultTimeMinutes: 10},
		{ID: "sql", Label: "SQL practice", DefaultTimeMinutes: 25},
		{ID: "python", Label: "Python/pandas practice", DefaultTimeMinutes: 20},
		{ID: "spark", Label: "Databricks/Spark practice", DefaultTimeMinutes: 15},
		{ID: "wrap", Label: "Wrap + Update tracker", DefaultTimeMinutes: 10},
	}
}

// DefaultStudyPlan returns the fourteen-day curriculum.
func DefaultStudyPlan() []StudyDay {
	return []StudyDay{
		{DayNumber: 1, TopicSQL: "Joins basics", TopicPython: "Read Excel/CSV + export", TopicSpark: "DF basics", PracticeTask: "Load a CSV into Spark DF and show schema"},
		{DayNumber: 2, TopicSQL: "Group by + having", TopicPython: "Groupby/agg", TopicSpark: "GroupBy/agg", PracticeTask: "Calculate avg salary per department"},
		{DayNumber: 3, TopicSQL: "Row_number/rank dedupe", TopicPython: "Latest per group", TopicSpark: "Window intro", PracticeTask: "Find most recent transaction per user"},
		{DayNumber: 4, TopicSQL: "Nulls/coalesce/case", TopicPython: "Missing values + cleaning", TopicSpark: "Trim/lower/null handling", PracticeTask: "Clean a dirty dataset"},
		{DayNumber: 5, TopicSQL: "Multi-CTE business query", TopicPython: "Merge + validate counts", TopicSpark: "Joins + broadcast concept", PracticeTask: "Join Sales and Customers tables"},
		{DayNumber: 6, TopicSQL: "Performance basics", TopicPython: "Vectorization", TopicSpark: "Partitions + cache concept", PracticeTask: "Optimize a slow join"},
		{DayNumber: 7, TopicSQL: "Mock: 2 SQL timed", TopicPython: "1 pandas timed", TopicSpark: "Spark explain pipeline + HR practice", PracticeTask: "Simulate a 30-min coding round"},
		{DayNumber: 8, TopicSQL: "Lag/lead", TopicPython: "Shift/rolling", TopicSpark: "Window lag/lead", PracticeTask: "Calculate WoW growth"},
		{DayNumber: 9, TopicSQL: "Normalization + duplicates", TopicPython: "Text normalization function", TopicSpark: "Normalization columns", PracticeTask: "Normalize a denormalized table"},
		{DayNumber: 10, TopicSQL: "Incremental load/upsert concept", TopicPython: "Idempotent export", TopicSpark: "Delta MERGE concept", PracticeTask: "Implement an upsert logic"},
		{DayNumber: 11, TopicSQL: "Metrics + funnel", TopicPython: "Weekly summary table", TopicSpark: "Write + metrics concept", PracticeTask: "Build a conversion funnel"},
		{DayNumber: 12, TopicSQL: "Case study: design query + explain", TopicPython: "End-to-end small pipeline", TopicSpark: "Scaling explanation", PracticeTask: "Design a data pipeline architecture"},
		{DayNumber: 13, TopicSQL: "Interview simulation: SQL timed", TopicPython: "Pandas timed", TopicSpark: "Spark talk track + HR", PracticeTask: "Full mock interview"},
		{DayNumber: 14, TopicSQL: "Final simulation", TopicPython: "Finalize 1 portfolio script/notebook", TopicSpark: "Update resume bullets", PracticeTask: "Polish resume and apply"},
	}
}

// DefaultResources returns the seeded learning links.
func DefaultResources() []ResourceCategory {
	return []ResourceCategory{
		{ID: "sql", Title: "SQL Resources", Links: []ResourceLink{
			{ID: "sql1", Title: "SQLZoo", URL: "https://sqlzoo.net/"},
			{ID: "sql2", Title: "Mode Analytics SQL Tutorial", URL: "https://mode.com/sql-tutorial/"},
		}},
		{ID: "python", Title: "Python/Pandas", Links: []ResourceLink{
			{ID: "py1", Title: "Pandas Documentation", URL: "https://pandas.pydata.org/docs/"},
			{ID: "py2", Title: "Real Python", URL: "https://realpython.com/"},
		}},
		{ID: "spark", Title: "Databricks/Spark", Links: []ResourceLink{
			{ID: "spark1", Title: "Spark By Examples", URL: "https://sparkbyexamples.com/"},
			{ID: "spark2", Title: "Databricks Academy", URL: "https://www.databricks.com/learn/training/home"},
		}},
		{ID: "audio", Title: "Audio Books & Podcasts", Links: []ResourceLink{
			{ID: "audio1", Title: "Python for Everyone (Audio Course)", URL: "https://www.youtube.com/watch?v=8DvywoWv6fI"},
			{ID: "audio2", Title: "SQL Tutorial for Beginners (Full Course)", URL: "https://www.youtube.com/watch?v=HXV3zeQKqGY"},
			{ID: "audio3", Title: "Data Engineering Podcast", URL: "https://www.dataengineeringpodcast.com/"},
			{ID: "audio4", Title: "Databricks - The Data Team Podcast", URL: "https://www.databricks.com/resources/podcasts/data-team"},
		}},
	}
}

// StudyPlanMap indexes a plan by day number.
func StudyPlanMap(days []StudyDay) map[int]StudyDay {
	out := make(map[int]StudyDay, len(days))
	for _, day := range days {
		out[day.DayNumber] = day
	}
	return out
}

// Default returns the initial document.
func Default() AppData {
	return AppData{
		Sessions:        Sessions{},
		Applications:    []JobApplication{},
		Contacts:        []Contact{},
		Resumes:         []ResumeVersion{},
		FocusedStudyDay: 1,
		StudyProgress:   StudyPlanMap(DefaultStudyPlan()),
		Resources:       DefaultResources(),
	}
}
