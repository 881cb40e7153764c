package domain

import (
	"encoding/json"
	"fmt"
)

// Decode parses a stored document and fills absent fields from Default.
// Fields present in raw are kept as stored.
func Decode(raw []byte) (AppData, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return AppData{}, fmt.Errorf("decode document: %w", err)
	}
	if keys == nil {
		return AppData{}, fmt.Errorf("decode document: top-level value is null")
	}

	var doc AppData
	if err := json.Unmarshal(raw, &doc); err != nil {
		return AppData{}, fmt.Errorf("decode document: %w", err)
	}
	doc.fillAbsent(keys, Default())
	doc.normalize()
	return doc, nil
}

// fillAbsent copies def into every top-level field whose key is missing.
// Stored rows are decoded onto zero values so no default row leaks into them.
func (d *AppData) fillAbsent(keys map[string]json.RawMessage, def AppData) {
	absent := func(key string) bool {
		_, ok := keys[key]
		return !ok
	}
	if absent("sessions") {
		d.Sessions = def.Sessions
	}
	if absent("applications") {
		d.Applications = def.Applications
	}
	if absent("contacts") {
		d.Contacts = def.Contacts
	}
	if absent("resumes") {
		d.Resumes = def.Resumes
	}
	if absent("studyPlanStartDate") {
		d.StudyPlanStartDate = def.StudyPlanStartDate
	}
	if absent("focusedStudyDay") {
		d.FocusedStudyDay = def.FocusedStudyDay
	}
	if absent("studyProgress") {
		d.StudyProgress = def.StudyProgress
	}
	if absent("resources") {
		d.Resources = def.Resources
	}
}

// Encode renders the document as indented JSON.
func Encode(doc AppData) ([]byte, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return raw, nil
}

func (d *AppData) normalize() {
	if d.Sessions == nil {
		d.Sessions = Sessions{}
	}
	if d.Applications == nil {
		d.Applications = []JobApplication{}
	}
	if d.Contacts == nil {
		d.Contacts = []Contact{}
	}
	if d.Resumes == nil {
		d.Resumes = []ResumeVersion{}
	}
	if d.StudyProgress == nil {
		d.StudyProgress = map[int]StudyDay{}
	}
	if d.Resources == nil {
		d.Resources = []ResourceCategory{}
	}
	d.FocusedStudyDay = ClampDay(d.FocusedStudyDay)
	for date, session := range d.Sessions {
		if session.Checklist == nil {
			session.Checklist = []ChecklistItem{}
		}
		session.Recompute()
		d.Sessions[date] = session
	}
}

// ClampDay bounds a day number to the plan.
func ClampDay(day int) int {
	if day < 1 {
		return 1
	}
	if day > PlanLength {
		return PlanLength
	}
	return day
}

// Clone deep-copies the document.
func (d AppData) Clone() AppData {
	out := AppData{
		Sessions:           make(Sessions, len(d.Sessions)),
		Applications:       make([]JobApplication, len(d.Applications)),
		Contacts:           make([]Contact, len(d.Contacts)),
		Resumes:            append([]ResumeVersion{}, d.Resumes...),
		StudyPlanStartDate: cloneString(d.StudyPlanStartDate),
		FocusedStudyDay:    d.FocusedStudyDay,
		StudyProgress:      make(map[int]StudyDay, len(d.StudyProgress)),
		Resources:          make([]ResourceCategory, len(d.Resources)),
	}
	for date, session := range d.Sessions {
		out.Sessions[date] = session.Clone()
	}
	for i, app := range d.Applications {
		app.NextFollowUpDate = cloneString(app.NextFollowUpDate)
		out.Applications[i] = app
	}
	for i, contact := range d.Contacts {
		contact.LastContactDate = cloneString(contact.LastContactDate)
		out.Contacts[i] = contact
	}
	for n, day := range d.StudyProgress {
		out.StudyProgress[n] = day.Clone()
	}
	for i, category := range d.Resources {
		category.Links = append([]ResourceLink{}, category.Links...)
		out.Resources[i] = category
	}
	return out
}

func (s DailySession) Clone() DailySession {
	out := s
	out.SessionStart = cloneTime(s.SessionStart)
	out.SessionEnd = cloneTime(s.SessionEnd)
	out.Checklist = append([]ChecklistItem{}, s.Checklist...)
	return out
}

func (d StudyDay) Clone() StudyDay {
	out := d
	out.CompletedDate = cloneString(d.CompletedDate)
	if d.CustomTopics != nil {
		out.CustomTopics = append([]string{}, d.CustomTopics...)
	}
	return out
}
