package clock

import "time"

// DayLayout is the calendar-day key used for session rows and plan dates.
const DayLayout = "2006-01-02"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall time. Calendar days follow the user's zone,
// so unlike timestamps it is not normalised to UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// DayKey formats t as a calendar-day key.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay parses a calendar-day key in loc.
func ParseDay(day string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DayLayout, day, loc)
}
