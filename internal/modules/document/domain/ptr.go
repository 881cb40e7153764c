package domain

import "time"

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

// StringPtr returns a pointer to a copy of v.
func StringPtr(v string) *string {
	return &v
}

// TimePtr returns a pointer to a copy of v.
func TimePtr(v time.Time) *time.Time {
	return &v
}
