package domain

import (
	"time"

	"switchsprint/internal/platform/clock"
)

type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnected    Status = "connected"
	StatusSaving       Status = "saving"
	StatusSaved        Status = "saved"
	StatusError        Status = "error"
)

var Statuses = []Status{StatusDisconnected, StatusConnected, StatusSaving, StatusSaved, StatusError}

// StatusNames lists the statuses as strings for metric labels.
func StatusNames() []string {
	out := make([]string, 0, len(Statuses))
	for _, s := range Statuses {
		out = append(out, string(s))
	}
	return out
}

// Grant is a folder the user chose as backup target.
type Grant struct {
	Dir       string    `json:"dir"`
	GrantedAt time.Time `json:"grantedAt"`
}

func BackupFileName(now time.Time) string {
	return "switch-sprint-backup-" + clock.DayKey(now) + ".json"
}

func ReportFileName(now time.Time) string {
	return "switch-sprint-report-" + clock.DayKey(now) + ".xlsx"
}

// Snapshot is the externally visible backup state.
type Snapshot struct {
	Status    Status
	Dir       string
	LastSaved *time.Time
	LastError string
	Pending   bool
}
