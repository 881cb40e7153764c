package dto

import "time"

type StatusOutput struct {
	ItemID  string
	Running bool
}

type EventOutput struct {
	Kind             string
	ItemID           string
	TimeSpentSeconds int
	Progress         float64
	Reason           string
	At               time.Time
}
