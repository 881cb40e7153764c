// Package domain describes the observable state of the checklist timer.
package domain

import "time"

type EventKind string

const (
	EventTick    EventKind = "tick"
	EventStopped EventKind = "stopped"
)

// Stop reasons reported with EventStopped.
const (
	ReasonToggled          = "toggled"
	ReasonSwitched         = "switched"
	ReasonStopped          = "stopped"
	ReasonClosed           = "closed"
	ReasonItemCompleted    = "item completed"
	ReasonItemMissing      = "item missing"
	ReasonSessionNotActive = "session not active"
)

// Status is the engine's active item, if any.
type Status struct {
	ItemID  string
	Running bool
}

// Event is emitted after every credited tick and once when an activation ends.
type Event struct {
	Kind             EventKind
	ItemID           string
	TimeSpentSeconds int
	Progress         float64
	Reason           string
	At               time.Time
}
