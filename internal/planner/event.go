package planner

import "time"

// Event is a single calendar entry. The store owns the one mutable instance
// per id; everything handed out by the Planner is a value copy.
type Event struct {
	ID          int64
	Name        string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Reminder    bool
	Location    string
	Description string
	Attendees   string // comma-separated names by convention, not validated
}

// Key returns the event's position in the time index.
func (e *Event) Key() (time.Time, error) {
	return ParseTimeKey(e.Date, e.Time)
}

// EventParams carries the caller-supplied fields for a new event.
type EventParams struct {
	Name        string
	Date        string
	Time        string
	Reminder    bool
	Location    string
	Description string
	Attendees   string
}

// Patch describes a partial update. Nil fields are left unchanged.
type Patch struct {
	Name        *string
	Date        *string
	Time        *string
	Reminder    *bool
	Location    *string
	Description *string
	Attendees   *string
}

func (p Patch) touchesSchedule() bool {
	return p.Date != nil || p.Time != nil
}
