// Package ics serializes planner events to an iCalendar stream so other
// calendar tools can import them. Export is one-way; nothing is read back.
package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/dmitrijs2005/agenda/internal/planner"
)

// Events without an explicit duration are exported as one-hour slots.
const defaultEventDuration = time.Hour

// Export writes events as a VCALENDAR to w, in the order given.
func Export(w io.Writer, events []planner.Event) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//agenda//event planner//EN")

	stamp := time.Now().UTC()

	for _, ev := range events {
		start, err := planner.ParseTimeKey(ev.Date, ev.Time)
		if err != nil {
			return fmt.Errorf("event %d: %w", ev.ID, err)
		}

		ve := cal.AddEvent(fmt.Sprintf("agenda-%d", ev.ID))
		ve.SetDtStampTime(stamp)
		ve.SetStartAt(start)
		ve.SetEndAt(start.Add(defaultEventDuration))
		ve.SetSummary(ev.Name)
		if ev.Location != "" {
			ve.SetLocation(ev.Location)
		}
		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
		for _, name := range strings.Split(ev.Attendees, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				ve.AddAttendee(name)
			}
		}
	}

	return cal.SerializeTo(w)
}
