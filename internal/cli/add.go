package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/agenda/internal/planner"
)

// Add prompts for the fields of a new event and creates it.
func (a *App) Add(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Event name", os.Stdout)
	if err != nil {
		return err
	}
	date, err := GetSimpleText(a.reader, "Date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	clock, err := GetSimpleText(a.reader, "Time (HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	reminder, err := GetBool(a.reader, "Set a reminder?", os.Stdout)
	if err != nil {
		return err
	}
	location, err := GetSimpleText(a.reader, "Location (optional)", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	attendees, err := GetSimpleText(a.reader, "Attendees, comma-separated (optional)", os.Stdout)
	if err != nil {
		return err
	}

	ev, err := a.planner.CreateEvent(ctx, planner.EventParams{
		Name:        name,
		Date:        date,
		Time:        clock,
		Reminder:    reminder,
		Location:    location,
		Description: description,
		Attendees:   attendees,
	})
	if err != nil {
		printlnFn(renderError(err))
		return err
	}

	printlnFn(fmt.Sprintf("Created event %q (ID: %d) on %s at %s", ev.Name, ev.ID, ev.Date, ev.Time))
	return nil
}
