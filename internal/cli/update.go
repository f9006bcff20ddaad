package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/agenda/internal/planner"
)

// Update prompts for an id and a set of replacement fields. An empty answer
// keeps the current value.
func (a *App) Update(ctx context.Context) error {
	id, err := GetID(a.reader, "Event id", os.Stdout)
	if err != nil {
		printlnFn(renderError(err))
		return err
	}

	var patch planner.Patch

	prompts := []struct {
		label string
		field **string
	}{
		{"New name (empty to keep)", &patch.Name},
		{"New date YYYY-MM-DD (empty to keep)", &patch.Date},
		{"New time HH:MM (empty to keep)", &patch.Time},
		{"New location (empty to keep)", &patch.Location},
		{"New description (empty to keep)", &patch.Description},
		{"New attendees (empty to keep)", &patch.Attendees},
	}
	for _, p := range prompts {
		answer, err := GetSimpleText(a.reader, p.label, os.Stdout)
		if err != nil {
			return err
		}
		if answer != "" {
			*p.field = &answer
		}
	}

	reminder, err := GetSimpleText(a.reader, "Reminder y/n (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	switch strings.ToLower(reminder) {
	case "y", "yes", "true", "1":
		v := true
		patch.Reminder = &v
	case "n", "no", "false", "0":
		v := false
		patch.Reminder = &v
	}

	ev, err := a.planner.UpdateEvent(ctx, id, patch)
	if err != nil {
		printlnFn(renderError(err))
		return err
	}

	printlnFn(fmt.Sprintf("Updated event %q (ID: %d)", ev.Name, ev.ID))
	return nil
}
