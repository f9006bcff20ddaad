package cli

import (
	"context"

	"github.com/dmitrijs2005/agenda/internal/planner"
)

// List prints upcoming events in chronological order.
func (a *App) List(ctx context.Context) error {
	a.printEvents("Upcoming Events", a.planner.Events(ctx, planner.FilterUpcoming, a.now()))
	return nil
}

// Past prints events that already started, in chronological order.
func (a *App) Past(ctx context.Context) error {
	a.printEvents("Past Events", a.planner.Events(ctx, planner.FilterPast, a.now()))
	return nil
}

func (a *App) printEvents(title string, events []planner.Event) {
	printlnFn(titleStyle.Render(title + ":"))
	if len(events) == 0 {
		printlnFn(dimStyle.Render("  (none)"))
		return
	}
	for _, ev := range events {
		printlnFn("  " + renderEvent(ev))
	}
}
