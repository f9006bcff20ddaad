package cli

import (
	"context"
	"fmt"
)

// Reminders prints the pending reminder queue in FIFO order.
func (a *App) Reminders(ctx context.Context) error {
	printlnFn(titleStyle.Render("Reminder Queue:"))
	pending := a.planner.PendingReminders(ctx)
	if len(pending) == 0 {
		printlnFn(dimStyle.Render("  (none)"))
		return nil
	}
	for _, ev := range pending {
		printlnFn("  " + renderEvent(ev))
	}
	return nil
}

// Sweep fires every reminder due within the configured lead time.
func (a *App) Sweep(ctx context.Context) error {
	fired := a.planner.SweepReminders(ctx, a.now())
	for _, ev := range fired {
		printlnFn(fmt.Sprintf("Reminder: %s at %s %s", ev.Name, ev.Date, ev.Time))
	}
	printlnFn(fmt.Sprintf("Processed %d reminders, %d remaining",
		len(fired), len(a.planner.PendingReminders(ctx))))
	return nil
}
