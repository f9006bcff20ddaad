package cli

import (
	"context"
	"fmt"
)

// Undo rolls the most recently edited event back to its previous state.
func (a *App) Undo(ctx context.Context) error {
	ev, err := a.planner.Undo(ctx)
	if err != nil {
		printlnFn(renderError(err))
		return err
	}
	printlnFn(fmt.Sprintf("Restored event %q (ID: %d)", ev.Name, ev.ID))
	return nil
}

// History prints the undo stack, oldest first.
func (a *App) History(ctx context.Context) error {
	printlnFn(titleStyle.Render("Recently Edited Events:"))
	snaps := a.planner.History(ctx)
	if len(snaps) == 0 {
		printlnFn(dimStyle.Render("  (none)"))
		return nil
	}
	for _, snap := range snaps {
		printlnFn("  " + renderEvent(snap))
	}
	return nil
}
