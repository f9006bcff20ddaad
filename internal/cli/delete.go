package cli

import (
	"context"
	"fmt"
	"os"
)

// Delete prompts for an id and removes the event.
func (a *App) Delete(ctx context.Context) error {
	id, err := GetID(a.reader, "Event id", os.Stdout)
	if err != nil {
		printlnFn(renderError(err))
		return err
	}

	if err := a.planner.DeleteEvent(ctx, id); err != nil {
		printlnFn(renderError(err))
		return err
	}

	printlnFn(fmt.Sprintf("Deleted event ID %d", id))
	return nil
}
