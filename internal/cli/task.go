package cli

import (
	"context"
	"fmt"
	"os"
)

// AddTask appends a checklist entry to an event.
func (a *App) AddTask(ctx context.Context) error {
	id, text, err := a.promptTask()
	if err != nil {
		return err
	}
	if err := a.planner.AddTask(ctx, id, text); err != nil {
		printlnFn(renderError(err))
		return err
	}
	printlnFn(fmt.Sprintf("Added task %q to event ID %d", text, id))
	return nil
}

// CompleteTask marks a checklist entry done.
func (a *App) CompleteTask(ctx context.Context) error {
	id, text, err := a.promptTask()
	if err != nil {
		return err
	}
	if err := a.planner.CompleteTask(ctx, id, text); err != nil {
		printlnFn(renderError(err))
		return err
	}
	printlnFn(fmt.Sprintf("Marked task %q as complete for event ID %d", text, id))
	return nil
}

// RemoveTask deletes a checklist entry.
func (a *App) RemoveTask(ctx context.Context) error {
	id, text, err := a.promptTask()
	if err != nil {
		return err
	}
	if err := a.planner.RemoveTask(ctx, id, text); err != nil {
		printlnFn(renderError(err))
		return err
	}
	printlnFn(fmt.Sprintf("Removed task %q from event ID %d", text, id))
	return nil
}

// Tasks prints an event's checklist.
func (a *App) Tasks(ctx context.Context) error {
	id, err := GetID(a.reader, "Event id", os.Stdout)
	if err != nil {
		printlnFn(renderError(err))
		return err
	}

	tasks, err := a.planner.Tasks(ctx, id)
	if err != nil {
		printlnFn(renderError(err))
		return err
	}

	printlnFn(titleStyle.Render(fmt.Sprintf("Tasks for event ID %d:", id)))
	if len(tasks) == 0 {
		printlnFn(dimStyle.Render("  (none)"))
		return nil
	}
	for _, task := range tasks {
		printlnFn("  " + renderTask(task))
	}
	return nil
}

func (a *App) promptTask() (int64, string, error) {
	id, err := GetID(a.reader, "Event id", os.Stdout)
	if err != nil {
		printlnFn(renderError(err))
		return 0, "", err
	}
	text, err := GetSimpleText(a.reader, "Task text", os.Stdout)
	if err != nil {
		return 0, "", err
	}
	return id, text, nil
}
