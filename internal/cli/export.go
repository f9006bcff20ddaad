package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/agenda/internal/ics"
	"github.com/dmitrijs2005/agenda/internal/planner"
)

// Export writes all events as iCalendar, to a file if a path is given or to
// stdout otherwise.
func (a *App) Export(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Output file (empty for stdout)", os.Stdout)
	if err != nil {
		return err
	}

	events := a.planner.Events(ctx, planner.FilterAll, time.Time{})

	if path == "" {
		if err := ics.Export(os.Stdout, events); err != nil {
			printlnFn(renderError(err))
			return err
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		printlnFn(renderError(err))
		return err
	}
	defer f.Close()

	if err := ics.Export(f, events); err != nil {
		printlnFn(renderError(err))
		return err
	}

	printlnFn(fmt.Sprintf("Exported %d events to %s", len(events), path))
	return nil
}
