package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/agenda/internal/config"
	"github.com/dmitrijs2005/agenda/internal/logging"
	"github.com/dmitrijs2005/agenda/internal/planner"
)

// App is the interactive front end over a single Planner instance.
type App struct {
	config  *config.Config
	planner *planner.Planner
	reader  *bufio.Reader

	// now is a test seam; production code uses time.Now.
	now func() time.Time
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	p := planner.New(log,
		planner.WithHistoryCapacity(cfg.HistoryCapacity),
		planner.WithReminderLead(cfg.ReminderLead),
	)
	return &App{
		config:  cfg,
		planner: p,
		reader:  bufio.NewReader(os.Stdin),
		now:     time.Now,
	}
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to agenda (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	upcoming := a.planner.Events(context.Background(), planner.FilterUpcoming, a.now())
	return fmt.Sprintf("%d upcoming", len(upcoming))
}
