package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/agenda/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-n int      edit history capacity (default from Config)
//	-l int      reminder lead time in seconds (default from Config)
//	-v string   log level: debug, info, warn, error (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-n", "-l", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.IntVar(&cfg.HistoryCapacity, "n", cfg.HistoryCapacity, "edit history capacity")
	reminderLead := fs.Int("l", int(cfg.ReminderLead.Seconds()), "reminder lead time (in seconds)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ReminderLead = time.Duration(*reminderLead) * time.Second
}
