package config

import "time"

// Config holds runtime settings for the agenda CLI.
//
// Fields:
//   - HistoryCapacity: how many edit snapshots the undo stack keeps.
//   - ReminderLead: how far ahead of an event's start a reminder fires.
//   - LogLevel: minimum level for diagnostic output (debug, info, warn, error).
type Config struct {
	HistoryCapacity int
	ReminderLead    time.Duration
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.HistoryCapacity = 10
	c.ReminderLead = 15 * time.Minute
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
