package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-n", "5", "-l", "900", "-v", "debug"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, 5, cfg.HistoryCapacity)
		assert.Equal(t, 15*time.Minute, cfg.ReminderLead)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("no flags keeps defaults", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, 10, cfg.HistoryCapacity)
		assert.Equal(t, 15*time.Minute, cfg.ReminderLead)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("unrelated flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-x", "1", "-n", "3"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, 3, cfg.HistoryCapacity)
	})
}
