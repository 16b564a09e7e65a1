package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	return path
}

func TestLoadAppConfig(t *testing.T) {
	t.Run("valid config loads", func(t *testing.T) {
		path := writeConfig(t, `
accountId: SIM-001
traderTag: TESTER
strategyTag: S1
orderIdStart: 10
positionIdStart: 5
eventStoreDbUrl: esdb://localhost:2113?tls=false
timers:
  - label: bar-close-1m
    intervalSeconds: 60
`)

		config, err := LoadAppConfig(path)
		assert.NoError(t, err)
		assert.Equal(t, "SIM-001", config.AccountID)
		assert.Equal(t, 10, config.OrderIDStart)
		assert.Equal(t, ":8080", config.HTTPListenAddr, "listen address defaults")
		assert.Len(t, config.Timers, 1)
		assert.Equal(t, 60, config.Timers[0].IntervalSeconds)
	})

	t.Run("missing trader tag rejected", func(t *testing.T) {
		path := writeConfig(t, `
accountId: SIM-001
strategyTag: S1
`)

		_, err := LoadAppConfig(path)
		assert.Error(t, err)
	})

	t.Run("negative counter rejected", func(t *testing.T) {
		path := writeConfig(t, `
accountId: SIM-001
traderTag: TESTER
strategyTag: S1
orderIdStart: -1
`)

		_, err := LoadAppConfig(path)
		assert.Error(t, err)
	})

	t.Run("timer without interval rejected", func(t *testing.T) {
		path := writeConfig(t, `
accountId: SIM-001
traderTag: TESTER
strategyTag: S1
timers:
  - label: bar-close-1m
`)

		_, err := LoadAppConfig(path)
		assert.Error(t, err)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
