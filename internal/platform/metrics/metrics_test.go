package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switchsprint/internal/platform/metrics"
)

func TestCountersAreRegistered(t *testing.T) {
	t.Parallel()
	reg := metrics.New()
	reg.TimerTicks.WithLabelValues("credited").Inc()
	reg.TimerTicks.WithLabelValues("credited").Inc()
	reg.BackupStatus.WithLabelValues("saved").Set(1)

	assert.Equal(t, 2.0, testutil.ToFloat64(reg.TimerTicks.WithLabelValues("credited")))

	families, err := reg.Gatherer().Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["switchsprint_timer_ticks_total"])
	assert.True(t, names["switchsprint_backup_status"])
}

func TestNilRegistryIsSafe(t *testing.T) {
	t.Parallel()
	var reg *metrics.Registry
	reg.CountSave("ok")
	reg.CountTick("credited")
	reg.CountBackup("error")
	reg.SetBackupStatus("saved", []string{"saved", "error"})
}
