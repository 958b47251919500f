// FILE: metrics_test.go
package rotatelog

import (
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMetricsExposesCounters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "name.log")
	c := New(path)
	require.NoError(t, c.Log(Record{Body: "hello"}))
	require.NoError(t, c.Close())

	reg := prometheus.NewRegistry()
	require.NoError(t, c.RegisterMetrics(reg))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["rotatelog_bytes_written_total"])
	assert.True(t, names["rotatelog_rotations_total"])
	assert.True(t, names["rotatelog_purge_deletions_total"])
	assert.True(t, names["rotatelog_purge_errors_total"])
}

func TestRegisterMetricsDuplicateFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "name.log")
	c := New(path)

	reg := prometheus.NewRegistry()
	require.NoError(t, c.RegisterMetrics(reg))
	assert.Error(t, c.RegisterMetrics(reg))
}
