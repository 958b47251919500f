// FILE: metrics.go
package rotatelog

import (
	"github.com/prometheus/client_golang/prometheus"
)

// channelCollector exposes a FileChannel's counters as a
// prometheus.Collector, grounded in the lwy110193-go_vendor and
// omeyang-XKit example repos, which both wire prometheus/client_golang
// as ambient observability. This is purely additive: nothing in the
// channel's logging path depends on metrics being registered.
type channelCollector struct {
	channel *FileChannel

	bytesWritten *prometheus.Desc
	rotations    *prometheus.Desc
	purgeDeletes *prometheus.Desc
	purgeErrors  *prometheus.Desc
}

func newChannelCollector(c *FileChannel) *channelCollector {
	labels := prometheus.Labels{"path": c.path}
	return &channelCollector{
		channel: c,
		bytesWritten: prometheus.NewDesc(
			"rotatelog_bytes_written_total",
			"Logical bytes written to the current primary file since it was opened.",
			nil, labels),
		rotations: prometheus.NewDesc(
			"rotatelog_rotations_total",
			"Completed rotations for this channel.",
			nil, labels),
		purgeDeletes: prometheus.NewDesc(
			"rotatelog_purge_deletions_total",
			"Successful purge passes (each pass may delete multiple archives).",
			nil, labels),
		purgeErrors: prometheus.NewDesc(
			"rotatelog_purge_errors_total",
			"Purge passes that failed; purge failures never fail log().",
			nil, labels),
	}
}

func (c *channelCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.bytesWritten
	ch <- c.rotations
	ch <- c.purgeDeletes
	ch <- c.purgeErrors
}

func (c *channelCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.bytesWritten, prometheus.GaugeValue, float64(c.channel.state.bytesWritten.Load()))
	ch <- prometheus.MustNewConstMetric(c.rotations, prometheus.CounterValue, float64(c.channel.state.totalRotations.Load()))
	ch <- prometheus.MustNewConstMetric(c.purgeDeletes, prometheus.CounterValue, float64(c.channel.state.totalPurgeDeletes.Load()))
	ch <- prometheus.MustNewConstMetric(c.purgeErrors, prometheus.CounterValue, float64(c.channel.state.totalPurgeErrors.Load()))
}

// RegisterMetrics registers a prometheus.Collector exposing this
// channel's counters with reg. Optional: callers that don't use
// Prometheus never need to call this.
func (c *FileChannel) RegisterMetrics(reg prometheus.Registerer) error {
	return reg.Register(newChannelCollector(c))
}
