package watch

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the frame loop counters. Counters are plain atomics
// updated from the loop goroutine and exported read-only through a
// private prometheus registry.
type Metrics struct {
	FramesProcessed  atomic.Uint64
	FramesPublished  atomic.Uint64
	ReadErrors       atomic.Uint64
	DetectErrors     atomic.Uint64
	DetectionsSeen   atomic.Uint64
	DetectionsInZone atomic.Uint64

	// FrameLatencyMs is the duration of the last full iteration.
	FrameLatencyMs atomic.Uint64

	registry *prometheus.Registry
}

// NewMetrics creates a Metrics instance with its prometheus collectors
// registered.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	gauges := []struct {
		name string
		help string
		val  *atomic.Uint64
	}{
		{"zonewatch_frames_processed_total", "Frames read, rendered and shown", &m.FramesProcessed},
		{"zonewatch_frames_published_total", "Annotated frames handed to the publish hook", &m.FramesPublished},
		{"zonewatch_read_errors_total", "Frame capture failures", &m.ReadErrors},
		{"zonewatch_detect_errors_total", "Detector invocation failures", &m.DetectErrors},
		{"zonewatch_detections_total", "Person detections returned by the detector", &m.DetectionsSeen},
		{"zonewatch_detections_in_zone_total", "Detections that intersected a watch zone", &m.DetectionsInZone},
		{"zonewatch_frame_latency_ms", "Duration of the last loop iteration in milliseconds", &m.FrameLatencyMs},
	}

	for _, g := range gauges {
		val := g.val
		m.registry.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{Name: g.name, Help: g.help},
			func() float64 { return float64(val.Load()) },
		))
	}

	return m
}

// Registry returns the prometheus registry for the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
