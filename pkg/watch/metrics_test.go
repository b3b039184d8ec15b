package watch

import "testing"

func TestMetrics_RegistryExportsCounters(t *testing.T) {
	m := NewMetrics()
	m.FramesProcessed.Add(7)
	m.DetectionsInZone.Add(2)

	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	values := map[string]float64{}
	for _, fam := range families {
		for _, metric := range fam.GetMetric() {
			values[fam.GetName()] = metric.GetGauge().GetValue()
		}
	}

	if got := values["zonewatch_frames_processed_total"]; got != 7 {
		t.Errorf("frames_processed = %v, want 7", got)
	}
	if got := values["zonewatch_detections_in_zone_total"]; got != 2 {
		t.Errorf("detections_in_zone = %v, want 2", got)
	}
	if _, ok := values["zonewatch_read_errors_total"]; !ok {
		t.Error("read_errors gauge not registered")
	}
}
