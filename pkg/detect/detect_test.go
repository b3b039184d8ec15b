package detect

import (
	"errors"
	"testing"

	"github.com/dstrand/zonewatch/pkg/geometry"
	"github.com/dstrand/zonewatch/pkg/overlay"
)

func TestDetection_Label(t *testing.T) {
	tests := []struct {
		name   string
		det    Detection
		expect string
	}{
		{
			name:   "two decimal places",
			det:    Detection{ClassName: "person", Confidence: 0.8732},
			expect: "person 0.87",
		},
		{
			name:   "rounds up",
			det:    Detection{ClassName: "person", Confidence: 0.999},
			expect: "person 1.00",
		},
		{
			name:   "low confidence",
			det:    Detection{ClassName: "person", Confidence: 0.5},
			expect: "person 0.50",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.det.Label(); got != tc.expect {
				t.Errorf("Label() = %q, want %q", got, tc.expect)
			}
		})
	}
}

func TestFilterClass(t *testing.T) {
	dets := []Detection{
		{ClassName: "person", Confidence: 0.9},
		{ClassName: "dog", Confidence: 0.8},
		{ClassName: "person", Confidence: 0.6},
	}

	persons := FilterClass(dets, ClassPerson)
	if len(persons) != 2 {
		t.Fatalf("got %d persons, want 2", len(persons))
	}
	for _, d := range persons {
		if d.ClassName != "person" {
			t.Errorf("unexpected class %q after filter", d.ClassName)
		}
	}

	if all := FilterClass(dets, ""); len(all) != 3 {
		t.Errorf("empty filter kept %d, want all 3", len(all))
	}

	if none := FilterClass(dets, "bicycle"); none != nil {
		t.Errorf("filter with no matches = %v, want nil", none)
	}
}

func TestMockDetector_Script(t *testing.T) {
	frame := overlay.NewImageCanvas(640, 480)
	first := []Detection{{Box: geometry.NewRect(10, 10, 50, 50), ClassName: "person", Confidence: 0.9}}
	second := []Detection{}

	m := NewMockDetector(first, second)

	got, err := m.Detect(frame)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(got) != 1 || got[0].ClassName != "person" {
		t.Errorf("first call = %v", got)
	}

	got, err = m.Detect(frame)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("second call = %v, want empty", got)
	}

	// Past the script the last entry repeats
	got, _ = m.Detect(frame)
	if len(got) != 0 {
		t.Errorf("third call = %v, want empty", got)
	}

	if m.Calls() != 3 {
		t.Errorf("Calls = %d, want 3", m.Calls())
	}
}

func TestMockDetector_Err(t *testing.T) {
	boom := errors.New("inference failed")
	m := &MockDetector{Err: boom}

	if _, err := m.Detect(overlay.NewImageCanvas(1, 1)); !errors.Is(err, boom) {
		t.Errorf("Detect err = %v, want %v", err, boom)
	}
}

func TestMockDetector_Close(t *testing.T) {
	m := NewMockDetector()
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !m.Closed() {
		t.Error("Closed() = false after Close")
	}
}
