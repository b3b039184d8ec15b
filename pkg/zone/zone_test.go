package zone

import (
	"testing"

	"github.com/dstrand/zonewatch/pkg/geometry"
)

func TestSet_Intersects(t *testing.T) {
	set := DefaultFixedLayout().Zones(640, 480)

	tests := []struct {
		name   string
		box    geometry.Rect
		expect bool
	}{
		{
			name:   "inside left zone",
			box:    geometry.NewRect(160, 200, 240, 300),
			expect: true,
		},
		{
			name:   "overlapping right zone",
			box:    geometry.NewRect(380, 150, 420, 200),
			expect: true,
		},
		{
			name:   "between the two zones",
			box:    geometry.NewRect(260, 200, 300, 250),
			expect: false,
		},
		{
			name:   "above both zones",
			box:    geometry.NewRect(150, 0, 500, 100),
			expect: false,
		},
		{
			name:   "spanning both zones",
			box:    geometry.NewRect(100, 200, 600, 300),
			expect: true,
		},
		{
			name:   "touching the left zone edge",
			box:    geometry.NewRect(100, 200, 150, 300),
			expect: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := set.Intersects(tc.box); got != tc.expect {
				t.Errorf("Intersects(%v) = %v, want %v", tc.box, got, tc.expect)
			}
		})
	}
}

func TestSet_Hits(t *testing.T) {
	set := DefaultFixedLayout().Zones(640, 480)

	spanning := geometry.NewRect(100, 200, 600, 300)
	hits := set.Hits(spanning)
	if len(hits) != 2 || hits[0] != "left" || hits[1] != "right" {
		t.Errorf("Hits(spanning) = %v, want [left right]", hits)
	}

	if hits := set.Hits(geometry.NewRect(260, 200, 300, 250)); hits != nil {
		t.Errorf("Hits(miss) = %v, want nil", hits)
	}
}

func TestAdaptiveLayout_Zones(t *testing.T) {
	l := NewAdaptiveLayout(3)
	set := l.Zones(1920, 1080)

	if len(set) != 3 {
		t.Fatalf("got %d zones, want 3", len(set))
	}

	zoneW := 1920 / 12
	zoneH := 1080 / 4
	margin := 1920 / 20

	for i, z := range set {
		if z.Rect.Width() != zoneW {
			t.Errorf("zone %d width = %d, want %d", i, z.Rect.Width(), zoneW)
		}
		if z.Rect.Height() != zoneH {
			t.Errorf("zone %d height = %d, want %d", i, z.Rect.Height(), zoneH)
		}
		if z.Rect.Top != margin {
			t.Errorf("zone %d top = %d, want %d", i, z.Rect.Top, margin)
		}
	}

	// Zones are ordered left to right without overlap
	for i := 1; i < len(set); i++ {
		if set[i].Rect.Left <= set[i-1].Rect.Right {
			t.Errorf("zone %d starts at %d, not right of zone %d ending at %d",
				i, set[i].Rect.Left, i-1, set[i-1].Rect.Right)
		}
	}
}

func TestAdaptiveLayout_Deterministic(t *testing.T) {
	l := NewAdaptiveLayout(3)
	a := l.Zones(1280, 720)
	b := l.Zones(1280, 720)
	if len(a) != len(b) {
		t.Fatalf("zone counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("zone %d differs between calls: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestAdaptiveLayout_MinimumCount(t *testing.T) {
	l := NewAdaptiveLayout(0)
	if got := len(l.Zones(640, 480)); got != 1 {
		t.Errorf("zero count should clamp to 1 zone, got %d", got)
	}
}
