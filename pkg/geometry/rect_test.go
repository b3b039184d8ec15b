package geometry

import (
	"image"
	"testing"
)

func TestRect_Intersects(t *testing.T) {
	tests := []struct {
		name   string
		a      Rect
		b      Rect
		expect bool
	}{
		{
			name:   "overlapping on both axes",
			a:      NewRect(10, 10, 50, 50),
			b:      NewRect(40, 40, 100, 100),
			expect: true,
		},
		{
			name:   "disjoint with gap on both axes",
			a:      NewRect(0, 0, 10, 10),
			b:      NewRect(20, 20, 30, 30),
			expect: false,
		},
		{
			name:   "disjoint with gap on x only",
			a:      NewRect(0, 0, 10, 100),
			b:      NewRect(12, 0, 30, 100),
			expect: false,
		},
		{
			name:   "disjoint with gap on y only",
			a:      NewRect(0, 0, 100, 10),
			b:      NewRect(0, 12, 100, 30),
			expect: false,
		},
		{
			name:   "sharing a vertical edge",
			a:      NewRect(0, 0, 10, 10),
			b:      NewRect(10, 0, 20, 10),
			expect: true,
		},
		{
			name:   "sharing a horizontal edge",
			a:      NewRect(0, 0, 10, 10),
			b:      NewRect(0, 10, 10, 20),
			expect: true,
		},
		{
			name:   "touching at a single corner",
			a:      NewRect(0, 0, 10, 10),
			b:      NewRect(10, 10, 20, 20),
			expect: true,
		},
		{
			name:   "one fully inside the other",
			a:      NewRect(0, 0, 100, 100),
			b:      NewRect(25, 25, 75, 75),
			expect: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expect {
				t.Errorf("%v.Intersects(%v) = %v, want %v", tc.a, tc.b, got, tc.expect)
			}
			// The predicate is symmetric
			if got := tc.b.Intersects(tc.a); got != tc.expect {
				t.Errorf("%v.Intersects(%v) = %v, want %v (symmetry)", tc.b, tc.a, got, tc.expect)
			}
		})
	}
}

func TestRect_IntersectsSelf(t *testing.T) {
	rects := []Rect{
		NewRect(0, 0, 10, 10),
		NewRect(150, 175, 250, 325),
		NewRect(-5, -5, 5, 5),
	}
	for _, r := range rects {
		if !r.Intersects(r) {
			t.Errorf("%v should intersect itself", r)
		}
	}
}

func TestRect_Dimensions(t *testing.T) {
	r := NewRect(10, 20, 110, 70)
	if r.Width() != 100 {
		t.Errorf("Width = %d, want 100", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("Height = %d, want 50", r.Height())
	}
	if r.Empty() {
		t.Error("rect with positive area reported Empty")
	}
	if !NewRect(10, 10, 10, 50).Empty() {
		t.Error("zero-width rect should be Empty")
	}
}

func TestRect_Clamp(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		w, h   int
		expect Rect
	}{
		{
			name:   "already inside",
			r:      NewRect(10, 10, 50, 50),
			w:      100,
			h:      100,
			expect: NewRect(10, 10, 50, 50),
		},
		{
			name:   "spilling past all edges",
			r:      NewRect(-10, -10, 200, 200),
			w:      100,
			h:      100,
			expect: NewRect(0, 0, 100, 100),
		},
		{
			name:   "entirely off screen",
			r:      NewRect(200, 200, 300, 300),
			w:      100,
			h:      100,
			expect: NewRect(200, 200, 200, 200),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Clamp(tc.w, tc.h); got != tc.expect {
				t.Errorf("Clamp = %v, want %v", got, tc.expect)
			}
		})
	}
}

func TestRect_ImageRoundTrip(t *testing.T) {
	r := NewRect(150, 175, 250, 325)
	img := r.ToImage()
	if img != image.Rect(150, 175, 250, 325) {
		t.Errorf("ToImage = %v", img)
	}
	if back := FromImage(img); back != r {
		t.Errorf("FromImage(ToImage) = %v, want %v", back, r)
	}
}
