package zone

import (
	"fmt"

	"github.com/dstrand/zonewatch/pkg/geometry"
)

// Layout produces the zone set for a frame of the given dimensions.
// The loop calls this once per frame, so an adaptive layout follows the
// surface it is drawn on while a fixed layout simply ignores the
// dimensions. Implementations must be pure: same dimensions in, same
// zones out.
type Layout interface {
	Zones(frameWidth, frameHeight int) Set
}

// FixedLayout returns the same absolute pixel zones for every frame.
type FixedLayout struct {
	set Set
}

// NewFixedLayout builds a layout from absolute zone rectangles.
func NewFixedLayout(zones ...Zone) *FixedLayout {
	set := make(Set, len(zones))
	copy(set, zones)
	return &FixedLayout{set: set}
}

// DefaultFixedLayout returns the stock two-zone arrangement for a
// 640x480 camera: one zone left of center, one right.
func DefaultFixedLayout() *FixedLayout {
	return NewFixedLayout(
		Zone{Name: "left", Rect: geometry.NewRect(150, 175, 250, 325)},
		Zone{Name: "right", Rect: geometry.NewRect(400, 175, 500, 325)},
	)
}

// Zones implements Layout. Frame dimensions are ignored.
func (l *FixedLayout) Zones(frameWidth, frameHeight int) Set {
	return l.set
}

// AdaptiveLayout derives a row of equally sized zones from the frame
// dimensions, so the zones keep their relative placement at any
// resolution. Proportions: each zone is frameW/12 wide and frameH/4
// tall, sits frameW/20 below the top edge, and the row is centered on
// the column at frameW/4 with half a zone width of spacing between
// neighbors.
type AdaptiveLayout struct {
	Count int // number of zones in the row
}

// NewAdaptiveLayout builds a layout with the given zone count.
func NewAdaptiveLayout(count int) *AdaptiveLayout {
	if count < 1 {
		count = 1
	}
	return &AdaptiveLayout{Count: count}
}

// Zones implements Layout.
func (l *AdaptiveLayout) Zones(frameWidth, frameHeight int) Set {
	zoneW := frameWidth / 12
	zoneH := frameHeight / 4
	margin := frameWidth / 20
	centerX := frameWidth / 4
	spacing := zoneW / 2

	// Each zone occupies zoneW plus spacing; the row of Count zones is
	// centered on centerX.
	pitch := zoneW + spacing
	rowWidth := l.Count*zoneW + (l.Count-1)*spacing
	start := centerX - rowWidth/2

	set := make(Set, 0, l.Count)
	for i := 0; i < l.Count; i++ {
		left := start + i*pitch
		set = append(set, Zone{
			Name: fmt.Sprintf("zone-%d", i+1),
			Rect: geometry.NewRect(left, margin, left+zoneW, margin+zoneH),
		})
	}
	return set
}
