// Package zone defines the watch zones that scope person detection and
// the policy for deciding whether a detection falls inside them.
package zone

import "github.com/dstrand/zonewatch/pkg/geometry"

// Zone is a named region of the frame in which detections matter.
// Zones are fixed for the session once produced by a Layout; nothing
// mutates them while the loop runs.
type Zone struct {
	Name string        `json:"name"`
	Rect geometry.Rect `json:"rect"`
}

// Set is the configured collection of zones for a session.
type Set []Zone

// Intersects reports whether r overlaps at least one zone in the set.
// This is the filter policy: a detection is in scope if any zone
// matches, and touching a zone edge counts as a match.
func (s Set) Intersects(r geometry.Rect) bool {
	for _, z := range s {
		if z.Rect.Intersects(r) {
			return true
		}
	}
	return false
}

// Hits returns the names of every zone r overlaps, in set order.
func (s Set) Hits(r geometry.Rect) []string {
	var names []string
	for _, z := range s {
		if z.Rect.Intersects(r) {
			names = append(names, z.Name)
		}
	}
	return names
}
