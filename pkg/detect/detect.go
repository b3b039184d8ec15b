// Package detect provides object detection for the frame loop.
package detect

import (
	"fmt"

	"github.com/dstrand/zonewatch/pkg/geometry"
	"github.com/dstrand/zonewatch/pkg/overlay"
)

// Detection is one detected object on the current frame. Detections
// are created per inference call and discarded when the frame is done;
// nothing retains them across frames.
type Detection struct {
	Box        geometry.Rect `json:"box"`
	Confidence float64       `json:"confidence"` // 0-1
	ClassID    int           `json:"class_id"`   // COCO class ID
	ClassName  string        `json:"class_name"`
}

// Label formats the annotation text for the detection box.
func (d Detection) Label() string {
	return fmt.Sprintf("%s %.2f", d.ClassName, d.Confidence)
}

// Detector is the interface for detection backends. Detect is
// deterministic per frame and returns zero or more detections.
type Detector interface {
	Detect(frame overlay.Canvas) ([]Detection, error)

	// Close releases resources
	Close() error
}

// FilterClass keeps only detections of the named class. An empty
// class keeps everything.
func FilterClass(dets []Detection, class string) []Detection {
	if class == "" {
		return dets
	}
	var kept []Detection
	for _, d := range dets {
		if d.ClassName == class {
			kept = append(kept, d)
		}
	}
	return kept
}

// ClassPerson is the class this program watches for.
const ClassPerson = "person"
