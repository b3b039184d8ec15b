// Package capture provides the camera boundary for the frame loop.
package capture

import (
	"errors"

	"github.com/dstrand/zonewatch/pkg/overlay"
)

// ErrDeviceUnavailable means the capture device could not be opened.
// Fatal: the program reports it and exits without entering the loop.
var ErrDeviceUnavailable = errors.New("capture device unavailable")

// ErrStreamEnded means a frame read failed mid-session. The loop logs
// it and terminates; there is no retry.
var ErrStreamEnded = errors.New("camera stream ended")

// Source produces frames, one per Read. The returned canvas stays
// valid until the next Read; the loop owns it for exactly one
// iteration.
type Source interface {
	Read() (overlay.Canvas, error)
	Close() error
}
