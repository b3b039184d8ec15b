package capture

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/dstrand/zonewatch/pkg/overlay"
)

// Device reads frames from a local camera through OpenCV. One Mat is
// reused for every read and released on Close.
type Device struct {
	webcam *gocv.VideoCapture
	mat    gocv.Mat
	canvas *overlay.MatCanvas
	index  int
}

// OpenDevice opens the camera at the given index.
func OpenDevice(index int) (*Device, error) {
	webcam, err := gocv.OpenVideoCapture(index)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", ErrDeviceUnavailable, index, err)
	}
	if !webcam.IsOpened() {
		webcam.Close()
		return nil, fmt.Errorf("%w: device %d", ErrDeviceUnavailable, index)
	}

	d := &Device{
		webcam: webcam,
		mat:    gocv.NewMat(),
		index:  index,
	}
	d.canvas = overlay.NewMatCanvas(&d.mat)
	return d, nil
}

// Read implements Source. The same canvas is returned every call,
// holding the latest frame.
func (d *Device) Read() (overlay.Canvas, error) {
	if ok := d.webcam.Read(&d.mat); !ok {
		return nil, fmt.Errorf("%w: device %d", ErrStreamEnded, d.index)
	}
	if d.mat.Empty() {
		return nil, fmt.Errorf("%w: device %d returned an empty frame", ErrStreamEnded, d.index)
	}
	return d.canvas, nil
}

// Close implements Source.
func (d *Device) Close() error {
	d.mat.Close()
	return d.webcam.Close()
}
