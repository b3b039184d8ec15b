package display

import (
	"fmt"
	"time"

	"gocv.io/x/gocv"

	"github.com/dstrand/zonewatch/pkg/overlay"
)

// Screen is a Window backed by an OpenCV HighGUI window.
type Screen struct {
	window *gocv.Window
}

// NewScreen opens a named window. With fullscreen set, the window
// covers the display.
func NewScreen(name string, fullscreen bool) *Screen {
	window := gocv.NewWindow(name)
	if fullscreen {
		window.SetWindowProperty(gocv.WindowPropertyFullscreen, gocv.WindowFullscreen)
	}
	return &Screen{window: window}
}

// Show implements Window. The frame must be Mat-backed.
func (s *Screen) Show(frame overlay.Canvas) error {
	mc, ok := frame.(*overlay.MatCanvas)
	if !ok {
		return fmt.Errorf("screen needs a mat-backed frame, got %T", frame)
	}
	s.window.IMShow(*mc.Mat())
	return nil
}

// PollKey implements Window. It waits at most the given duration and
// returns the pressed key code, or KeyNone.
func (s *Screen) PollKey(wait time.Duration) int {
	ms := int(wait / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	return s.window.WaitKey(ms)
}

// Close implements Window.
func (s *Screen) Close() error {
	return s.window.Close()
}
