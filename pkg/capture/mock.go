package capture

import (
	"github.com/dstrand/zonewatch/pkg/overlay"
)

// MockSource yields a fixed number of blank frames of a fixed size,
// then ErrStreamEnded, simulating a camera whose stream ends.
type MockSource struct {
	Width  int
	Height int
	Frames int // reads before the stream ends; negative means endless

	// ReadErr, when set, is returned by the next Read.
	ReadErr error

	reads  int
	closed bool
}

// NewMockSource creates a source that yields frames blank frames.
func NewMockSource(width, height, frames int) *MockSource {
	return &MockSource{Width: width, Height: height, Frames: frames}
}

// Read implements Source. Each call returns a fresh canvas so tests
// can inspect individual frames.
func (m *MockSource) Read() (overlay.Canvas, error) {
	if m.ReadErr != nil {
		err := m.ReadErr
		m.ReadErr = nil
		return nil, err
	}
	if m.Frames >= 0 && m.reads >= m.Frames {
		return nil, ErrStreamEnded
	}
	m.reads++
	return overlay.NewImageCanvas(m.Width, m.Height), nil
}

// Reads returns how many frames have been served.
func (m *MockSource) Reads() int {
	return m.reads
}

// Close implements Source.
func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (m *MockSource) Closed() bool {
	return m.closed
}
