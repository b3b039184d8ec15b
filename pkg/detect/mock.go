package detect

import (
	"sync"

	"github.com/dstrand/zonewatch/pkg/overlay"
)

// MockDetector plays back scripted detection sequences, one entry per
// Detect call. It lets the frame loop run without a model or a camera.
type MockDetector struct {
	mu sync.Mutex

	// Script is consumed one frame at a time. After it runs out the
	// detector keeps returning the last entry, or nothing if empty.
	Script [][]Detection

	// Err, when set, is returned by every Detect call.
	Err error

	calls  int
	closed bool
}

// NewMockDetector creates a detector that returns the given sequences.
func NewMockDetector(script ...[]Detection) *MockDetector {
	return &MockDetector{Script: script}
}

// Detect implements Detector.
func (m *MockDetector) Detect(frame overlay.Canvas) ([]Detection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Script) == 0 {
		return nil, nil
	}

	idx := m.calls - 1
	if idx >= len(m.Script) {
		idx = len(m.Script) - 1
	}
	return m.Script[idx], nil
}

// Calls returns how many times Detect has been invoked.
func (m *MockDetector) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Close implements Detector.
func (m *MockDetector) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (m *MockDetector) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
